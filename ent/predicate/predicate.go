// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EssayAssignment is the predicate function for essayassignment builders.
type EssayAssignment func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Investment is the predicate function for investment builders.
type Investment func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// ProductionQueueEntry is the predicate function for productionqueueentry builders.
type ProductionQueueEntry func(*sql.Selector)

// RankingSubmission is the predicate function for rankingsubmission builders.
type RankingSubmission func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// ShapeInventory is the predicate function for shapeinventory builders.
type ShapeInventory func(*sql.Selector)

// Transaction is the predicate function for transaction builders.
type Transaction func(*sql.Selector)

// WordGuess is the predicate function for wordguess builders.
type WordGuess func(*sql.Selector)
