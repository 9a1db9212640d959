// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/event"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/schema"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/ent/wordguess"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	essayassignmentFields := schema.EssayAssignment{}.Fields()
	_ = essayassignmentFields
	// essayassignmentDescWordCount is the schema descriptor for word_count field.
	essayassignmentDescWordCount := essayassignmentFields[6].Descriptor()
	// essayassignment.DefaultWordCount holds the default value on creation for the word_count field.
	essayassignment.DefaultWordCount = essayassignmentDescWordCount.Default.(int)
	// essayassignmentDescCreatedAt is the schema descriptor for created_at field.
	essayassignmentDescCreatedAt := essayassignmentFields[7].Descriptor()
	// essayassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	essayassignment.DefaultCreatedAt = essayassignmentDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	investmentFields := schema.Investment{}.Fields()
	_ = investmentFields
	// investmentDescCreatedAt is the schema descriptor for created_at field.
	investmentDescCreatedAt := investmentFields[5].Descriptor()
	// investment.DefaultCreatedAt holds the default value on creation for the created_at field.
	investment.DefaultCreatedAt = investmentDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescType is the schema descriptor for type field.
	messageDescType := messageFields[5].Descriptor()
	// message.DefaultType holds the default value on creation for the type field.
	message.DefaultType = messageDescType.Default.(string)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[8].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescMoney is the schema descriptor for money field.
	participantDescMoney := participantFields[6].Descriptor()
	// participant.DefaultMoney holds the default value on creation for the money field.
	participant.DefaultMoney = participantDescMoney.Default.(int)
	// participantDescOrdersCompleted is the schema descriptor for orders_completed field.
	participantDescOrdersCompleted := participantFields[8].Descriptor()
	// participant.DefaultOrdersCompleted holds the default value on creation for the orders_completed field.
	participant.DefaultOrdersCompleted = participantDescOrdersCompleted.Default.(int)
	// participantDescSpecialtyProductionUsed is the schema descriptor for specialty_production_used field.
	participantDescSpecialtyProductionUsed := participantFields[12].Descriptor()
	// participant.DefaultSpecialtyProductionUsed holds the default value on creation for the specialty_production_used field.
	participant.DefaultSpecialtyProductionUsed = participantDescSpecialtyProductionUsed.Default.(int)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[13].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	productionqueueentryFields := schema.ProductionQueueEntry{}.Fields()
	_ = productionqueueentryFields
	// productionqueueentryDescQueuePosition is the schema descriptor for queue_position field.
	productionqueueentryDescQueuePosition := productionqueueentryFields[6].Descriptor()
	// productionqueueentry.DefaultQueuePosition holds the default value on creation for the queue_position field.
	productionqueueentry.DefaultQueuePosition = productionqueueentryDescQueuePosition.Default.(int)
	// productionqueueentryDescCreatedAt is the schema descriptor for created_at field.
	productionqueueentryDescCreatedAt := productionqueueentryFields[9].Descriptor()
	// productionqueueentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	productionqueueentry.DefaultCreatedAt = productionqueueentryDescCreatedAt.Default.(func() time.Time)
	rankingsubmissionFields := schema.RankingSubmission{}.Fields()
	_ = rankingsubmissionFields
	// rankingsubmissionDescCreatedAt is the schema descriptor for created_at field.
	rankingsubmissionDescCreatedAt := rankingsubmissionFields[4].Descriptor()
	// rankingsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	rankingsubmission.DefaultCreatedAt = rankingsubmissionDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescExperimentType is the schema descriptor for experiment_type field.
	sessionDescExperimentType := sessionFields[2].Descriptor()
	// session.ExperimentTypeValidator is a validator for the "experiment_type" field. It is called by the builders before save.
	session.ExperimentTypeValidator = sessionDescExperimentType.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[5].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	shapeinventoryFields := schema.ShapeInventory{}.Fields()
	_ = shapeinventoryFields
	// shapeinventoryDescUpdatedAt is the schema descriptor for updated_at field.
	shapeinventoryDescUpdatedAt := shapeinventoryFields[4].Descriptor()
	// shapeinventory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shapeinventory.DefaultUpdatedAt = shapeinventoryDescUpdatedAt.Default.(func() time.Time)
	// shapeinventory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shapeinventory.UpdateDefaultUpdatedAt = shapeinventoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[12].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	wordguessFields := schema.WordGuess{}.Fields()
	_ = wordguessFields
	// wordguessDescCorrect is the schema descriptor for correct field.
	wordguessDescCorrect := wordguessFields[5].Descriptor()
	// wordguess.DefaultCorrect holds the default value on creation for the correct field.
	wordguess.DefaultCorrect = wordguessDescCorrect.Default.(bool)
	// wordguessDescCreatedAt is the schema descriptor for created_at field.
	wordguessDescCreatedAt := wordguessFields[6].Descriptor()
	// wordguess.DefaultCreatedAt holds the default value on creation for the created_at field.
	wordguess.DefaultCreatedAt = wordguessDescCreatedAt.Default.(func() time.Time)
}
