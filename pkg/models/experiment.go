package models

import "strings"

// ExperimentType identifies which game engine drives a session.
type ExperimentType string

const (
	ExperimentShapeFactory   ExperimentType = "shapefactory"
	ExperimentDayTrader      ExperimentType = "daytrader"
	ExperimentEssayRanking   ExperimentType = "essayranking"
	ExperimentWordGuessing   ExperimentType = "wordguessing"
	ExperimentHiddenProfiles ExperimentType = "hiddenprofiles"
)

// CustomExperimentPrefix marks researcher-defined experiment kinds that reuse
// the generic engine surface without a built-in rule set.
const CustomExperimentPrefix = "custom_"

// BuiltinExperimentTypes lists the experiment kinds with a dedicated engine.
func BuiltinExperimentTypes() []ExperimentType {
	return []ExperimentType{
		ExperimentShapeFactory,
		ExperimentDayTrader,
		ExperimentEssayRanking,
		ExperimentWordGuessing,
		ExperimentHiddenProfiles,
	}
}

// Valid reports whether t is a built-in kind or a custom_* kind.
func (t ExperimentType) Valid() bool {
	if t.IsCustom() {
		return len(t) > len(CustomExperimentPrefix)
	}
	for _, b := range BuiltinExperimentTypes() {
		if t == b {
			return true
		}
	}
	return false
}

// IsCustom reports whether t is a researcher-defined kind.
func (t ExperimentType) IsCustom() bool {
	return strings.HasPrefix(string(t), CustomExperimentPrefix)
}

// Description returns the human-readable blurb included in public state.
func (t ExperimentType) Description() string {
	switch t {
	case ExperimentShapeFactory:
		return "Shape Factory: produce shapes, trade with other participants, and fulfill orders for rewards."
	case ExperimentDayTrader:
		return "Day Trader: decide on investment prices individually or as a group."
	case ExperimentEssayRanking:
		return "Essay Ranking: read assigned essays and submit rankings with reasoning."
	case ExperimentWordGuessing:
		return "Word Guessing: hinters hold secret words, guessers try to guess them through conversation."
	case ExperimentHiddenProfiles:
		return "Hidden Profiles: each participant holds private candidate information; discuss and vote for the best candidate."
	default:
		if t.IsCustom() {
			return "Custom experiment: " + strings.TrimPrefix(string(t), CustomExperimentPrefix)
		}
		return string(t)
	}
}

// CommunicationLevel controls what messaging a session permits.
type CommunicationLevel string

const (
	// CommChat allows direct messages only; "all" broadcasts are rejected.
	CommChat CommunicationLevel = "chat"
	// CommBroadcast forces every message to be a broadcast to the session.
	CommBroadcast CommunicationLevel = "broadcast"
	// CommNoChat silently drops all send_message calls.
	CommNoChat CommunicationLevel = "no_chat"
)

// ParticipantType distinguishes human participants from LLM-driven agents.
type ParticipantType string

const (
	ParticipantHuman ParticipantType = "human"
	ParticipantAgent ParticipantType = "ai_agent"
)

// WordGuessing roles.
const (
	RoleHinter  = "hinter"
	RoleGuesser = "guesser"
)

// HiddenProfiles initiative classes.
const (
	InitiativeActive  = "active"
	InitiativePassive = "passive"
)

// Message types stored in messages.type.
const (
	MessageTypeChat   = "chat"
	MessageTypeSystem = "system"
	MessageTypeStatus = "status_update"
)
