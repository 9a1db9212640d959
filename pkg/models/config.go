package models

import "time"

// ExperimentConfig is the per-session options bag stored in
// sessions.experiment_config. Values arrive as JSON, so numbers may be
// float64, json.Number, or int depending on the writer; the accessors
// normalise and fall back to experiment defaults for missing keys.
type ExperimentConfig map[string]any

// Config keys. Kind-specific keys live beside the common ones in the same
// flat map; HiddenProfiles keeps its mutable state under a nested sub-map.
const (
	KeyRoundDuration      = "roundDuration"             // minutes
	KeyCommunicationLevel = "communicationLevel"        // chat | broadcast | no_chat
	KeyAwarenessDashboard = "awarenessDashboard"        // bool
	KeyPerceptionWindow   = "agentPerceptionTimeWindow" // seconds

	KeyStartingMoney    = "startingMoney"
	KeySpecialtyCost    = "specialtyCost"
	KeyRegularCost      = "regularCost"
	KeyMinTradePrice    = "minTradePrice"
	KeyMaxTradePrice    = "maxTradePrice"
	KeyShapesPerOrder   = "shapesPerOrder"
	KeyIncentiveMoney   = "incentiveMoney"
	KeyMaxProductionNum = "maxProductionNum"
	KeyProductionTime   = "productionTime" // seconds per unit

	KeyWordPool       = "wordPool"       // wordguessing: words dealt out to hinters
	KeyWordsPerHinter = "wordsPerHinter" // wordguessing: list length per hinter

	KeyPersonalities = "agentPersonalities" // participant_code -> {name, description}

	KeyHiddenProfiles = "hiddenProfiles"

	// Sub-keys of hiddenProfiles.
	KeyVotes        = "votes"                  // participant_code -> candidate_name
	KeyInitiatives  = "participantInitiatives" // participant_code -> active|passive
	KeyPublicInfo   = "publicInfo"             // shared document text
	KeyAssignedDocs = "assignedDocs"           // participant_code -> document text
	KeyCandidates   = "candidates"             // candidate names under discussion
)

// Int reads an integer key, tolerating float64 from JSON decoding.
func (c ExperimentConfig) Int(key string, def int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Float reads a float key.
func (c ExperimentConfig) Float(key string, def float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// String reads a string key.
func (c ExperimentConfig) String(key, def string) string {
	if v, ok := c[key].(string); ok && v != "" {
		return v
	}
	return def
}

// Bool reads a boolean key.
func (c ExperimentConfig) Bool(key string, def bool) bool {
	if v, ok := c[key].(bool); ok {
		return v
	}
	return def
}

// Sub returns a nested map, or an empty one when the key is absent. The
// returned map aliases the stored one, so writes through it are visible to
// later reads of the same config value.
func (c ExperimentConfig) Sub(key string) ExperimentConfig {
	switch v := c[key].(type) {
	case map[string]any:
		return ExperimentConfig(v)
	case ExperimentConfig:
		return v
	}
	return ExperimentConfig{}
}

// StringMap reads a nested map of strings, tolerating map[string]any storage.
func (c ExperimentConfig) StringMap(key string) map[string]string {
	out := map[string]string{}
	for k, v := range c.Sub(key) {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Defaults mirror the demo configuration used in development sessions.
const (
	DefaultRoundDurationMinutes = 20
	DefaultPerceptionWindowSecs = 30
	DefaultStartingMoney        = 300
	DefaultSpecialtyCost        = 10
	DefaultRegularCost          = 25
	DefaultMinTradePrice        = 15
	DefaultMaxTradePrice        = 35
	DefaultShapesPerOrder       = 4
	DefaultIncentiveMoney       = 50
	DefaultMaxProductionNum     = 6
	DefaultProductionTimeSecs   = 5
	DefaultWordsPerHinter       = 3
)

// Strings reads a list-of-strings key, tolerating the []any shape JSON
// columns come back with.
func (c ExperimentConfig) Strings(key string) []string {
	switch v := c[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (c ExperimentConfig) RoundDurationMinutes() int {
	return c.Int(KeyRoundDuration, DefaultRoundDurationMinutes)
}

func (c ExperimentConfig) CommunicationLevel() CommunicationLevel {
	switch CommunicationLevel(c.String(KeyCommunicationLevel, string(CommChat))) {
	case CommBroadcast:
		return CommBroadcast
	case CommNoChat:
		return CommNoChat
	default:
		return CommChat
	}
}

func (c ExperimentConfig) AwarenessDashboard() bool {
	return c.Bool(KeyAwarenessDashboard, false)
}

// PerceptionWindow is the base agent tick interval before jitter.
func (c ExperimentConfig) PerceptionWindow() time.Duration {
	return time.Duration(c.Int(KeyPerceptionWindow, DefaultPerceptionWindowSecs)) * time.Second
}

func (c ExperimentConfig) StartingMoney() int {
	return c.Int(KeyStartingMoney, DefaultStartingMoney)
}

func (c ExperimentConfig) SpecialtyCost() int {
	return c.Int(KeySpecialtyCost, DefaultSpecialtyCost)
}

func (c ExperimentConfig) RegularCost() int {
	return c.Int(KeyRegularCost, DefaultRegularCost)
}

func (c ExperimentConfig) MinTradePrice() int {
	return c.Int(KeyMinTradePrice, DefaultMinTradePrice)
}

func (c ExperimentConfig) MaxTradePrice() int {
	return c.Int(KeyMaxTradePrice, DefaultMaxTradePrice)
}

func (c ExperimentConfig) ShapesPerOrder() int {
	return c.Int(KeyShapesPerOrder, DefaultShapesPerOrder)
}

func (c ExperimentConfig) IncentiveMoney() int {
	return c.Int(KeyIncentiveMoney, DefaultIncentiveMoney)
}

func (c ExperimentConfig) MaxProductionNum() int {
	return c.Int(KeyMaxProductionNum, DefaultMaxProductionNum)
}

// ProductionTime is the build time per unit.
func (c ExperimentConfig) ProductionTime() time.Duration {
	return time.Duration(c.Int(KeyProductionTime, DefaultProductionTimeSecs)) * time.Second
}

// HiddenProfiles returns the mutable HiddenProfiles sub-map.
func (c ExperimentConfig) HiddenProfiles() ExperimentConfig {
	return c.Sub(KeyHiddenProfiles)
}

// Votes returns participant_code -> candidate_name.
func (c ExperimentConfig) Votes() map[string]string {
	return c.HiddenProfiles().StringMap(KeyVotes)
}

// Initiatives returns participant_code -> active|passive.
func (c ExperimentConfig) Initiatives() map[string]string {
	return c.HiddenProfiles().StringMap(KeyInitiatives)
}

// PublicInfo returns the shared HiddenProfiles document, "" when unset.
func (c ExperimentConfig) PublicInfo() string {
	return c.HiddenProfiles().String(KeyPublicInfo, "")
}

// AssignedDoc returns the candidate document assigned to a participant.
func (c ExperimentConfig) AssignedDoc(participantCode string) string {
	return c.HiddenProfiles().StringMap(KeyAssignedDocs)[participantCode]
}

// CandidateNames returns the HiddenProfiles candidates under discussion.
func (c ExperimentConfig) CandidateNames() []string {
	return c.HiddenProfiles().Strings(KeyCandidates)
}

// WordPool returns the WordGuessing words dealt out to hinters in order.
func (c ExperimentConfig) WordPool() []string {
	return c.Strings(KeyWordPool)
}

// WordsPerHinter is how many pool words each hinter receives.
func (c ExperimentConfig) WordsPerHinter() int {
	return c.Int(KeyWordsPerHinter, DefaultWordsPerHinter)
}

// Personality returns an agent's persona name and description, empty when
// the session assigns none.
func (c ExperimentConfig) Personality(participantCode string) (name, description string) {
	entry := c.Sub(KeyPersonalities).Sub(participantCode)
	return entry.String("name", ""), entry.String("description", "")
}
