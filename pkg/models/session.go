// Package models contains request/response models and business domain types.
package models

import (
	"github.com/behavelab/parley/ent"
)

// CreateSessionRequest contains fields for creating a new experiment session.
type CreateSessionRequest struct {
	SessionCode    string           `json:"session_code"`
	ExperimentType ExperimentType   `json:"experiment_type"`
	Config         ExperimentConfig `json:"experiment_config,omitempty"`
}

// CreateParticipantRequest contains fields for registering a participant in a
// session at setup time.
type CreateParticipantRequest struct {
	ParticipantCode string          `json:"participant_code"`
	Type            ParticipantType `json:"type"`
	SpecialtyShape  string          `json:"specialty_shape,omitempty"`
	Role            string          `json:"role,omitempty"`
}

// TradeOfferRequest contains fields for opening a trade offer. OfferType is
// from the proposer's point of view: "buy" means the proposer buys.
type TradeOfferRequest struct {
	Proposer     string `json:"proposer"`
	Recipient    string `json:"recipient"`
	OfferType    string `json:"offer_type"`
	Shape        string `json:"shape"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int    `json:"price_per_unit"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	Status         string `json:"status,omitempty"`
	ExperimentType string `json:"experiment_type,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
