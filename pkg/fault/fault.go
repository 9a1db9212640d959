// Package fault defines the closed set of error kinds shared by the store,
// game engines, tool dispatcher, and LLM adapters. Every error that crosses a
// component boundary carries a Kind so callers can branch on category without
// string matching, and so tool responses can surface a stable machine-readable
// code to agents.
package fault

import (
	"errors"
	"fmt"
)

// Kind is a stable error category. The set is closed: new kinds are added
// here, never invented ad hoc at call sites.
type Kind string

const (
	// Lookup failures.
	SessionNotFound     Kind = "SessionNotFound"
	ParticipantNotFound Kind = "ParticipantNotFound"

	// Scoping and lifecycle.
	MissingSessionScope Kind = "MissingSessionScope"
	InvalidState        Kind = "InvalidState"
	NotInProposedState  Kind = "NotInProposedState"
	AlreadyProcessed    Kind = "AlreadyProcessed"

	// Game-rule violations.
	InsufficientFunds           Kind = "InsufficientFunds"
	InsufficientInventory       Kind = "InsufficientInventory"
	ProductionLimitReached      Kind = "ProductionLimitReached"
	InvalidPrice                Kind = "InvalidPrice"
	InvalidShape                Kind = "InvalidShape"
	InvalidQuantity             Kind = "InvalidQuantity"
	InvalidOrderIndex           Kind = "InvalidOrderIndex"
	CommunicationLevelViolation Kind = "CommunicationLevelViolation"
	SelfAcceptForbidden         Kind = "SelfAcceptForbidden"
	SelfOfferForbidden          Kind = "SelfOfferForbidden"

	// Infrastructure.
	LLMError       Kind = "LLMError"
	StoreError     Kind = "StoreError"
	TransportError Kind = "TransportError"
)

// Error is a categorized error. Message is safe to show to an agent verbatim.
type Error struct {
	Kind    Kind
	Message string
	wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a categorized error with a plain message.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a categorized error with a formatted message.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error. The underlying
// error stays reachable through errors.Unwrap for logging, while callers
// branch on the kind.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, wrapped: err}
}

// KindOf extracts the kind from an error chain. It returns the empty kind
// for errors that never got categorized.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// Is reports whether the error chain contains a fault of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
