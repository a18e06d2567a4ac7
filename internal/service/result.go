package service

import "message-portal-backend/internal/database/models"

// Result is the closed set of outcomes a message operation can produce.
// Expected business failures are Result variants, not errors; errors are
// reserved for unexpected conditions such as storage being unavailable.
// The transport layer switches exhaustively over the variants and maps
// anything unmatched to a generic server error.
type Result interface {
	isResult()
}

// Created reports a successful creation and carries the persisted message,
// including its assigned identifier.
type Created struct {
	Message models.Message
}

// Updated reports a successful update. No payload.
type Updated struct{}

// Deleted reports a successful deletion. No payload.
type Deleted struct{}

// Conflict reports a rejection due to a uniqueness violation.
type Conflict struct {
	Message string
}

// ValidationError reports malformed input, keyed by field name.
type ValidationError struct {
	Errors map[string][]string
}

// NotFound reports that the target does not exist within the organization.
type NotFound struct {
	Message string
}

func (Created) isResult()         {}
func (Updated) isResult()         {}
func (Deleted) isResult()         {}
func (Conflict) isResult()        {}
func (ValidationError) isResult() {}
func (NotFound) isResult()        {}
