// Package common defines shared constants and sentinel errors used across
// the support-list client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Reconciliation-level errors.
	ErrListNotFound = errors.New("list not found")

	// Session / identity errors.
	ErrInvalidOwnerKey = errors.New("invalid owner key")
	ErrInvalidSecret   = errors.New("invalid secret key")

	// Pipeline errors.
	ErrNoListLoaded = errors.New("no list loaded")
	ErrBadSequence  = errors.New("reorder sequence must contain every item exactly once")
)
