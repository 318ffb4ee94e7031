package identity

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateEmail rejects signup with an email already on file.
	// The store is left unchanged.
	ErrDuplicateEmail = errors.New("identity: email already registered")

	// ErrInvalidCredentials rejects login when no record matches the
	// email/secret pair exactly.
	ErrInvalidCredentials = errors.New("identity: invalid email or secret")

	// ErrAccountNotFound reports a merge against an id with no record.
	// The active session guarantees existence in normal flow, so seeing
	// this error is an internal invariant violation.
	ErrAccountNotFound = errors.New("identity: account not found")
)

// Store owns the canonical account records. Email is the uniqueness key,
// compared byte-exact as typed.
type Store interface {
	// CreateAccount registers a new account and returns its sanitized
	// view. Fails with ErrDuplicateEmail without touching the store.
	CreateAccount(ctx context.Context, name, email, secret string) (*Account, error)

	// Authenticate returns the sanitized account matching the exact
	// email/secret pair, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, secret string) (*Account, error)

	// MergeAssessment shallow-merges patch into the stored record's
	// assessment and into the persisted session snapshot for the same
	// account, as one transaction. ErrAccountNotFound if id is unknown.
	MergeAssessment(ctx context.Context, accountID string, patch AssessmentRecord) error
}
