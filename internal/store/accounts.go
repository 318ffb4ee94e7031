package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/upjobs/upjobs/internal/cryptox"
	"github.com/upjobs/upjobs/internal/identity"
)

// accountRepo implements identity.Store over SQLite.
type accountRepo struct {
	db *sql.DB
}

var _ identity.Store = (*accountRepo)(nil)

func (r *accountRepo) CreateAccount(ctx context.Context, name, email, secret string) (*identity.Account, error) {
	hash, err := cryptox.HashSecret(secret)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, email, secret_hash) VALUES (?, ?, ?, ?)`,
		id, name, email, hash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, identity.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return &identity.Account{ID: id, Name: name, Email: email}, nil
}

func (r *accountRepo) Authenticate(ctx context.Context, email, secret string) (*identity.Account, error) {
	var (
		acc        identity.Account
		hash       string
		assessment sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, secret_hash, assessment FROM accounts WHERE email = ?`,
		email,
	).Scan(&acc.ID, &acc.Name, &acc.Email, &hash, &assessment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, identity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query account: %w", err)
	}

	if err := cryptox.VerifySecret(secret, hash); err != nil {
		return nil, identity.ErrInvalidCredentials
	}

	if assessment.Valid {
		rec, err := decodeAssessment(assessment.String)
		if err != nil {
			return nil, err
		}
		acc.Assessment = rec
	}

	return &acc, nil
}

// MergeAssessment updates the account row and, when the active session
// points at the same account, the session snapshot, inside one
// transaction. A crash can never leave the two diverged.
func (r *accountRepo) MergeAssessment(ctx context.Context, accountID string, patch identity.AssessmentRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin merge: %w", err)
	}
	defer tx.Rollback()

	var current sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT assessment FROM accounts WHERE id = ?`, accountID,
	).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("read assessment: %w", err)
	}

	rec := &identity.AssessmentRecord{}
	if current.Valid {
		if rec, err = decodeAssessment(current.String); err != nil {
			return err
		}
	}
	rec.Merge(patch)

	encoded, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE accounts SET assessment = ? WHERE id = ?`, string(encoded), accountID,
	); err != nil {
		return fmt.Errorf("write assessment: %w", err)
	}

	if err := refreshSessionSnapshot(ctx, tx, accountID, rec); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit merge: %w", err)
	}
	return nil
}

// refreshSessionSnapshot rewrites the session snapshot's assessment when
// the active session belongs to accountID. No-op otherwise.
func refreshSessionSnapshot(ctx context.Context, tx *sql.Tx, accountID string, rec *identity.AssessmentRecord) error {
	var snapshot string
	err := tx.QueryRowContext(ctx,
		`SELECT snapshot FROM active_session WHERE slot = 1 AND account_id = ?`, accountID,
	).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session snapshot: %w", err)
	}

	var acc identity.Account
	if err := json.Unmarshal([]byte(snapshot), &acc); err != nil {
		return fmt.Errorf("decode session snapshot: %w", err)
	}
	acc.Assessment = rec

	encoded, err := json.Marshal(&acc)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE active_session SET snapshot = ?, updated_at = CURRENT_TIMESTAMP WHERE slot = 1`,
		string(encoded),
	); err != nil {
		return fmt.Errorf("write session snapshot: %w", err)
	}
	return nil
}

func decodeAssessment(raw string) (*identity.AssessmentRecord, error) {
	var rec identity.AssessmentRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode assessment: %w", err)
	}
	return &rec, nil
}

// isUniqueViolation matches the driver's UNIQUE constraint error by its
// result code.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT
}
