package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/upjobs/upjobs/internal/identity"
)

// SessionRepo persists the active session snapshot, so a returning user
// resumes without logging in again.
type SessionRepo interface {
	// Load returns the persisted session account, or nil when no session
	// is active. A snapshot that fails to decode is treated as absent.
	Load(ctx context.Context) (*identity.Account, error)

	// Save makes acc the active session, replacing any previous one.
	Save(ctx context.Context, acc *identity.Account) error

	// Clear removes the active session. Clearing an empty session is a
	// no-op.
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	db *sql.DB
}

var _ SessionRepo = (*sessionRepo)(nil)

func (r *sessionRepo) Load(ctx context.Context) (*identity.Account, error) {
	var snapshot string
	err := r.db.QueryRowContext(ctx,
		`SELECT snapshot FROM active_session WHERE slot = 1`,
	).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var acc identity.Account
	if err := json.Unmarshal([]byte(snapshot), &acc); err != nil {
		// Corrupt snapshot: start fresh rather than block startup.
		return nil, nil
	}
	if acc.ID == "" {
		return nil, nil
	}
	return &acc, nil
}

func (r *sessionRepo) Save(ctx context.Context, acc *identity.Account) error {
	encoded, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO active_session (slot, account_id, snapshot, updated_at)
		 VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (slot) DO UPDATE SET
		   account_id = excluded.account_id,
		   snapshot   = excluded.snapshot,
		   updated_at = excluded.updated_at`,
		acc.ID, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM active_session WHERE slot = 1`,
	); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
