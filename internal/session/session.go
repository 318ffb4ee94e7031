// Package session tracks the active account across the app's lifetime
// and persists it so a returning user skips the login screen.
package session

import (
	"context"
	"fmt"

	"github.com/upjobs/upjobs/internal/identity"
	"github.com/upjobs/upjobs/internal/store"
)

// Session holds the active account, if any. The zero value is a logged
// out session; use New to get one wired to persistence.
type Session struct {
	accounts identity.Store
	sessions store.SessionRepo
	current  *identity.Account
}

// New returns a logged out session backed by the given repositories.
func New(accounts identity.Store, sessions store.SessionRepo) *Session {
	return &Session{accounts: accounts, sessions: sessions}
}

// Restore loads the persisted session, if one exists. Absent or
// unreadable snapshots leave the session logged out without error.
func (s *Session) Restore(ctx context.Context) error {
	acc, err := s.sessions.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	s.current = acc
	return nil
}

// Active reports whether an account is logged in.
func (s *Session) Active() bool {
	return s.current != nil
}

// Current returns the active account, or nil when logged out.
func (s *Session) Current() *identity.Account {
	return s.current
}

// SignUp registers a new account and makes it the active session.
func (s *Session) SignUp(ctx context.Context, name, email, secret string) error {
	acc, err := s.accounts.CreateAccount(ctx, name, email, secret)
	if err != nil {
		return err
	}
	return s.activate(ctx, acc)
}

// LogIn authenticates and makes the matching account the active session.
func (s *Session) LogIn(ctx context.Context, email, secret string) error {
	acc, err := s.accounts.Authenticate(ctx, email, secret)
	if err != nil {
		return err
	}
	return s.activate(ctx, acc)
}

// LogOut clears the active session, in memory and on disk.
func (s *Session) LogOut(ctx context.Context) error {
	s.current = nil
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("log out: %w", err)
	}
	return nil
}

// UpdateAssessment merges patch into the active account's assessment,
// persisting the account record and the session snapshot together. With
// no active session the patch is silently dropped: instrument results
// are only meaningful attached to an account.
func (s *Session) UpdateAssessment(ctx context.Context, patch identity.AssessmentRecord) error {
	if s.current == nil {
		return nil
	}
	if err := s.accounts.MergeAssessment(ctx, s.current.ID, patch); err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	if s.current.Assessment == nil {
		s.current.Assessment = &identity.AssessmentRecord{}
	}
	s.current.Assessment.Merge(patch)
	return nil
}

func (s *Session) activate(ctx context.Context, acc *identity.Account) error {
	s.current = acc
	if err := s.sessions.Save(ctx, acc); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
