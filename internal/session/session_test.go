package session

import (
	"context"
	"errors"
	"testing"

	"github.com/upjobs/upjobs/internal/identity"
	"github.com/upjobs/upjobs/internal/store"
)

func newTestSession(t *testing.T) (*Session, *store.Store) {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s.Accounts(), s.Sessions()), s
}

func TestSignUpActivatesAndPersists(t *testing.T) {
	sess, st := newTestSession(t)
	ctx := context.Background()

	if err := sess.SignUp(ctx, "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if !sess.Active() || sess.Current().Email != "ana@example.com" {
		t.Fatalf("session not active after sign up: %+v", sess.Current())
	}

	// A fresh session over the same store restores the account.
	fresh := New(st.Accounts(), st.Sessions())
	if err := fresh.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !fresh.Active() || fresh.Current().Email != "ana@example.com" {
		t.Errorf("restored session = %+v", fresh.Current())
	}
}

func TestLogInRejectsBadCredentials(t *testing.T) {
	sess, _ := newTestSession(t)
	ctx := context.Background()

	if err := sess.SignUp(ctx, "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if err := sess.LogOut(ctx); err != nil {
		t.Fatalf("log out: %v", err)
	}

	err := sess.LogIn(ctx, "ana@example.com", "wrong")
	if !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("log in err = %v, want ErrInvalidCredentials", err)
	}
	if sess.Active() {
		t.Error("session active after failed login")
	}

	if err := sess.LogIn(ctx, "ana@example.com", "secret"); err != nil {
		t.Fatalf("log in: %v", err)
	}
	if !sess.Active() {
		t.Error("session not active after login")
	}
}

func TestLogOutClearsPersistedSession(t *testing.T) {
	sess, st := newTestSession(t)
	ctx := context.Background()

	if err := sess.SignUp(ctx, "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if err := sess.LogOut(ctx); err != nil {
		t.Fatalf("log out: %v", err)
	}

	fresh := New(st.Accounts(), st.Sessions())
	if err := fresh.Restore(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if fresh.Active() {
		t.Errorf("session survived log out: %+v", fresh.Current())
	}
}

func TestUpdateAssessment(t *testing.T) {
	sess, _ := newTestSession(t)
	ctx := context.Background()

	if err := sess.SignUp(ctx, "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	patch := identity.AssessmentRecord{
		GrossMonthlySalary: identity.Float(4000),
		WeeklyHours:        identity.Float(40),
	}
	if err := sess.UpdateAssessment(ctx, patch); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec := sess.Current().Assessment
	if rec == nil || *rec.GrossMonthlySalary != 4000 {
		t.Fatalf("in-memory account not updated: %+v", rec)
	}

	// The merge also reaches the canonical record.
	if err := sess.LogOut(ctx); err != nil {
		t.Fatalf("log out: %v", err)
	}
	if err := sess.LogIn(ctx, "ana@example.com", "secret"); err != nil {
		t.Fatalf("log in: %v", err)
	}
	rec = sess.Current().Assessment
	if rec == nil || *rec.WeeklyHours != 40 {
		t.Errorf("persisted record = %+v", rec)
	}
}

func TestUpdateAssessment_NoSessionIsSilentNoOp(t *testing.T) {
	sess, _ := newTestSession(t)

	err := sess.UpdateAssessment(context.Background(), identity.AssessmentRecord{
		GrossMonthlySalary: identity.Float(4000),
	})
	if err != nil {
		t.Fatalf("update without session errored: %v", err)
	}
	if sess.Active() {
		t.Error("update without session activated one")
	}
}
