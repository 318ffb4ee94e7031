// Package auth is the sign-in / sign-up screen.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/identity"
	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/components"
	"github.com/upjobs/upjobs/internal/ui/layout"
	"github.com/upjobs/upjobs/internal/ui/theme"
)

// Mode selects between logging in and creating an account.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignUp
)

const submitTimeout = 5 * time.Second

type authResultMsg struct {
	err error
}

// AuthScreen collects credentials and activates the session.
type AuthScreen struct {
	sess        *session.Session
	homeFactory func() screen.Screen

	mode    Mode
	name    components.TextInput
	email   components.TextInput
	secret  components.TextInput
	focus   int
	errText string
	busy    bool
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth screen. On success it replaces itself with the
// screen produced by homeFactory.
func New(sess *session.Session, homeFactory func() screen.Screen) *AuthScreen {
	s := &AuthScreen{
		sess:        sess,
		homeFactory: homeFactory,
		name:        components.NewTextInput("Your name", components.ModeText, 60),
		email:       components.NewTextInput("you@example.com", components.ModeText, 120),
		secret:      components.NewTextInput("Secret", components.ModeSecret, 120),
	}
	s.name.Blur()
	s.secret.Blur()
	return s
}

func (s *AuthScreen) Title() string {
	if s.mode == ModeSignUp {
		return "Create account"
	}
	return "Log in"
}

func (s *AuthScreen) Init() tea.Cmd {
	return s.focused().Focus()
}

func (s *AuthScreen) KeyHints() []layout.KeyHint {
	toggle := "Sign up instead"
	if s.mode == ModeSignUp {
		toggle = "Log in instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: toggle},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// fields returns the visible inputs in focus order.
func (s *AuthScreen) fields() []*components.TextInput {
	if s.mode == ModeSignUp {
		return []*components.TextInput{&s.name, &s.email, &s.secret}
	}
	return []*components.TextInput{&s.email, &s.secret}
}

func (s *AuthScreen) focused() *components.TextInput {
	fields := s.fields()
	if s.focus >= len(fields) {
		s.focus = len(fields) - 1
	}
	return fields[s.focus]
}

func (s *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		s.busy = false
		if msg.err != nil {
			s.errText = friendlyError(msg.err)
			return s, nil
		}
		home := s.homeFactory()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "ctrl+t":
			s.toggleMode()
			return s, s.focused().Focus()
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	*s.focused(), cmd = s.focused().Update(msg)
	return s, cmd
}

func (s *AuthScreen) moveFocus(delta int) tea.Cmd {
	fields := s.fields()
	s.focused().Blur()
	s.focus = (s.focus + delta + len(fields)) % len(fields)
	return s.focused().Focus()
}

func (s *AuthScreen) toggleMode() {
	s.focused().Blur()
	if s.mode == ModeLogin {
		s.mode = ModeSignUp
	} else {
		s.mode = ModeLogin
	}
	s.focus = 0
	s.errText = ""
}

func (s *AuthScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	email := strings.TrimSpace(s.email.Value())
	secret := s.secret.Value()

	if s.mode == ModeSignUp && name == "" {
		s.errText = "Name is required."
		return nil
	}
	if email == "" || secret == "" {
		s.errText = "Email and secret are required."
		return nil
	}

	s.busy = true
	s.errText = ""
	mode := s.mode
	sess := s.sess

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		var err error
		if mode == ModeSignUp {
			err = sess.SignUp(ctx, name, email, secret)
		} else {
			err = sess.LogIn(ctx, email, secret)
		}
		return authResultMsg{err: err}
	}
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, identity.ErrDuplicateEmail):
		return "That email is already registered. Try logging in."
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Email or secret did not match."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (s *AuthScreen) View(width, height int) string {
	var b strings.Builder

	title := "Welcome back"
	if s.mode == ModeSignUp {
		title = "Create your account"
	}
	b.WriteString(theme.Title.Render(title) + "\n\n")

	if s.mode == ModeSignUp {
		b.WriteString(fieldLabel("Name", s.focus == 0 && s.mode == ModeSignUp) + "\n")
		b.WriteString(s.name.View() + "\n\n")
	}

	emailIdx := 0
	if s.mode == ModeSignUp {
		emailIdx = 1
	}
	b.WriteString(fieldLabel("Email", s.focus == emailIdx) + "\n")
	b.WriteString(s.email.View() + "\n\n")
	b.WriteString(fieldLabel("Secret", s.focus == emailIdx+1) + "\n")
	b.WriteString(s.secret.View() + "\n")

	if s.busy {
		b.WriteString("\n" + theme.Hint.Render("Working..."))
	}
	if s.errText != "" {
		b.WriteString("\n" + theme.Negative.Render(s.errText))
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return theme.Selected.Render(label)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
