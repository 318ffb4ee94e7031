// Package home is the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/components"
	"github.com/upjobs/upjobs/internal/ui/theme"
)

// Factories builds the screens the menu navigates to. Injected to keep
// the screen packages free of cycles.
type Factories struct {
	Assessment func() screen.Screen
	Result     func() screen.Screen
	Profile    func() screen.Screen
	Auth       func() screen.Screen
}

// HomeScreen is the main menu.
type HomeScreen struct {
	sess      *session.Session
	factories Factories
	menu      components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New builds the menu for the current session state.
func New(sess *session.Session, factories Factories) *HomeScreen {
	s := &HomeScreen{
		sess:      sess,
		factories: factories,
	}
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *HomeScreen) buildItems() []components.MenuItem {
	rec := s.sess.Current().Assessment

	startLabel := "Start assessment"
	if rec != nil && !rec.Completed {
		startLabel = "Continue assessment"
	} else if rec != nil && rec.Completed {
		startLabel = "Redo assessment"
	}

	return []components.MenuItem{
		{
			Label: startLabel,
			Action: func() tea.Cmd {
				return pushCmd(s.factories.Assessment())
			},
		},
		{
			Label:    "View results",
			Disabled: rec == nil || !rec.Completed,
			Action: func() tea.Cmd {
				return pushCmd(s.factories.Result())
			},
		},
		{
			Label: "Profile",
			Action: func() tea.Cmd {
				return pushCmd(s.factories.Profile())
			},
		},
		{
			Label: "Log out",
			Action: func() tea.Cmd {
				sess := s.sess
				auth := s.factories.Auth
				return func() tea.Msg {
					_ = sess.LogOut(context.Background())
					return router.ReplaceScreenMsg{Screen: auth()}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}
}

func pushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Refresh labels and disabled states: the assessment may have
	// advanced while this screen sat below another on the stack.
	s.menu.Items = s.buildItems()

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	acc := s.sess.Current()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Hello, "+acc.Name) + "\n")
	b.WriteString(theme.Subtitle.Render("What would you like to do?") + "\n\n")
	b.WriteString(s.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
