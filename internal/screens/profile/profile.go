// Package profile shows the account and its assessment status.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/layout"
	"github.com/upjobs/upjobs/internal/ui/theme"
)

// ProfileScreen is a read-only view of the logged-in account.
type ProfileScreen struct {
	sess *session.Session
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(sess *session.Session) *ProfileScreen {
	return &ProfileScreen{sess: sess}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	acc := s.sess.Current()

	var b strings.Builder
	b.WriteString(theme.Title.Render(acc.Name) + "\n")
	b.WriteString(theme.Subtitle.Render(acc.Email) + "\n\n")

	rec := acc.Assessment
	switch {
	case rec == nil:
		b.WriteString(theme.Hint.Render("No assessment yet. Start one from the home menu."))
	case rec.Completed:
		b.WriteString(theme.Positive.Render("Assessment complete") + "\n\n")
		b.WriteString(fmt.Sprintf("Net hourly value   R$ %.2f\n", *rec.NetHourlyValue))
		b.WriteString(fmt.Sprintf("Profile            %s\n", rec.DiscProfile.String()))
		b.WriteString(fmt.Sprintf("Areas              %s\n", joinLabels(rec.SelectedAreas)))
	default:
		b.WriteString(theme.Hint.Render("Assessment in progress") + "\n\n")
		if rec.NetHourlyValue != nil {
			b.WriteString(fmt.Sprintf("Net hourly value   R$ %.2f\n", *rec.NetHourlyValue))
		}
		if len(rec.SelectedAreas) > 0 {
			b.WriteString(fmt.Sprintf("Areas              %s\n", joinLabels(rec.SelectedAreas)))
		}
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func joinLabels(ids []string) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = areas.Label(id)
	}
	return strings.Join(labels, ", ")
}
