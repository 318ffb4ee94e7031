// Package app wires the screens together and runs the Bubble Tea
// program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/insight"
	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/screens/assessment"
	"github.com/upjobs/upjobs/internal/screens/auth"
	"github.com/upjobs/upjobs/internal/screens/home"
	"github.com/upjobs/upjobs/internal/screens/profile"
	"github.com/upjobs/upjobs/internal/screens/result"
	"github.com/upjobs/upjobs/internal/screens/welcome"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/layout"
)

// Options carries the app's dependencies, built in cmd.
type Options struct {
	Session  *session.Session
	Insights *insight.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel builds the screen graph and picks the entry screen.
func newAppModel(opts Options) AppModel {
	sess := opts.Session

	// The factories reference each other, so declare first, assign below.
	var (
		authFactory       func() screen.Screen
		homeFactory       func() screen.Screen
		assessmentFactory func() screen.Screen
		resultFactory     func() screen.Screen
		profileFactory    func() screen.Screen
	)

	resultFactory = func() screen.Screen {
		return result.New(sess, opts.Insights)
	}
	assessmentFactory = func() screen.Screen {
		return assessment.New(sess, resultFactory)
	}
	profileFactory = func() screen.Screen {
		return profile.New(sess)
	}
	homeFactory = func() screen.Screen {
		return home.New(sess, home.Factories{
			Assessment: assessmentFactory,
			Result:     resultFactory,
			Profile:    profileFactory,
			Auth:       authFactory,
		})
	}
	authFactory = func() screen.Screen {
		return auth.New(sess, homeFactory)
	}

	entry := authFactory
	if sess.Active() {
		entry = homeFactory
	}

	return AppModel{
		router:  router.New(welcome.New(entry)),
		session: sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	user := ""
	if acc := m.session.Current(); acc != nil {
		user = acc.Email
	}

	header := layout.RenderHeader(title, user, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
