// Package result renders the completed assessment: behavioral profile,
// chosen areas, financial summary and the generated career insight.
package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/identity"
	"github.com/upjobs/upjobs/internal/insight"
	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/layout"
	"github.com/upjobs/upjobs/internal/ui/theme"
)

const insightTimeout = 30 * time.Second

type insightMsg struct {
	insight *insight.Insight
	err     error
}

// ResultScreen shows the final read-out.
type ResultScreen struct {
	sess     *session.Session
	insights *insight.Service

	generated *insight.Insight
	loading   bool
	errText   string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen.
func New(sess *session.Session, insights *insight.Service) *ResultScreen {
	return &ResultScreen{
		sess:     sess,
		insights: insights,
	}
}

func (s *ResultScreen) Title() string {
	return "Your results"
}

func (s *ResultScreen) Init() tea.Cmd {
	rec := s.sess.Current().Assessment
	if rec == nil || !rec.IsComplete() {
		return nil
	}

	s.loading = true
	svc := s.insights
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
		defer cancel()

		ins, err := svc.Generate(ctx, rec)
		return insightMsg{insight: ins, err: err}
	}
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightMsg:
		s.loading = false
		if msg.err != nil {
			s.errText = msg.err.Error()
			return s, nil
		}
		s.generated = msg.insight
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	rec := s.sess.Current().Assessment
	if rec == nil || !rec.IsComplete() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Complete the assessment to see your results."))
	}

	left := s.viewProfile(rec)
	right := s.viewFinancials(rec) + "\n" + s.viewInsight()

	var content string
	if layout.IsCompactWidth(width) {
		content = left + "\n" + right
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *ResultScreen) viewProfile(rec *identity.AssessmentRecord) string {
	trait := *rec.DiscProfile

	var b strings.Builder
	b.WriteString(theme.Title.Render("Behavioral profile") + "\n\n")
	b.WriteString(theme.Selected.Render(fmt.Sprintf("%s (%s)", trait.String(), trait.Symbol())) + "\n")
	b.WriteString(wrap(trait.Description(), 40) + "\n\n")

	total := rec.DiscScores.Total()
	for _, t := range disc.Traits {
		score := rec.DiscScores.Of(t)
		bar := strings.Repeat("█", score)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if t == trait {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %-12s %s %d/%d", t.Symbol(), t.String(), bar, score, total)) + "\n")
	}

	b.WriteString("\n" + theme.Subtitle.Render("Areas you picked") + "\n")
	for _, id := range rec.SelectedAreas {
		b.WriteString("  • " + areas.Label(id) + "\n")
	}

	return theme.Card.Render(b.String())
}

func (s *ResultScreen) viewFinancials(rec *identity.AssessmentRecord) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Your hour in numbers") + "\n\n")
	b.WriteString(fmt.Sprintf("Gross hourly value   %s\n", theme.Positive.Render(fmt.Sprintf("R$ %.2f", *rec.GrossHourlyValue))))
	b.WriteString(fmt.Sprintf("Net hourly value     %s\n", theme.Negative.Render(fmt.Sprintf("R$ %.2f", *rec.NetHourlyValue))))

	loss := (*rec.GrossHourlyValue - *rec.NetHourlyValue) / *rec.GrossHourlyValue * 100
	if loss > 0.5 {
		b.WriteString(fmt.Sprintf("\nCommuting eats %.0f%% of your hour's value.\n", loss))
	}
	return theme.Card.Render(b.String())
}

func (s *ResultScreen) viewInsight() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Career insight") + "\n\n")

	switch {
	case s.loading:
		b.WriteString(theme.Hint.Render("Thinking it over..."))
	case s.errText != "":
		b.WriteString(theme.Negative.Render(s.errText))
	case s.generated != nil:
		ins := s.generated
		b.WriteString(theme.Selected.Render(ins.Headline) + "\n\n")
		b.WriteString(wrap(ins.Summary, 44) + "\n\n")
		b.WriteString(theme.Subtitle.Render("Strengths") + "\n")
		for _, st := range ins.Strengths {
			b.WriteString("  + " + st + "\n")
		}
		b.WriteString("\n" + theme.Subtitle.Render("Next steps") + "\n")
		for i, step := range ins.NextSteps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return theme.Card.Render(b.String())
}

// wrap breaks text into lines no longer than width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, w := range words {
		if line != "" && len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		if line == "" {
			line = w
		} else {
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
