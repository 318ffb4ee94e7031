// Package assessment hosts the three-step wizard: hour value, interest
// areas and the behavioral questionnaire.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/hourvalue"
	"github.com/upjobs/upjobs/internal/router"
	"github.com/upjobs/upjobs/internal/screen"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/ui/components"
	"github.com/upjobs/upjobs/internal/ui/layout"
	"github.com/upjobs/upjobs/internal/ui/theme"
	"github.com/upjobs/upjobs/internal/wizard"
)

// phase is the screen-local view state. It tracks the wizard stage but
// adds the breakdown interstitial between calculator and areas.
type phase int

const (
	phaseCalculator phase = iota
	phaseBreakdown
	phaseAreas
	phaseDisc
)

// AssessmentScreen drives the wizard controller.
type AssessmentScreen struct {
	sess          *session.Session
	ctrl          *wizard.Controller
	resultFactory func() screen.Screen

	phase     phase
	salary    components.TextInput
	weekly    components.TextInput
	commute   components.TextInput
	focus     int
	breakdown hourvalue.Breakdown
	checklist components.Checklist
	test      *disc.Test
	choice    components.ChoiceList
	pending   *disc.Result
	errText   string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates the wizard screen, pre-filling inputs from any earlier
// run stored on the account.
func New(sess *session.Session, resultFactory func() screen.Screen) *AssessmentScreen {
	s := &AssessmentScreen{
		sess:          sess,
		ctrl:          wizard.New(sess),
		resultFactory: resultFactory,
		salary:        components.NewTextInput("e.g. 4000", components.ModeDecimal, 12),
		weekly:        components.NewTextInput("e.g. 40", components.ModeDecimal, 6),
		commute:       components.NewTextInput("e.g. 1.5 (0 if remote)", components.ModeDecimal, 6),
	}
	s.weekly.Blur()
	s.commute.Blur()

	if rec := sess.Current().Assessment; rec != nil {
		if rec.GrossMonthlySalary != nil {
			s.salary.Model.SetValue(trimFloat(*rec.GrossMonthlySalary))
		}
		if rec.WeeklyHours != nil {
			s.weekly.Model.SetValue(trimFloat(*rec.WeeklyHours))
		}
		if rec.DailyCommuteHours != nil && *rec.DailyCommuteHours > 0 {
			s.commute.Model.SetValue(trimFloat(*rec.DailyCommuteHours))
		}
	}
	return s
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return s.inputs()[0].Focus()
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseBreakdown:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Edit inputs"},
		}
	case phaseAreas:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseDisc:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Calculate"},
			{Key: "Esc", Description: "Home"},
		}
	}
}

func (s *AssessmentScreen) inputs() []*components.TextInput {
	return []*components.TextInput{&s.salary, &s.weekly, &s.commute}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forward(msg)
	}

	switch s.phase {
	case phaseCalculator:
		return s.updateCalculator(kmsg)
	case phaseBreakdown:
		return s.updateBreakdown(kmsg)
	case phaseAreas:
		return s.updateAreas(kmsg)
	default:
		return s.updateDisc(kmsg)
	}
}

// forward passes non-key messages to the focused component.
func (s *AssessmentScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.phase == phaseCalculator {
		var cmd tea.Cmd
		*s.inputs()[s.focus], cmd = s.inputs()[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) updateCalculator(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "down":
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "enter":
		if s.focus < len(s.inputs())-1 {
			return s, s.moveFocus(1)
		}
		return s.calculate()
	}

	var cmd tea.Cmd
	*s.inputs()[s.focus], cmd = s.inputs()[s.focus].Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) moveFocus(delta int) tea.Cmd {
	inputs := s.inputs()
	inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(inputs)) % len(inputs)
	return inputs[s.focus].Focus()
}

// parseInputs reads the three calculator fields as floats.
func (s *AssessmentScreen) parseInputs() (hourvalue.Inputs, error) {
	salary, err1 := s.salary.FloatValue()
	weekly, err2 := s.weekly.FloatValue()
	commute, err3 := s.commute.FloatValue()
	if err1 != nil || err2 != nil || err3 != nil {
		return hourvalue.Inputs{}, errNotANumber
	}
	return hourvalue.Inputs{
		GrossMonthlySalary: salary,
		WeeklyHours:        weekly,
		DailyCommuteHours:  commute,
	}, nil
}

var errNotANumber = errors.New("assessment: input is not a number")

func (s *AssessmentScreen) calculate() (screen.Screen, tea.Cmd) {
	in, err := s.parseInputs()
	if err != nil {
		s.errText = "Enter numbers only."
		return s, nil
	}

	bd, err := s.ctrl.SubmitHourValue(context.Background(), in)
	if err != nil {
		s.errText = "Salary and weekly hours must be greater than zero; commute can't be negative."
		return s, nil
	}

	s.errText = ""
	s.breakdown = bd
	s.phase = phaseBreakdown
	return s, nil
}

func (s *AssessmentScreen) updateBreakdown(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Retreating from areas leaves the controller on the first
		// stage; re-submit the accepted inputs so areas can advance.
		if s.ctrl.Stage() == wizard.StageHourValue {
			in, err := s.parseInputs()
			if err == nil {
				_, err = s.ctrl.SubmitHourValue(context.Background(), in)
			}
			if err != nil {
				s.phase = phaseCalculator
				s.focus = 0
				return s, s.inputs()[0].Focus()
			}
		}
		s.enterAreas()
		return s, nil
	case "esc":
		// Back to edit: the controller steps back so the calculator can
		// re-submit.
		s.ctrl.Retreat()
		s.phase = phaseCalculator
		s.focus = 0
		return s, s.inputs()[0].Focus()
	}
	return s, nil
}

func (s *AssessmentScreen) enterAreas() {
	var checked []string
	if rec := s.sess.Current().Assessment; rec != nil {
		checked = rec.SelectedAreas
	}

	items := make([]components.ChecklistItem, 0, len(areas.Catalog()))
	for _, a := range areas.Catalog() {
		items = append(items, components.ChecklistItem{
			ID:     a.ID,
			Label:  a.Label,
			Detail: fmt.Sprintf("%s demand · %s", a.Demand, a.SalaryRange),
		})
	}
	s.checklist = components.NewChecklist(items, areas.MaxSelected, checked)
	s.phase = phaseAreas
	s.errText = ""
}

func (s *AssessmentScreen) updateAreas(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.ctrl.Retreat()
		s.phase = phaseBreakdown
		return s, nil
	case "enter":
		sel := areas.Selection(s.checklist.Checked())
		if err := s.ctrl.SubmitAreas(context.Background(), sel); err != nil {
			s.errText = "Pick at least one area."
			return s, nil
		}
		s.enterDisc()
		return s, nil
	}

	var cmd tea.Cmd
	s.checklist, cmd = s.checklist.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) enterDisc() {
	s.test = disc.NewTest()
	item := s.test.Current()
	s.choice = components.NewChoiceList(item.Prompt, optionTexts(item))
	s.phase = phaseDisc
	s.errText = ""
}

func optionTexts(item *disc.Item) []string {
	out := make([]string, len(item.Options))
	for i, opt := range item.Options {
		out[i] = opt.Text
	}
	return out
}

func (s *AssessmentScreen) updateDisc(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		// Answers are accumulate-only, so backing out is allowed only
		// before the first one is scored.
		if s.test.AtFirstItem() {
			s.ctrl.Retreat()
			s.enterAreas()
		}
		return s, nil
	}

	if s.pending != nil {
		if msg.String() == "enter" {
			return s.finishDisc(s.pending)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !s.choice.Submitted {
		return s, cmd
	}

	res, err := s.test.Answer(s.choice.ChosenIndex)
	if err != nil {
		return s, cmd
	}
	if res != nil {
		return s.finishDisc(res)
	}

	item := s.test.Current()
	s.choice.Reset(item.Prompt, optionTexts(item))
	return s, cmd
}

func (s *AssessmentScreen) finishDisc(res *disc.Result) (screen.Screen, tea.Cmd) {
	if err := s.ctrl.SubmitDisc(context.Background(), res); err != nil {
		s.pending = res
		s.errText = "Could not save your result. Press Enter to retry."
		return s, nil
	}
	s.pending = nil
	s.errText = ""
	result := s.resultFactory()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

func (s *AssessmentScreen) View(width, height int) string {
	var body string
	switch s.phase {
	case phaseCalculator:
		body = s.viewCalculator()
	case phaseBreakdown:
		body = s.viewBreakdown()
	case phaseAreas:
		body = s.viewAreas()
	default:
		body = s.viewDisc()
	}

	// The breakdown interstitial still belongs to step one even though
	// the controller has already advanced.
	stage := s.ctrl.Stage()
	if s.phase == phaseBreakdown {
		stage = wizard.StageHourValue
	}
	step := components.StepIndicator(int(stage), wizard.NumStages, stage.String())
	content := step + "\n\n" + body

	if s.errText != "" {
		content += "\n" + theme.Negative.Render(s.errText)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *AssessmentScreen) viewCalculator() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("What is your hour worth?") + "\n\n")

	labels := []string{"Gross monthly salary (R$)", "Hours worked per week", "One-way commute (hours per day)"}
	for i, input := range s.inputs() {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focus {
			style = theme.Selected
		}
		b.WriteString(style.Render(labels[i]) + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	return theme.Card.Render(b.String())
}

func (s *AssessmentScreen) viewBreakdown() string {
	bd := s.breakdown

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your hour, valued") + "\n\n")
	b.WriteString(fmt.Sprintf("Hours worked per month      %8.1f h\n", bd.MonthlyWorkedHours))
	b.WriteString(fmt.Sprintf("Commute hours per month     %8.1f h\n", bd.CommuteHoursPerMonth))
	b.WriteString(fmt.Sprintf("Total hours committed       %8.1f h\n\n", bd.TotalHoursPerMonth))
	b.WriteString("Gross hourly value          " + theme.Positive.Render(fmt.Sprintf("R$ %8.2f", bd.GrossHourlyValue)) + "\n")
	b.WriteString("Net hourly value            " + theme.Negative.Render(fmt.Sprintf("R$ %8.2f", bd.NetHourlyValue)) + "\n")

	if bd.OpportunityCostPerMonth > 0 {
		b.WriteString(fmt.Sprintf("\nYour commute costs you R$ %.2f every month.\n", bd.OpportunityCostPerMonth))
	}

	b.WriteString("\n" + components.NewButton("Continue", true, nil).View())

	return theme.Card.Render(b.String())
}

func (s *AssessmentScreen) viewAreas() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Which areas interest you?") + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Pick up to %d", areas.MaxSelected)) + "\n\n")
	b.WriteString(s.checklist.View())
	return theme.Card.Render(b.String())
}

func (s *AssessmentScreen) viewDisc() string {
	index := s.test.Index()
	if index >= s.test.Len() {
		index = s.test.Len() - 1
	}

	var b strings.Builder
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", index+1, s.test.Len()),
		float64(index)/float64(s.test.Len()),
		false, 50,
	)
	b.WriteString(progress.View() + "\n\n")
	b.WriteString(s.choice.View())
	return theme.Card.Render(b.String())
}
