package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/identity"
)

// Insight is the generated career read-out shown on the result screen.
type Insight struct {
	// Headline is a one-line verdict on the career transition.
	Headline string `json:"headline"`

	// Summary connects the hour value, chosen areas and behavioral
	// profile in two or three sentences.
	Summary string `json:"summary"`

	// Strengths the profile suggests, phrased for the user.
	Strengths []string `json:"strengths"`

	// NextSteps are concrete suggestions, ordered by impact.
	NextSteps []string `json:"next_steps"`
}

// insightSchema constrains the model output to the Insight shape.
var insightSchema = &Schema{
	Name:        "career-insight",
	Description: "Personalized career transition read-out",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One-line verdict on the career transition, max 80 characters",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentences connecting hour value, chosen areas and behavioral profile",
			},
			"strengths": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": 4,
			},
			"next_steps": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": 4,
			},
		},
		"required":             []any{"headline", "summary", "strengths", "next_steps"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a pragmatic career advisor for professionals ` +
	`considering a move into technology. You receive one person's ` +
	`self-assessment: what their working hour is really worth, which tech ` +
	`areas interest them, and their DISC behavioral profile. Respond in ` +
	`plain, encouraging language. Never invent numbers that are not in ` +
	`the assessment.`

// Service turns a completed assessment into an Insight. With a nil
// provider every call returns the canned fallback.
type Service struct {
	provider Provider
}

// NewService wires the service to a provider. Nil is allowed.
func NewService(p Provider) *Service {
	return &Service{provider: p}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Generate produces the insight for a completed assessment. Provider
// failures fall back to canned guidance rather than surfacing an error
// to the result screen.
func (s *Service) Generate(ctx context.Context, rec *identity.AssessmentRecord) (*Insight, error) {
	if rec == nil || !rec.IsComplete() {
		return nil, fmt.Errorf("insight: assessment is incomplete")
	}
	if s.provider == nil {
		return fallbackInsight(rec), nil
	}

	resp, err := s.provider.Generate(ctx, Request{
		System: systemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildPrompt(rec)},
		},
		Schema:      insightSchema,
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		return fallbackInsight(rec), nil
	}

	var ins Insight
	if err := json.Unmarshal(resp.Content, &ins); err != nil {
		return fallbackInsight(rec), nil
	}
	return &ins, nil
}

// buildPrompt renders the assessment as a compact briefing.
func buildPrompt(rec *identity.AssessmentRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gross monthly salary: %.2f\n", *rec.GrossMonthlySalary)
	fmt.Fprintf(&b, "Gross hourly value: %.2f\n", *rec.GrossHourlyValue)
	fmt.Fprintf(&b, "Net hourly value (commute included): %.2f\n", *rec.NetHourlyValue)

	labels := make([]string, len(rec.SelectedAreas))
	for i, id := range rec.SelectedAreas {
		labels[i] = areas.Label(id)
	}
	fmt.Fprintf(&b, "Interest areas: %s\n", strings.Join(labels, ", "))

	fmt.Fprintf(&b, "Dominant DISC trait: %s (%s)\n", rec.DiscProfile.String(), rec.DiscProfile.Symbol())
	for _, t := range disc.Traits {
		fmt.Fprintf(&b, "  %s: %d\n", t.String(), rec.DiscScores.Of(t))
	}

	b.WriteString("\nWrite the career insight for this person.")
	return b.String()
}

// fallbackInsight is the offline read-out, keyed on the dominant trait.
func fallbackInsight(rec *identity.AssessmentRecord) *Insight {
	labels := make([]string, len(rec.SelectedAreas))
	for i, id := range rec.SelectedAreas {
		labels[i] = areas.Label(id)
	}

	ins := &Insight{
		Headline: "Your profile points to a viable move into tech",
		Summary: fmt.Sprintf(
			"Your working hour is worth %.2f gross but %.2f once commute time is counted. "+
				"The areas you picked (%s) all reward the %s profile your answers show.",
			*rec.GrossHourlyValue, *rec.NetHourlyValue,
			strings.Join(labels, ", "), rec.DiscProfile.String(),
		),
	}

	switch *rec.DiscProfile {
	case disc.Dominance:
		ins.Strengths = []string{"Decides fast under pressure", "Comfortable owning outcomes"}
		ins.NextSteps = []string{"Target roles with clear ownership, like tech lead tracks", "Pick one area and commit to a 90-day learning plan"}
	case disc.Influence:
		ins.Strengths = []string{"Communicates ideas persuasively", "Builds networks quickly"}
		ins.NextSteps = []string{"Lean on community: meetups, open source, study groups", "Consider roles that mix tech and people, like product or developer relations"}
	case disc.Stability:
		ins.Strengths = []string{"Consistent, patient execution", "Strong collaborator in steady teams"}
		ins.NextSteps = []string{"Prefer structured learning paths over self-directed sprints", "Look for teams with mentorship and stable processes"}
	default:
		ins.Strengths = []string{"Precise, detail-driven work", "High standards for correctness"}
		ins.NextSteps = []string{"Areas with rigorous standards, like security or data, fit best", "Build a portfolio that shows depth over breadth"}
	}
	return ins
}
