package insight

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/identity"
)

func completedRecord() *identity.AssessmentRecord {
	return &identity.AssessmentRecord{
		GrossMonthlySalary: identity.Float(4000),
		WeeklyHours:        identity.Float(40),
		DailyCommuteHours:  identity.Float(1),
		GrossHourlyValue:   identity.Float(23.09),
		NetHourlyValue:     identity.Float(18.42),
		SelectedAreas:      []string{"dev", "data"},
		DiscProfile:        identity.TraitPtr(disc.Conformity),
		DiscScores:         identity.ScoresPtr(disc.Scores{2, 2, 2, 6}),
		Completed:          true,
	}
}

func TestGenerate_UsesProviderOutput(t *testing.T) {
	canned := Insight{
		Headline:  "Go for it",
		Summary:   "Numbers and profile line up.",
		Strengths: []string{"precision", "focus"},
		NextSteps: []string{"study", "build"},
	}
	content, _ := json.Marshal(canned)

	mock := NewMockProvider(MockResponse{Content: content})
	svc := NewService(mock)

	got, err := svc.Generate(context.Background(), completedRecord())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Headline != "Go for it" || len(got.NextSteps) != 2 {
		t.Errorf("insight = %+v", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "career-insight" {
		t.Errorf("request schema = %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"18.42", "Software Development", "Conformity"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerate_FallsBackWhenProviderFails(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	svc := NewService(mock)

	got, err := svc.Generate(context.Background(), completedRecord())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got.Headline == "" || len(got.Strengths) == 0 || len(got.NextSteps) == 0 {
		t.Errorf("fallback insight = %+v", got)
	}
}

func TestGenerate_NilProviderUsesFallback(t *testing.T) {
	svc := NewService(nil)
	if svc.Available() {
		t.Error("nil provider reported available")
	}

	got, err := svc.Generate(context.Background(), completedRecord())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(got.Summary, "18.42") {
		t.Errorf("fallback summary missing net value: %q", got.Summary)
	}
}

func TestGenerate_RejectsIncompleteAssessment(t *testing.T) {
	svc := NewService(NewMockProvider())

	if _, err := svc.Generate(context.Background(), nil); err == nil {
		t.Error("nil record accepted")
	}
	if _, err := svc.Generate(context.Background(), &identity.AssessmentRecord{}); err == nil {
		t.Error("empty record accepted")
	}
}

func TestFallbackVariesByProfile(t *testing.T) {
	svc := NewService(nil)
	seen := map[string]bool{}
	for _, trait := range disc.Traits {
		rec := completedRecord()
		rec.DiscProfile = identity.TraitPtr(trait)
		got, err := svc.Generate(context.Background(), rec)
		if err != nil {
			t.Fatalf("generate for %v: %v", trait, err)
		}
		key := strings.Join(got.NextSteps, "|")
		if seen[key] {
			t.Errorf("profile %v shares fallback steps with another profile", trait)
		}
		seen[key] = true
	}
}
