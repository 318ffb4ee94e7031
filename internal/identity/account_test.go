package identity

import (
	"encoding/json"
	"testing"

	"github.com/upjobs/upjobs/internal/disc"
)

func TestMerge_OverwritesOnlyPatchedFields(t *testing.T) {
	rec := AssessmentRecord{
		GrossMonthlySalary: Float(4000),
		WeeklyHours:        Float(40),
		SelectedAreas:      []string{"dev"},
	}

	rec.Merge(AssessmentRecord{GrossMonthlySalary: Float(5000)})

	if *rec.GrossMonthlySalary != 5000 {
		t.Errorf("salary = %v, want 5000", *rec.GrossMonthlySalary)
	}
	if *rec.WeeklyHours != 40 {
		t.Errorf("weekly hours changed: %v", *rec.WeeklyHours)
	}
	if len(rec.SelectedAreas) != 1 || rec.SelectedAreas[0] != "dev" {
		t.Errorf("selected areas changed: %v", rec.SelectedAreas)
	}
}

func TestMerge_CompletedIsALatch(t *testing.T) {
	rec := AssessmentRecord{}
	rec.Merge(AssessmentRecord{Completed: true})
	if !rec.Completed {
		t.Fatal("completed not set")
	}
	rec.Merge(AssessmentRecord{GrossMonthlySalary: Float(1)})
	if !rec.Completed {
		t.Error("completed reset by unrelated merge")
	}
}

func TestIsComplete(t *testing.T) {
	rec := AssessmentRecord{}
	if rec.IsComplete() {
		t.Error("empty record reported complete")
	}

	rec.Merge(AssessmentRecord{
		GrossMonthlySalary: Float(4000),
		WeeklyHours:        Float(40),
		DailyCommuteHours:  Float(1),
		GrossHourlyValue:   Float(23.1),
		NetHourlyValue:     Float(18.4),
	})
	if rec.IsComplete() {
		t.Error("financials alone reported complete")
	}

	rec.Merge(AssessmentRecord{SelectedAreas: []string{"dev", "data"}})
	if rec.IsComplete() {
		t.Error("two stages reported complete")
	}

	rec.Merge(AssessmentRecord{
		DiscProfile: TraitPtr(disc.Influence),
		DiscScores:  ScoresPtr(disc.Scores{2, 5, 3, 2}),
	})
	if !rec.IsComplete() {
		t.Error("full record not reported complete")
	}
}

func TestAssessmentRecord_JSONRoundTrip(t *testing.T) {
	rec := AssessmentRecord{
		GrossMonthlySalary: Float(4000),
		WeeklyHours:        Float(40),
		DailyCommuteHours:  Float(0.5),
		GrossHourlyValue:   Float(23.1),
		NetHourlyValue:     Float(20.2),
		SelectedAreas:      []string{"dev", "cyber"},
		DiscProfile:        TraitPtr(disc.Conformity),
		DiscScores:         ScoresPtr(disc.Scores{1, 2, 3, 6}),
		Completed:          true,
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got AssessmentRecord
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if *got.DiscProfile != disc.Conformity {
		t.Errorf("profile = %v", *got.DiscProfile)
	}
	if got.DiscScores.Of(disc.Conformity) != 6 {
		t.Errorf("scores = %v", *got.DiscScores)
	}
	if !got.Completed || len(got.SelectedAreas) != 2 {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestAssessmentRecord_EmptyOmitsFields(t *testing.T) {
	b, err := json.Marshal(AssessmentRecord{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Errorf("empty record serialized as %s, want {}", b)
	}
}
