package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/hourvalue"
	"github.com/upjobs/upjobs/internal/session"
	"github.com/upjobs/upjobs/internal/store"
)

func newTestController(t *testing.T) (*Controller, *session.Session) {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sess := session.New(st.Accounts(), st.Sessions())
	if err := sess.SignUp(context.Background(), "Ana", "ana@example.com", "secret"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return New(sess), sess
}

func runDisc(t *testing.T) *disc.Result {
	t.Helper()
	test := disc.NewTest()
	var res *disc.Result
	for !test.Finished() {
		var err error
		res, err = test.Answer(0)
		if err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if res == nil {
		t.Fatal("questionnaire produced no result")
	}
	return res
}

func TestFullRun(t *testing.T) {
	c, sess := newTestController(t)
	ctx := context.Background()

	if c.Stage() != StageHourValue {
		t.Fatalf("start stage = %v", c.Stage())
	}

	bd, err := c.SubmitHourValue(ctx, hourvalue.Inputs{
		GrossMonthlySalary: 4000,
		WeeklyHours:        40,
		DailyCommuteHours:  1,
	})
	if err != nil {
		t.Fatalf("hour value stage: %v", err)
	}
	if bd.NetHourlyValue <= 0 {
		t.Errorf("breakdown = %+v", bd)
	}
	if c.Stage() != StageAreas {
		t.Fatalf("stage after hour value = %v", c.Stage())
	}

	if err := c.SubmitAreas(ctx, areas.Selection{"dev", "data"}); err != nil {
		t.Fatalf("areas stage: %v", err)
	}
	if c.Stage() != StageDisc {
		t.Fatalf("stage after areas = %v", c.Stage())
	}

	if err := c.SubmitDisc(ctx, runDisc(t)); err != nil {
		t.Fatalf("questionnaire stage: %v", err)
	}
	if !c.Done() {
		t.Error("wizard not done after final stage")
	}

	rec := sess.Current().Assessment
	if rec == nil || !rec.Completed || !rec.IsComplete() {
		t.Errorf("assessment after full run = %+v", rec)
	}
}

func TestSubmitHourValue_RejectsInvalidInputs(t *testing.T) {
	c, sess := newTestController(t)
	ctx := context.Background()

	_, err := c.SubmitHourValue(ctx, hourvalue.Inputs{
		GrossMonthlySalary: 0,
		WeeklyHours:        40,
	})
	if !errors.Is(err, ErrIncompleteStage) {
		t.Fatalf("err = %v, want ErrIncompleteStage", err)
	}
	if c.Stage() != StageHourValue {
		t.Errorf("stage moved on rejected input: %v", c.Stage())
	}
	if sess.Current().Assessment != nil {
		t.Errorf("rejected input was committed: %+v", sess.Current().Assessment)
	}
}

func TestSubmitAreas_RequiresSelection(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if _, err := c.SubmitHourValue(ctx, hourvalue.Inputs{GrossMonthlySalary: 4000, WeeklyHours: 40}); err != nil {
		t.Fatalf("hour value stage: %v", err)
	}

	if err := c.SubmitAreas(ctx, areas.Selection{}); !errors.Is(err, ErrIncompleteStage) {
		t.Fatalf("empty selection err = %v, want ErrIncompleteStage", err)
	}
	if c.Stage() != StageAreas {
		t.Errorf("stage moved on empty selection: %v", c.Stage())
	}
}

func TestStageOrderIsEnforced(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if err := c.SubmitAreas(ctx, areas.Selection{"dev"}); !errors.Is(err, ErrIncompleteStage) {
		t.Errorf("areas out of order err = %v", err)
	}
	if err := c.SubmitDisc(ctx, runDisc(t)); !errors.Is(err, ErrIncompleteStage) {
		t.Errorf("questionnaire out of order err = %v", err)
	}
}

func TestRetreat(t *testing.T) {
	c, sess := newTestController(t)
	ctx := context.Background()

	c.Retreat()
	if c.Stage() != StageHourValue {
		t.Fatalf("retreat at first stage moved to %v", c.Stage())
	}

	if _, err := c.SubmitHourValue(ctx, hourvalue.Inputs{GrossMonthlySalary: 4000, WeeklyHours: 40}); err != nil {
		t.Fatalf("hour value stage: %v", err)
	}
	if err := c.SubmitAreas(ctx, areas.Selection{"dev"}); err != nil {
		t.Fatalf("areas stage: %v", err)
	}

	c.Retreat()
	if c.Stage() != StageAreas {
		t.Fatalf("retreat from questionnaire landed on %v", c.Stage())
	}

	// Re-submitting overwrites the earlier commit.
	if err := c.SubmitAreas(ctx, areas.Selection{"cyber", "cloud"}); err != nil {
		t.Fatalf("re-submit areas: %v", err)
	}
	got := sess.Current().Assessment.SelectedAreas
	if len(got) != 2 || got[0] != "cyber" {
		t.Errorf("re-submit did not overwrite: %v", got)
	}
}

func TestRetreatClearsDoneOnlyWhenMoving(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	if _, err := c.SubmitHourValue(ctx, hourvalue.Inputs{GrossMonthlySalary: 4000, WeeklyHours: 40}); err != nil {
		t.Fatalf("hour value stage: %v", err)
	}
	if err := c.SubmitAreas(ctx, areas.Selection{"dev"}); err != nil {
		t.Fatalf("areas stage: %v", err)
	}
	if err := c.SubmitDisc(ctx, runDisc(t)); err != nil {
		t.Fatalf("questionnaire stage: %v", err)
	}
	if !c.Done() {
		t.Fatal("wizard not done after final stage")
	}

	c.Retreat()
	if c.Stage() != StageAreas || c.Done() {
		t.Fatalf("retreat from done landed on %v, done=%v", c.Stage(), c.Done())
	}

	c.Retreat()
	if c.Stage() != StageHourValue {
		t.Fatalf("retreats landed on %v", c.Stage())
	}

	// At the first stage a retreat changes nothing.
	c.Retreat()
	if c.Stage() != StageHourValue || c.Done() {
		t.Errorf("retreat at first stage changed state: stage=%v done=%v", c.Stage(), c.Done())
	}
}
