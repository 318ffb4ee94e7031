// Package wizard sequences the three assessment instruments and commits
// each stage's output to the active session as it completes.
package wizard

import (
	"context"
	"errors"

	"github.com/upjobs/upjobs/internal/areas"
	"github.com/upjobs/upjobs/internal/disc"
	"github.com/upjobs/upjobs/internal/hourvalue"
	"github.com/upjobs/upjobs/internal/identity"
	"github.com/upjobs/upjobs/internal/session"
)

// ErrIncompleteStage rejects an advance whose stage output fails its
// gate. The wizard stays on the current stage.
var ErrIncompleteStage = errors.New("wizard: current stage is incomplete")

// Stage identifies one step of the assessment flow.
type Stage int

const (
	StageHourValue Stage = iota
	StageAreas
	StageDisc

	// NumStages is the count of wizard stages.
	NumStages = 3
)

// String returns the stage's display label.
func (s Stage) String() string {
	switch s {
	case StageHourValue:
		return "Hour value"
	case StageAreas:
		return "Interest areas"
	case StageDisc:
		return "Behavioral profile"
	default:
		return "Unknown"
	}
}

// Controller drives the wizard. Stage position lives only in memory: a
// restart resumes at the first stage, while committed outputs survive in
// the account record.
type Controller struct {
	sess  *session.Session
	stage Stage
	done  bool
}

// New returns a controller at the first stage.
func New(sess *session.Session) *Controller {
	return &Controller{sess: sess}
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	return c.stage
}

// Done reports whether the final stage has been committed.
func (c *Controller) Done() bool {
	return c.done
}

// SubmitHourValue validates and computes the hour-value stage, commits
// its output, and advances to area selection. Invalid inputs return
// ErrIncompleteStage and leave the wizard in place.
func (c *Controller) SubmitHourValue(ctx context.Context, in hourvalue.Inputs) (hourvalue.Breakdown, error) {
	if c.stage != StageHourValue {
		return hourvalue.Breakdown{}, ErrIncompleteStage
	}
	bd, err := hourvalue.Compute(in)
	if err != nil {
		return hourvalue.Breakdown{}, ErrIncompleteStage
	}

	patch := identity.AssessmentRecord{
		GrossMonthlySalary: identity.Float(in.GrossMonthlySalary),
		WeeklyHours:        identity.Float(in.WeeklyHours),
		DailyCommuteHours:  identity.Float(in.DailyCommuteHours),
		GrossHourlyValue:   identity.Float(bd.GrossHourlyValue),
		NetHourlyValue:     identity.Float(bd.NetHourlyValue),
	}
	if err := c.sess.UpdateAssessment(ctx, patch); err != nil {
		return hourvalue.Breakdown{}, err
	}
	c.stage = StageAreas
	return bd, nil
}

// SubmitAreas commits the selected areas and advances to the behavioral
// questionnaire. An empty selection returns ErrIncompleteStage.
func (c *Controller) SubmitAreas(ctx context.Context, sel areas.Selection) error {
	if c.stage != StageAreas {
		return ErrIncompleteStage
	}
	if !sel.CanProceed() {
		return ErrIncompleteStage
	}

	patch := identity.AssessmentRecord{SelectedAreas: sel}
	if err := c.sess.UpdateAssessment(ctx, patch); err != nil {
		return err
	}
	c.stage = StageDisc
	return nil
}

// SubmitDisc commits the questionnaire result, marks the assessment
// completed, and finishes the wizard.
func (c *Controller) SubmitDisc(ctx context.Context, res *disc.Result) error {
	if c.stage != StageDisc || res == nil {
		return ErrIncompleteStage
	}

	patch := identity.AssessmentRecord{
		DiscProfile: identity.TraitPtr(res.Dominant),
		DiscScores:  identity.ScoresPtr(res.Scores),
		Completed:   true,
	}
	if err := c.sess.UpdateAssessment(ctx, patch); err != nil {
		return err
	}
	c.done = true
	return nil
}

// Retreat steps back one stage. At the first stage it is a no-op.
// Committed outputs are kept; re-submitting a stage overwrites them.
func (c *Controller) Retreat() {
	if c.stage > StageHourValue {
		c.stage--
		c.done = false
	}
}
