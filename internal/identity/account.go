// Package identity defines account records, the accumulated assessment
// record, and the store contract that owns them.
package identity

import (
	"github.com/upjobs/upjobs/internal/disc"
)

// Account is the sanitized view of a stored account: the credential hash
// never leaves the store.
type Account struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Assessment *AssessmentRecord `json:"assessment,omitempty"`
}

// AssessmentRecord accumulates instrument outputs across the wizard.
// Fields are nil until their stage produces output; the same type doubles
// as a merge patch, where nil means "leave untouched".
type AssessmentRecord struct {
	GrossMonthlySalary *float64 `json:"gross_monthly_salary,omitempty"`
	WeeklyHours        *float64 `json:"weekly_hours,omitempty"`
	DailyCommuteHours  *float64 `json:"daily_commute_hours,omitempty"`
	GrossHourlyValue   *float64 `json:"gross_hourly_value,omitempty"`
	NetHourlyValue     *float64 `json:"net_hourly_value,omitempty"`

	SelectedAreas []string `json:"selected_areas,omitempty"`

	DiscProfile *disc.Trait  `json:"disc_profile,omitempty"`
	DiscScores  *disc.Scores `json:"disc_scores,omitempty"`

	// Completed flips to true once all three instruments have reported.
	// It never transitions back.
	Completed bool `json:"completed,omitempty"`
}

// Merge shallow-merges patch into the record: every non-nil patch field
// overwrites the matching field, all others stay untouched. Completed
// merges as a one-way latch.
func (r *AssessmentRecord) Merge(patch AssessmentRecord) {
	if patch.GrossMonthlySalary != nil {
		r.GrossMonthlySalary = patch.GrossMonthlySalary
	}
	if patch.WeeklyHours != nil {
		r.WeeklyHours = patch.WeeklyHours
	}
	if patch.DailyCommuteHours != nil {
		r.DailyCommuteHours = patch.DailyCommuteHours
	}
	if patch.GrossHourlyValue != nil {
		r.GrossHourlyValue = patch.GrossHourlyValue
	}
	if patch.NetHourlyValue != nil {
		r.NetHourlyValue = patch.NetHourlyValue
	}
	if patch.SelectedAreas != nil {
		r.SelectedAreas = patch.SelectedAreas
	}
	if patch.DiscProfile != nil {
		r.DiscProfile = patch.DiscProfile
	}
	if patch.DiscScores != nil {
		r.DiscScores = patch.DiscScores
	}
	if patch.Completed {
		r.Completed = true
	}
}

// IsComplete reports whether every instrument has produced output.
// Completed == true implies IsComplete.
func (r *AssessmentRecord) IsComplete() bool {
	return r.GrossMonthlySalary != nil &&
		r.WeeklyHours != nil &&
		r.GrossHourlyValue != nil &&
		r.NetHourlyValue != nil &&
		len(r.SelectedAreas) > 0 &&
		r.DiscProfile != nil &&
		r.DiscScores != nil
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 {
	return &v
}

// TraitPtr returns a pointer to t, for building patches.
func TraitPtr(t disc.Trait) *disc.Trait {
	return &t
}

// ScoresPtr returns a pointer to s, for building patches.
func ScoresPtr(s disc.Scores) *disc.Scores {
	return &s
}
