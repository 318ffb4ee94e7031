// Package hourvalue derives the real monetary value of one working hour
// from a gross monthly salary, contracted weekly hours and daily commute
// time. All computations are pure; callers gate on Inputs.Validate before
// trusting a Breakdown.
package hourvalue

import "errors"

const (
	// WeeksPerMonth is the average number of working weeks in a month.
	WeeksPerMonth = 4.33

	// WorkdaysPerMonth is the number of commuting days in a month.
	WorkdaysPerMonth = 22

	// commuteTripsPerDay covers the trip to work and back.
	commuteTripsPerDay = 2
)

// ErrInvalidInputs rejects a derivation with non-positive salary or hours.
var ErrInvalidInputs = errors.New("hourvalue: salary and weekly hours must be positive")

// Inputs are the raw figures the user provides.
type Inputs struct {
	// GrossMonthlySalary is the monthly salary before deductions. Must be > 0.
	GrossMonthlySalary float64

	// WeeklyHours is the contracted hours per week. Must be > 0.
	WeeklyHours float64

	// DailyCommuteHours is the one-way commute time in hours per day. May be 0.
	DailyCommuteHours float64
}

// Validate reports whether the inputs admit a defined derivation.
func (in Inputs) Validate() error {
	if in.GrossMonthlySalary <= 0 || in.WeeklyHours <= 0 {
		return ErrInvalidInputs
	}
	if in.DailyCommuteHours < 0 {
		return ErrInvalidInputs
	}
	return nil
}

// Breakdown is the derived hour-value picture for one month.
type Breakdown struct {
	// MonthlyWorkedHours is WeeklyHours scaled to a month.
	MonthlyWorkedHours float64

	// CommuteHoursPerMonth is the total round-trip commute load.
	CommuteHoursPerMonth float64

	// TotalHoursPerMonth is worked plus commute hours.
	TotalHoursPerMonth float64

	// GrossHourlyValue is salary divided by worked hours only.
	GrossHourlyValue float64

	// NetHourlyValue is salary divided by worked plus commute hours.
	// Always <= GrossHourlyValue; equal when the commute is zero.
	NetHourlyValue float64

	// OpportunityCostPerMonth is the monthly value lost to commuting.
	OpportunityCostPerMonth float64
}

// Compute derives the hour-value breakdown from the given inputs.
func Compute(in Inputs) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}

	worked := in.WeeklyHours * WeeksPerMonth
	commute := in.DailyCommuteHours * commuteTripsPerDay * WorkdaysPerMonth
	total := worked + commute

	gross := in.GrossMonthlySalary / worked
	net := in.GrossMonthlySalary / total

	return Breakdown{
		MonthlyWorkedHours:      worked,
		CommuteHoursPerMonth:    commute,
		TotalHoursPerMonth:      total,
		GrossHourlyValue:        gross,
		NetHourlyValue:          net,
		OpportunityCostPerMonth: (gross - net) * worked,
	}, nil
}

// CommuteLossPercent reports how much of the gross hourly value is lost to
// commuting, as a percentage of the net value. Returns 0 for a zero commute.
func (b Breakdown) CommuteLossPercent() float64 {
	if b.NetHourlyValue <= 0 {
		return 0
	}
	return (b.GrossHourlyValue - b.NetHourlyValue) / b.NetHourlyValue * 100
}
