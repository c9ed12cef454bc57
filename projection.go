package fireplan

// MaxProjectionYears bounds the simulation: year 0 plus at most 30 projected
// years, so an unreachable target still yields a full 31-point timeline.
const MaxProjectionYears = 30

// PostFireYears is how many years past the first target-hit year are kept, to
// show the trajectory settling without projecting forever.
const PostFireYears = 5

// ProjectionInput carries everything the engine needs for one run. It is a
// plain value: build one from Settings plus the current portfolio value.
type ProjectionInput struct {
	CurrentValue       float64
	TargetValue        float64
	RealRate           float64 // fraction, e.g. 0.045
	AnnualContribution float64
	YearOfBirth        int
	HolidayDays        int
	PensionAccessAge   int
}

// NewProjectionInput assembles a ProjectionInput from validated settings and
// the portfolio value observed now.
func NewProjectionInput(s *Settings, currentValue float64) ProjectionInput {
	return ProjectionInput{
		CurrentValue:       currentValue,
		TargetValue:        s.TargetValue,
		RealRate:           s.RealRate(),
		AnnualContribution: TotalAnnualContribution(s.Contributions),
		YearOfBirth:        s.YearOfBirth,
		HolidayDays:        s.HolidayDays,
		PensionAccessAge:   s.PensionAccessAge,
	}
}

// ProjectionYear is one simulated calendar year. Values are in real terms,
// today's purchasing power.
type ProjectionYear struct {
	Year              int
	Age               int
	Value             float64
	IsTargetHit       bool
	PensionAccessible bool
}

// Projection is the engine's output. FireYear and the derived metrics are nil
// when the target is not reached within the projection window; the timeline
// itself is always populated.
type Projection struct {
	Years              []ProjectionYear
	FireYear           *int
	FireAge            *int
	DaysToFire         *int
	WorkingDaysToFire  *int
	StartingValue      float64
	AnnualContribution float64
	RealRate           float64
	TargetValue        float64
	TargetHit          bool
}

// Project simulates the portfolio year by year from now.
//
// Year 0 is now's calendar year at the current value, with no contribution.
// Each later year compounds the previous value at the real rate and adds the
// annual contribution with a half year of growth, since monthly deposits are
// invested on average for six months of the year:
//
//	value[n] = value[n-1]*(1+r) + contribution*(1+r/2)
//
// The year in which the target is first hit still receives its contribution;
// only years strictly after it coast with contributions zeroed.
func Project(in ProjectionInput, now Date) Projection {
	p := Projection{
		StartingValue:      in.CurrentValue,
		AnnualContribution: in.AnnualContribution,
		RealRate:           in.RealRate,
		TargetValue:        in.TargetValue,
	}

	year := now.Year()
	value := in.CurrentValue
	hit := value >= in.TargetValue

	record := func(year int, value float64, isHit bool) {
		age := year - in.YearOfBirth
		p.Years = append(p.Years, ProjectionYear{
			Year:              year,
			Age:               age,
			Value:             value,
			IsTargetHit:       isHit,
			PensionAccessible: age >= in.PensionAccessAge,
		})
	}

	record(year, value, hit)
	if hit {
		p.markFire(year, in, now)
	}

	for n := 1; n <= MaxProjectionYears; n++ {
		if p.FireYear != nil && year-*p.FireYear >= PostFireYears {
			break
		}
		// Coasting: once a prior year has hit the target, stop contributing.
		contribution := in.AnnualContribution
		if hit {
			contribution = 0
		}
		year++
		value = value*(1+in.RealRate) + contribution*(1+in.RealRate/2)

		isHit := value >= in.TargetValue
		record(year, value, isHit)
		if isHit && !hit {
			hit = true
			p.markFire(year, in, now)
		}
	}
	return p
}

// markFire fills in the derived metrics the first time the target is hit.
func (p *Projection) markFire(year int, in ProjectionInput, now Date) {
	p.TargetHit = true
	p.FireYear = &year
	age := year - in.YearOfBirth
	p.FireAge = &age
	days := DaysUntil(year, now)
	p.DaysToFire = &days
	working := WorkingDays(days, YearsUntil(year, now), in.HolidayDays)
	p.WorkingDaysToFire = &working
}

// FireNumber converts a desired monthly spend into the portfolio value that
// sustains it at the given safe withdrawal rate (percent). A rate of zero or
// below yields 0 rather than an error: the caller renders that as "no target".
func FireNumber(monthlySpend, withdrawalRatePct float64) float64 {
	if withdrawalRatePct <= 0 {
		return 0
	}
	return monthlySpend * 12 * (100 / withdrawalRatePct)
}
