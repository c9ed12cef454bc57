package fireplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Contribution is a recurring monthly deposit towards one or more positions.
// It references positions and accounts by identifier only; resolving those
// identifiers to labels is the host's concern.
type Contribution struct {
	ID            string   `json:"id"`
	PositionIDs   []string `json:"positionIds,omitempty"`
	AccountIDs    []string `json:"accountIds,omitempty"`
	MonthlyAmount float64  `json:"monthlyAmount"`
}

// Settings is the immutable input record for a projection run. It is decoded
// from the plan file and validated once at the load boundary, so the engine
// never has to re-check it.
type Settings struct {
	Currency         string         `json:"currency"`
	TargetValue      float64        `json:"targetValue"`
	WithdrawalRate   float64        `json:"withdrawalRate"` // percent
	Inflation        float64        `json:"inflation"`      // percent per year
	NominalGrowth    float64        `json:"nominalGrowth"`  // percent per year
	YearOfBirth      int            `json:"yearOfBirth"`
	HolidayDays      int            `json:"holidayDays"` // annual leave entitlement
	PensionAccessAge int            `json:"pensionAccessAge"`
	TargetAge        int            `json:"targetAge,omitempty"`
	TargetYear       int            `json:"targetYear,omitempty"`
	ExcludedAccounts []string       `json:"excludedAccounts,omitempty"`
	Contributions    []Contribution `json:"contributions,omitempty"`
}

// RealRate returns the plan's real growth rate as a fraction.
func (s *Settings) RealRate() float64 { return RealRate(s.NominalGrowth, s.Inflation) }

// DecodeSettings reads and validates a plan settings record from r.
func DecodeSettings(r io.Reader) (*Settings, error) {
	dec := json.NewDecoder(r)
	var s Settings
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot decode plan settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSettings reads a plan settings file.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open plan file %q: %w", path, err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// Validate checks the settings record and returns all failures joined.
// The numeric core assumes finite input, so the finiteness check lives here,
// once, at the load boundary.
func (s *Settings) Validate() error {
	var errs error
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = errors.Join(errs, fmt.Errorf("%s must be a finite number", name))
		}
	}
	check("targetValue", s.TargetValue)
	check("withdrawalRate", s.WithdrawalRate)
	check("inflation", s.Inflation)
	check("nominalGrowth", s.NominalGrowth)

	if s.TargetValue < 0 {
		errs = errors.Join(errs, fmt.Errorf("targetValue must not be negative, got %v", s.TargetValue))
	}
	if s.YearOfBirth <= 0 {
		errs = errors.Join(errs, fmt.Errorf("yearOfBirth is required, got %d", s.YearOfBirth))
	}
	if s.HolidayDays < 0 {
		errs = errors.Join(errs, fmt.Errorf("holidayDays must not be negative, got %d", s.HolidayDays))
	}
	if s.PensionAccessAge < 0 {
		errs = errors.Join(errs, fmt.Errorf("pensionAccessAge must not be negative, got %d", s.PensionAccessAge))
	}
	for i, c := range s.Contributions {
		if c.ID == "" {
			errs = errors.Join(errs, fmt.Errorf("contribution #%d has no id", i))
		}
		check(fmt.Sprintf("contribution %q monthlyAmount", c.ID), c.MonthlyAmount)
	}
	return errs
}

// TotalAnnualContribution sums the yearly value of all positive monthly
// contributions. Zero or negative amounts are excluded from aggregation.
func TotalAnnualContribution(contributions []Contribution) float64 {
	var monthly float64
	for _, c := range contributions {
		if c.MonthlyAmount > 0 {
			monthly += c.MonthlyAmount
		}
	}
	return 12 * monthly
}
