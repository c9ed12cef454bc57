package fireplan

import (
	"math"
	"strings"
	"testing"
)

func TestDecodeSettings(t *testing.T) {
	src := `{
		"currency": "GBP",
		"targetValue": 900000,
		"withdrawalRate": 4,
		"inflation": 2.5,
		"nominalGrowth": 7,
		"yearOfBirth": 1990,
		"holidayDays": 25,
		"pensionAccessAge": 57,
		"contributions": [
			{"id": "isa", "positionIds": ["pos-1"], "monthlyAmount": 1000},
			{"id": "sipp", "accountIds": ["acc-2"], "monthlyAmount": 500}
		]
	}`
	s, err := DecodeSettings(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	if s.TargetValue != 900000 {
		t.Errorf("TargetValue = %v, want 900000", s.TargetValue)
	}
	if got := s.RealRate(); math.Abs(got-0.045) > 1e-9 {
		t.Errorf("RealRate() = %v, want 0.045", got)
	}
	if got := TotalAnnualContribution(s.Contributions); got != 18000 {
		t.Errorf("TotalAnnualContribution = %v, want 18000", got)
	}
}

func TestSettings_Validate(t *testing.T) {
	valid := Settings{
		Currency:      "EUR",
		TargetValue:   500000,
		NominalGrowth: 5,
		Inflation:     2,
		YearOfBirth:   1985,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on a valid record = %v", err)
	}

	bad := valid
	bad.TargetValue = math.NaN()
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a NaN target")
	}

	bad = valid
	bad.NominalGrowth = math.Inf(1)
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted an infinite growth rate")
	}

	bad = valid
	bad.YearOfBirth = 0
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a missing year of birth")
	}

	bad = valid
	bad.HolidayDays = -1
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted negative holiday days")
	}

	bad = valid
	bad.Contributions = []Contribution{{MonthlyAmount: 100}}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a contribution without id")
	}
}

func TestDecodeSettings_Invalid(t *testing.T) {
	if _, err := DecodeSettings(strings.NewReader(`{"yearOfBirth": 0}`)); err == nil {
		t.Error("DecodeSettings() accepted a record that fails validation")
	}
	if _, err := DecodeSettings(strings.NewReader(`not json`)); err == nil {
		t.Error("DecodeSettings() accepted malformed JSON")
	}
}
