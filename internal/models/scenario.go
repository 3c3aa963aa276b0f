package models

import (
	"fmt"
	"strings"
)

// ScenarioInput represents one set of business parameters submitted for analysis.
//
// AverageSalary is the monthly salary per staff member. Salary costs depend
// on it, so it is a required field rather than a built-in constant.
type ScenarioInput struct {
	InitialBudget       int64   `json:"initial_budget"`
	TimeHorizon         int64   `json:"time_horizon"`
	SalesVolume         int64   `json:"sales_volume"`
	AvgPricePerUnit     int64   `json:"avg_price_per_unit"`
	StaffCount          int64   `json:"staff_count"`
	MarketingSpend      int64   `json:"marketing_spend"`
	OperationalExpenses int64   `json:"operational_expenses"`
	PricingAdjustment   float64 `json:"pricing_adjustment"` // percent, may be negative
	AverageSalary       int64   `json:"average_salary"`
}

// ScenarioRequest is the wire form of ScenarioInput. Pointer fields tell a
// missing field apart from an explicit zero.
type ScenarioRequest struct {
	InitialBudget       *int64   `json:"initial_budget"`
	TimeHorizon         *int64   `json:"time_horizon"`
	SalesVolume         *int64   `json:"sales_volume"`
	AvgPricePerUnit     *int64   `json:"avg_price_per_unit"`
	StaffCount          *int64   `json:"staff_count"`
	MarketingSpend      *int64   `json:"marketing_spend"`
	OperationalExpenses *int64   `json:"operational_expenses"`
	PricingAdjustment   *float64 `json:"pricing_adjustment"`
	AverageSalary       *int64   `json:"average_salary"`
}

// ValidationError lists the required fields absent from a request
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks that every field is present and returns the scenario
func (r *ScenarioRequest) Validate() (ScenarioInput, error) {
	var missing []string
	ints := []struct {
		name string
		val  *int64
	}{
		{"initial_budget", r.InitialBudget},
		{"time_horizon", r.TimeHorizon},
		{"sales_volume", r.SalesVolume},
		{"avg_price_per_unit", r.AvgPricePerUnit},
		{"staff_count", r.StaffCount},
		{"marketing_spend", r.MarketingSpend},
		{"operational_expenses", r.OperationalExpenses},
	}
	for _, f := range ints {
		if f.val == nil {
			missing = append(missing, f.name)
		}
	}
	if r.PricingAdjustment == nil {
		missing = append(missing, "pricing_adjustment")
	}
	if r.AverageSalary == nil {
		missing = append(missing, "average_salary")
	}
	if len(missing) > 0 {
		return ScenarioInput{}, &ValidationError{Missing: missing}
	}

	return ScenarioInput{
		InitialBudget:       *r.InitialBudget,
		TimeHorizon:         *r.TimeHorizon,
		SalesVolume:         *r.SalesVolume,
		AvgPricePerUnit:     *r.AvgPricePerUnit,
		StaffCount:          *r.StaffCount,
		MarketingSpend:      *r.MarketingSpend,
		OperationalExpenses: *r.OperationalExpenses,
		PricingAdjustment:   *r.PricingAdjustment,
		AverageSalary:       *r.AverageSalary,
	}, nil
}
