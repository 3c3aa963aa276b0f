package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FinancialOutcome represents the monthly figures derived from a scenario
type FinancialOutcome struct {
	MonthlyNetFlow               decimal.Decimal
	RunwayMonths                 *decimal.Decimal // nil when profitable or without budget
	ProjectedBalanceAfterHorizon decimal.Decimal
	MonthlyRevenue               decimal.Decimal
	TotalMonthlyCosts            decimal.Decimal
	SalaryCosts                  decimal.Decimal
}

type outcomeJSON struct {
	MonthlyNetFlow               json.Number  `json:"monthly_net_flow"`
	RunwayMonths                 *json.Number `json:"runway_months"`
	ProjectedBalanceAfterHorizon json.Number  `json:"projected_balance_after_horizon"`
	MonthlyRevenue               json.Number  `json:"monthly_revenue"`
	TotalMonthlyCosts            json.Number  `json:"total_monthly_costs"`
	SalaryCosts                  json.Number  `json:"salary_costs"`
}

// HasRunway reports whether a runway figure applies to the outcome
func (o FinancialOutcome) HasRunway() bool {
	return o.RunwayMonths != nil
}

// MarshalJSON writes every amount as a bare JSON number; runway is null when absent.
func (o FinancialOutcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		MonthlyNetFlow:               json.Number(o.MonthlyNetFlow.String()),
		ProjectedBalanceAfterHorizon: json.Number(o.ProjectedBalanceAfterHorizon.String()),
		MonthlyRevenue:               json.Number(o.MonthlyRevenue.String()),
		TotalMonthlyCosts:            json.Number(o.TotalMonthlyCosts.String()),
		SalaryCosts:                  json.Number(o.SalaryCosts.String()),
	}
	if o.RunwayMonths != nil {
		n := json.Number(o.RunwayMonths.String())
		out.RunwayMonths = &n
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the form written by MarshalJSON
func (o *FinancialOutcome) UnmarshalJSON(data []byte) error {
	var in outcomeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	fields := []struct {
		src json.Number
		dst *decimal.Decimal
	}{
		{in.MonthlyNetFlow, &o.MonthlyNetFlow},
		{in.ProjectedBalanceAfterHorizon, &o.ProjectedBalanceAfterHorizon},
		{in.MonthlyRevenue, &o.MonthlyRevenue},
		{in.TotalMonthlyCosts, &o.TotalMonthlyCosts},
		{in.SalaryCosts, &o.SalaryCosts},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.src.String())
		if err != nil {
			return err
		}
		*f.dst = d
	}
	o.RunwayMonths = nil
	if in.RunwayMonths != nil {
		d, err := decimal.NewFromString(in.RunwayMonths.String())
		if err != nil {
			return err
		}
		o.RunwayMonths = &d
	}
	return nil
}
