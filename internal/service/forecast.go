package service

import (
	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/shopspring/decimal"
)

// Compute derives the monthly outcome of a scenario. It is pure: the same
// input always yields the same outcome, and it never fails.
func Compute(in models.ScenarioInput) models.FinancialOutcome {
	// Adjusted price and monthly revenue
	adjustment := decimal.NewFromFloat(in.PricingAdjustment).Shift(-2)
	price := decimal.NewFromInt(in.AvgPricePerUnit).Mul(decimal.NewFromInt(1).Add(adjustment))
	revenue := decimal.NewFromInt(in.SalesVolume).Mul(price)

	// Monthly costs
	salaries := decimal.NewFromInt(in.StaffCount).Mul(decimal.NewFromInt(in.AverageSalary))
	costs := decimal.NewFromInt(in.OperationalExpenses).
		Add(decimal.NewFromInt(in.MarketingSpend)).
		Add(salaries)

	net := revenue.Sub(costs)
	budget := decimal.NewFromInt(in.InitialBudget)

	// Runway only applies while burning a positive budget
	var runway *decimal.Decimal
	if net.IsNegative() && budget.IsPositive() {
		r := budget.Div(net.Abs())
		runway = &r
	}

	return models.FinancialOutcome{
		MonthlyNetFlow:               net,
		RunwayMonths:                 runway,
		ProjectedBalanceAfterHorizon: budget.Add(net.Mul(decimal.NewFromInt(in.TimeHorizon))),
		MonthlyRevenue:               revenue,
		TotalMonthlyCosts:            costs,
		SalaryCosts:                  salaries,
	}
}
