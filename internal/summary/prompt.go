package summary

import (
	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency prefixes every amount shown to the model or the caller
const Currency = "₹"

const noRunway = "N/A (profitable or no initial budget)"

type longPromptData struct {
	Currency         string
	NetFlow          string
	ProjectedBalance string
	Runway           string
	Revenue          string
	Costs            string
}

type shortPromptData struct {
	Outcome string
}

// BuildLongPrompt renders the structured analysis prompt for an outcome
func (t *Templates) BuildLongPrompt(o models.FinancialOutcome) (string, error) {
	return t.Render(LongSummary, longPromptData{
		Currency:         Currency,
		NetFlow:          FormatAmount(o.MonthlyNetFlow),
		ProjectedBalance: FormatAmount(o.ProjectedBalanceAfterHorizon),
		Runway:           RunwayText(o),
		Revenue:          FormatAmount(o.MonthlyRevenue),
		Costs:            FormatAmount(o.TotalMonthlyCosts),
	})
}

// BuildShortPrompt renders the headline prompt for an outcome
func (t *Templates) BuildShortPrompt(o models.FinancialOutcome) (string, error) {
	return t.Render(ShortSummary, shortPromptData{Outcome: OutcomeText(o)})
}

func (t *Templates) longFallback() (string, error) {
	return t.Render(LongFallback, nil)
}

func (t *Templates) shortFallback(o models.FinancialOutcome) (string, error) {
	return t.Render(ShortFallback, shortPromptData{Outcome: OutcomeText(o)})
}

// FormatAmount renders an amount with thousands separators and at most two decimals
func FormatAmount(d decimal.Decimal) string {
	return humanize.CommafWithDigits(d.InexactFloat64(), 2)
}

// RunwayText describes the runway of an outcome in months
func RunwayText(o models.FinancialOutcome) string {
	if o.RunwayMonths == nil {
		return noRunway
	}
	return o.RunwayMonths.StringFixed(1) + " months"
}

// OutcomeText states the monthly profit or loss of an outcome. A zero net
// flow counts as profit.
func OutcomeText(o models.FinancialOutcome) string {
	if o.MonthlyNetFlow.IsNegative() {
		return "a monthly loss of " + Currency + FormatAmount(o.MonthlyNetFlow.Abs())
	}
	return "a monthly profit of " + Currency + FormatAmount(o.MonthlyNetFlow)
}
