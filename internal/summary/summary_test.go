package summary

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func lossOutcome() models.FinancialOutcome {
	runway := decimal.RequireFromString("16.6666666666666667")
	return models.FinancialOutcome{
		MonthlyNetFlow:               decimal.NewFromInt(-6000),
		RunwayMonths:                 &runway,
		ProjectedBalanceAfterHorizon: decimal.NewFromInt(28000),
		MonthlyRevenue:               decimal.RequireFromString("19000.5"),
		TotalMonthlyCosts:            decimal.RequireFromString("25000.5"),
		SalaryCosts:                  decimal.NewFromInt(20000),
	}
}

func profitOutcome() models.FinancialOutcome {
	return models.FinancialOutcome{
		MonthlyNetFlow:               decimal.NewFromInt(1250000),
		ProjectedBalanceAfterHorizon: decimal.NewFromInt(15100000),
		MonthlyRevenue:               decimal.NewFromInt(1275000),
		TotalMonthlyCosts:            decimal.NewFromInt(25000),
		SalaryCosts:                  decimal.NewFromInt(20000),
	}
}

func newTestSummarizer(gen Generator, timeout time.Duration) (*Summarizer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return NewSummarizer(gen, DefaultTemplates(), timeout, logger), hook
}

func TestLongSummary_Success(t *testing.T) {
	gen := &fakeGenerator{text: "\n  **Summary:** Cash runs out in 17 months.  \n"}
	s, _ := newTestSummarizer(gen, time.Second)

	res := s.LongSummary(context.Background(), lossOutcome())

	require.NoError(t, res.Err)
	assert.Equal(t, "**Summary:** Cash runs out in 17 months.", res.Value())
	require.Len(t, gen.prompts, 1)

	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Monthly Net Cash Flow: ₹-6,000")
	assert.Contains(t, prompt, "Projected Balance after Time Horizon: ₹28,000")
	assert.Contains(t, prompt, "Calculated Runway: 16.7 months")
	assert.Contains(t, prompt, "Monthly Revenue: ₹19,000.5")
	assert.Contains(t, prompt, "Monthly Costs: ₹25,000.5")
	assert.Contains(t, prompt, "**Summary:**")
	assert.Contains(t, prompt, "**Key Insight:**")
	assert.Contains(t, prompt, "**Recommendation:**")
}

func TestLongSummary_NoRunwayMarker(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	s, _ := newTestSummarizer(gen, 0)

	s.LongSummary(context.Background(), profitOutcome())

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Calculated Runway: N/A (profitable or no initial budget)")
}

func TestLongSummary_FallbackOnError(t *testing.T) {
	cause := errors.New("connection refused")
	s, hook := newTestSummarizer(&fakeGenerator{err: cause}, time.Second)

	res := s.LongSummary(context.Background(), lossOutcome())

	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, cause)
	var cerr *CapabilityError
	require.True(t, errors.As(res.Err, &cerr))
	assert.Equal(t, LongSummary, cerr.Op)
	assert.Equal(t, "Could not generate an AI summary for this scenario.", res.Value())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
}

func TestLongSummary_FallbackOnEmptyResponse(t *testing.T) {
	s, _ := newTestSummarizer(&fakeGenerator{text: "   \n"}, time.Second)

	res := s.LongSummary(context.Background(), lossOutcome())

	assert.ErrorIs(t, res.Err, ErrEmptyResponse)
	assert.Equal(t, "Could not generate an AI summary for this scenario.", res.Value())
}

func TestShortSummary_Prompt(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.FinancialOutcome
		want    string
	}{
		{"loss", lossOutcome(), "The result was a monthly loss of ₹6,000."},
		{"profit", profitOutcome(), "The result was a monthly profit of ₹1,250,000."},
		{"break even", models.FinancialOutcome{}, "The result was a monthly profit of ₹0."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "Headline."}
			s, _ := newTestSummarizer(gen, time.Second)

			res := s.ShortSummary(context.Background(), tt.outcome)

			require.NoError(t, res.Err)
			assert.Equal(t, "Headline.", res.Value())
			require.Len(t, gen.prompts, 1)
			assert.Contains(t, gen.prompts[0], tt.want)
			assert.Contains(t, gen.prompts[0], "under 20 words")
		})
	}
}

func TestShortSummary_FallbackIsLocalSentence(t *testing.T) {
	s, _ := newTestSummarizer(&fakeGenerator{err: errors.New("quota exceeded")}, time.Second)

	loss := s.ShortSummary(context.Background(), lossOutcome())
	profit := s.ShortSummary(context.Background(), profitOutcome())

	assert.Error(t, loss.Err)
	assert.Equal(t, "Scenario resulted in a monthly loss of ₹6,000.", loss.Value())
	assert.Equal(t, "Scenario resulted in a monthly profit of ₹1,250,000.", profit.Value())
}

func TestSummary_TimeoutUsesFallback(t *testing.T) {
	s, _ := newTestSummarizer(blockingGenerator{}, 10*time.Millisecond)

	res := s.ShortSummary(context.Background(), lossOutcome())

	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Equal(t, "Scenario resulted in a monthly loss of ₹6,000.", res.Value())
}

func TestSummary_CancelledContextUsesFallback(t *testing.T) {
	s, _ := newTestSummarizer(blockingGenerator{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.LongSummary(ctx, lossOutcome())

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.NotEmpty(t, res.Value())
}

func TestSummary_FallbackDeterministic(t *testing.T) {
	s, _ := newTestSummarizer(&fakeGenerator{err: errors.New("boom")}, time.Second)

	first := s.ShortSummary(context.Background(), lossOutcome()).Value()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.ShortSummary(context.Background(), lossOutcome()).Value())
	}
}

func TestResult_Value(t *testing.T) {
	assert.Equal(t, "text", Result{Text: "text", Fallback: "fb"}.Value())
	assert.Equal(t, "fb", Result{Text: "ignored", Fallback: "fb", Err: errors.New("x")}.Value())
}

func TestCapabilityError_Message(t *testing.T) {
	err := &CapabilityError{Op: ShortSummary, Err: errors.New("503")}
	assert.True(t, strings.HasPrefix(err.Error(), "short_summary: "))
}
