package service

import (
	"context"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/Dan9191/scenario-planner/internal/stats"
	"github.com/Dan9191/scenario-planner/internal/summary"
	"github.com/sirupsen/logrus"
)

// Summarizer produces natural-language summaries of an outcome
type Summarizer interface {
	LongSummary(ctx context.Context, o models.FinancialOutcome) summary.Result
	ShortSummary(ctx context.Context, o models.FinancialOutcome) summary.Result
}

// Service handles scenario analysis and report export
type Service struct {
	summarizer Summarizer
	counters   *stats.Counters
	log        *logrus.Logger
}

// NewService initializes a new service
func NewService(summarizer Summarizer, counters *stats.Counters, log *logrus.Logger) *Service {
	return &Service{summarizer: summarizer, counters: counters, log: log}
}

// Analyze computes the outcome of a scenario and attaches a structured summary
func (s *Service) Analyze(ctx context.Context, in models.ScenarioInput) models.AnalysisResponse {
	outcome := Compute(in)
	res := s.summarizer.LongSummary(ctx, outcome)
	count := s.counters.IncScenarios()

	s.log.WithFields(logrus.Fields{
		"scenario_count":   count,
		"monthly_net_flow": outcome.MonthlyNetFlow.String(),
		"has_runway":       outcome.HasRunway(),
		"fallback":         res.Err != nil,
	}).Info("Scenario analysed")

	return models.AnalysisResponse{
		Summary:       res.Value(),
		Data:          outcome,
		ScenarioCount: count,
	}
}

// Export computes the outcome of a scenario and attaches a headline summary
func (s *Service) Export(ctx context.Context, in models.ScenarioInput) models.ExportResponse {
	outcome := Compute(in)
	res := s.summarizer.ShortSummary(ctx, outcome)
	count := s.counters.IncReports()

	s.log.WithFields(logrus.Fields{
		"report_count": count,
		"fallback":     res.Err != nil,
	}).Info("Report export simulated")

	return models.ExportResponse{
		Message:      models.ExportMessage,
		ShortSummary: res.Value(),
		ReportCount:  count,
	}
}
