package models

// ExportMessage acknowledges a simulated report export
const ExportMessage = "Report export simulated successfully!"

// AnalysisResponse is returned by POST /stimulate
type AnalysisResponse struct {
	Summary       string           `json:"summary"`
	Data          FinancialOutcome `json:"data"`
	ScenarioCount int64            `json:"scenario_count"`
}

// ExportResponse is returned by POST /export-report
type ExportResponse struct {
	Message      string `json:"message"`
	ShortSummary string `json:"short_summary"`
	ReportCount  int64  `json:"report_count"`
}

// ErrorResponse carries a client-facing error description
type ErrorResponse struct {
	Detail string `json:"detail"`
}
