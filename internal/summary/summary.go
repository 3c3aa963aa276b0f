package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/sirupsen/logrus"
)

// Generator produces free text for a single prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyResponse is returned when the generator answers with no text
var ErrEmptyResponse = errors.New("empty response from text generator")

// CapabilityError reports a failed text generation call
type CapabilityError struct {
	Op  string
	Err error
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: text generation failed: %v", e.Op, e.Err)
}

func (e *CapabilityError) Unwrap() error {
	return e.Err
}

// Result holds either generated text or the error that prevented it,
// together with the fallback to show in that case.
type Result struct {
	Text     string
	Fallback string
	Err      error
}

// Value returns the generated text, or the fallback when generation failed
func (r Result) Value() string {
	if r.Err != nil {
		return r.Fallback
	}
	return r.Text
}

// Summarizer turns outcomes into natural-language summaries
type Summarizer struct {
	gen       Generator
	templates *Templates
	timeout   time.Duration
	log       *logrus.Logger
}

// NewSummarizer creates a summarizer. A zero timeout leaves calls bounded
// only by the caller's context.
func NewSummarizer(gen Generator, templates *Templates, timeout time.Duration, log *logrus.Logger) *Summarizer {
	return &Summarizer{gen: gen, templates: templates, timeout: timeout, log: log}
}

// LongSummary asks for a summary, key insight and recommendation
func (s *Summarizer) LongSummary(ctx context.Context, o models.FinancialOutcome) Result {
	fallback, err := s.templates.longFallback()
	if err != nil {
		fallback = defaultLongFallback
	}
	prompt, err := s.templates.BuildLongPrompt(o)
	if err != nil {
		return s.fail(LongSummary, fallback, err)
	}
	return s.generate(ctx, LongSummary, prompt, fallback)
}

// ShortSummary asks for a single headline sentence
func (s *Summarizer) ShortSummary(ctx context.Context, o models.FinancialOutcome) Result {
	fallback, err := s.templates.shortFallback(o)
	if err != nil {
		fallback = "Scenario resulted in " + OutcomeText(o) + "."
	}
	prompt, err := s.templates.BuildShortPrompt(o)
	if err != nil {
		return s.fail(ShortSummary, fallback, err)
	}
	return s.generate(ctx, ShortSummary, prompt, fallback)
}

const defaultLongFallback = "Could not generate an AI summary for this scenario."

func (s *Summarizer) generate(ctx context.Context, op, prompt, fallback string) Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return s.fail(op, fallback, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s.fail(op, fallback, ErrEmptyResponse)
	}

	s.log.WithFields(logrus.Fields{
		"op":       op,
		"duration": time.Since(start).String(),
	}).Debug("Summary generated")
	return Result{Text: text, Fallback: fallback}
}

func (s *Summarizer) fail(op, fallback string, err error) Result {
	cerr := &CapabilityError{Op: op, Err: err}
	s.log.WithError(cerr).Warn("Using fallback summary")
	return Result{Fallback: fallback, Err: cerr}
}
