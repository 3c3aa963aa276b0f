package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Dan9191/scenario-planner/internal/models"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

// ScenarioService analyses scenarios and exports reports
type ScenarioService interface {
	Analyze(ctx context.Context, in models.ScenarioInput) models.AnalysisResponse
	Export(ctx context.Context, in models.ScenarioInput) models.ExportResponse
}

type Handler struct {
	svc ScenarioService
	log *logrus.Logger
}

func NewHandler(svc ScenarioService, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the scenario routes on the router
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/stimulate", h.Analyze).Methods(http.MethodPost)
	r.HandleFunc("/export-report", h.ExportReport).Methods(http.MethodPost)
}

// Analyze handles POST /stimulate
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	in, err := decodeScenario(w, r)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Analyze(r.Context(), in))
}

// ExportReport handles POST /export-report
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	in, err := decodeScenario(w, r)
	if err != nil {
		h.reject(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Export(r.Context(), in))
}

func decodeScenario(w http.ResponseWriter, r *http.Request) (models.ScenarioInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.ScenarioRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		return models.ScenarioInput{}, describeDecodeError(err)
	}
	if dec.More() {
		return models.ScenarioInput{}, fmt.Errorf("request body must contain a single JSON object")
	}
	return req.Validate()
}

func describeDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return fmt.Errorf("request body must be a JSON object")
	case errors.As(err, &typeErr):
		return fmt.Errorf("field %q must be %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &maxErr):
		return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
	default:
		return fmt.Errorf("invalid request body: %w", err)
	}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithField("path", r.URL.Path).WithError(err).Debug("Invalid scenario")
	writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
