// Package server exposes the projection calculations and the scenario store
// as a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/finance-projections/internal/scenario"
	"github.com/iwvelando/finance-projections/internal/store"
	"github.com/iwvelando/finance-projections/pkg/constants"
	"github.com/iwvelando/finance-projections/pkg/projection"
	"go.uber.org/zap"
)

const scenarioNotFound = "Scenario not found"

type handler struct {
	logger      *zap.Logger
	scenarios   *scenario.Service
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, scenarios *scenario.Service, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, scenarios: scenarios, maxBodySize: maxBodySize, version: trimmedVersion}

	r := mux.NewRouter()
	r.Use(h.logRequests)

	// Stateless projections
	r.HandleFunc("/sip", h.handleSIP).Methods(http.MethodPost)
	r.HandleFunc("/swp", h.handleSWP).Methods(http.MethodPost)

	// Stored investment scenarios
	r.HandleFunc("/investment", h.handleListScenarios).Methods(http.MethodGet)
	r.HandleFunc("/investment", h.handleSaveScenario).Methods(http.MethodPut)
	r.HandleFunc("/investment/{id}", h.handleGetScenario).Methods(http.MethodGet)
	r.HandleFunc("/investment/{id}", h.handleDeleteScenario).Methods(http.MethodDelete)

	r.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(h.handleMethodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(h.handleNotFound)

	return r
}

func (h *handler) handleSIP(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSIP"

	var in projection.SIPInput
	if err := h.decodeInput(w, r, &in, sipFields); err != nil {
		h.respondFailure(w, err, op)
		return
	}

	result, err := projection.ComputeSIP(in)
	if err != nil {
		h.respondFailure(w, err, op)
		return
	}

	h.logger.Debug("sip computed",
		zap.String("op", op),
		zap.Float64("futureValue", result.FutureValue),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleSWP(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSWP"

	var in projection.SWPInput
	if err := h.decodeInput(w, r, &in, swpFields); err != nil {
		h.respondFailure(w, err, op)
		return
	}

	result, err := projection.ComputeSWP(in)
	if err != nil {
		h.respondFailure(w, err, op)
		return
	}

	h.logger.Debug("swp computed",
		zap.String("op", op),
		zap.Int("monthsLasted", result.MonthsLasted),
	)
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	records, err := h.scenarios.List(r.Context())
	if err != nil {
		h.respondFailure(w, err, "server.handleListScenarios")
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *handler) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	record, err := h.scenarios.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondFailure(w, err, "server.handleGetScenario")
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

func (h *handler) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSaveScenario"

	var in projection.ScenarioInput
	if err := h.decodeInput(w, r, &in, scenarioFields); err != nil {
		h.respondFailure(w, err, op)
		return
	}

	record, err := h.scenarios.Save(r.Context(), in)
	if err != nil {
		h.respondFailure(w, err, op)
		return
	}
	h.writeJSON(w, http.StatusCreated, record)
}

func (h *handler) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.scenarios.Delete(r.Context(), id); err != nil {
		h.respondFailure(w, err, "server.handleDeleteScenario")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Scenario %s deleted successfully", id),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": http.StatusText(http.StatusMethodNotAllowed)})
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, map[string]string{"error": http.StatusText(http.StatusNotFound)})
}

// statusForError maps an error to the HTTP status and message reported to the client.
func statusForError(err error) (int, string) {
	var reqErr *requestError
	var domainErr *projection.DomainError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.status, reqErr.msg
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, scenarioNotFound
	case errors.Is(err, projection.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &domainErr):
		return http.StatusUnprocessableEntity, domainErr.Err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func (h *handler) respondFailure(w http.ResponseWriter, err error, op string) {
	status, msg := statusForError(err)
	h.respondErrorWithOp(w, status, msg, op, err)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.Error(err),
		)
	} else {
		h.logger.Info("request rejected",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		h.logger.Info("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
