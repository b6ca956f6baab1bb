package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rpgo/rent-vs-buy/internal/cache"
	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/rpgo/rent-vs-buy/internal/journal"
)

const defaultScenarioName = "Scenario"

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// SaveRunRequest is the body of POST /api/runs
type SaveRunRequest struct {
	Name     string          `json:"name"`
	Scenario json.RawMessage `json:"scenario,omitempty"`
}

// SaveRunResponse is returned by POST /api/runs
type SaveRunResponse struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func scenarioName(r *http.Request) string {
	if name := strings.TrimSpace(r.URL.Query().Get("name")); name != "" {
		return name
	}
	return defaultScenarioName
}

// formFromQuery decodes and validates the scenario carried in the query string
func (s *Server) formFromQuery(r *http.Request) (config.ScenarioForm, error) {
	form, err := config.DecodeQuery(r.URL.Query())
	if err != nil {
		return config.ScenarioForm{}, err
	}
	if err := s.parser.ValidateForm(&form); err != nil {
		return config.ScenarioForm{}, err
	}
	return form, nil
}

// decodeForm reads a JSON form over the defaults and validates it
func (s *Server) decodeForm(data []byte) (config.ScenarioForm, error) {
	form := config.DefaultForm()
	if err := json.Unmarshal(data, &form); err != nil {
		return config.ScenarioForm{}, err
	}
	if err := s.parser.ValidateForm(&form); err != nil {
		return config.ScenarioForm{}, err
	}
	return form, nil
}

func (s *Server) simulate(r *http.Request, name string, form config.ScenarioForm) (*domain.ScenarioResult, error) {
	return s.engine.RunScenario(r.Context(), name, form.ToInputs(), form.Years)
}

func (s *Server) handleSimulateQuery(w http.ResponseWriter, r *http.Request) {
	form, err := s.formFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := scenarioName(r)
	key := cache.Key(form.QueryString() + "&name=" + name)
	if cached, ok := s.cache.Get(r.Context(), key); ok {
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cached))
		return
	}

	result, err := s.simulate(r, name, form)
	if err != nil {
		s.logger.WithError(err).Error("simulation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := s.cache.Set(r.Context(), key, string(body), s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("cache write failed")
	}

	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (s *Server) handleSimulateForm(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	form, err := s.decodeForm(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.simulate(r, scenarioName(r), form)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBreakEven(w http.ResponseWriter, r *http.Request) {
	form, err := s.formFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.CalculateBreakEvenRent(r.Context(), form.ToInputs(), form.Years)
	switch {
	case errors.Is(err, calculation.ErrZeroHorizon):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, calculation.ErrNoBreakEven):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleSaveRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run journal is disabled")
		return
	}

	data, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req SaveRunRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	form := config.DefaultForm()
	if len(req.Scenario) > 0 {
		if form, err = s.decodeForm(req.Scenario); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultScenarioName
	}

	result, err := s.simulate(r, name, form)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	run := journal.NewRun(form.QueryString(), result)
	if err := s.store.SaveRun(r.Context(), run); err != nil {
		s.logger.WithError(err).Error("saving run failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.WithField("id", run.ID).Info("run saved")
	writeJSON(w, http.StatusCreated, SaveRunResponse{ID: run.ID, Query: run.Query})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run journal is disabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []journal.RunSummary{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run journal is disabled")
		return
	}

	run, err := s.store.GetRun(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, journal.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}
