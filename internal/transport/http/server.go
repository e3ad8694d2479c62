package transporthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"creatorlitebackend/internal/config"
	"creatorlitebackend/internal/niche"
)

type Server struct {
	pipeline     *niche.Pipeline
	advisor      niche.AdvisoryGenerator
	defaultLimit int
	minLimit     int
	maxLimit     int
}

func NewServer(pipeline *niche.Pipeline, advisor niche.AdvisoryGenerator, cfg config.Config) *Server {
	return &Server{
		pipeline:     pipeline,
		advisor:      advisor,
		defaultLimit: cfg.DefaultLimit,
		minLimit:     cfg.MinLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/report.csv", s.handleReportCSV)
	mux.HandleFunc("/niches", s.handleNiches)
	mux.HandleFunc("/advisory/retention", s.handleAdvisory(s.advisor.RetentionStrategies))
	mux.HandleFunc("/advisory/thumbnail", s.handleAdvisory(s.advisor.ThumbnailConcept))
	mux.HandleFunc("/swagger/openapi.yaml", serveSwaggerYAML)
	mux.HandleFunc("/swagger", serveSwaggerUI)
	mux.HandleFunc("/swagger/", serveSwaggerUI)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	params, ok := s.parseParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	report, err := s.pipeline.Run(ctx, params)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		// nothing we can do; connection likely closed
	}
}

func (s *Server) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	params, ok := s.parseParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	report, err := s.pipeline.Run(ctx, params)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := niche.ToCSV(report.Rows)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleNiches(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if country == "" {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"countries": s.pipeline.Rates.Countries(),
		})
		return
	}

	// Unknown countries yield an empty niche list, not an error.
	_ = json.NewEncoder(w).Encode(map[string]any{
		"country": country,
		"niches":  s.pipeline.Rates.Niches(country),
	})
}

func (s *Server) handleAdvisory(generate func(context.Context, string) niche.Advisory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nicheName := r.URL.Query().Get("niche")
		if nicheName == "" {
			s.writeError(w, http.StatusBadRequest, "niche is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		advisory := generate(ctx, nicheName)

		response := map[string]any{
			"niche":    advisory.Niche,
			"text":     advisory.Render(),
			"degraded": advisory.Degraded(),
		}
		if advisory.Degraded() {
			response["reason"] = advisory.FailureReason
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// parseParams extracts the query parameters shared by the analyze and CSV
// endpoints. Missing country or niche is a caller error; the limit is
// clamped to the configured range.
func (s *Server) parseParams(w http.ResponseWriter, r *http.Request) (niche.QueryParams, bool) {
	values := r.URL.Query()

	country := values.Get("country")
	nicheName := values.Get("niche")
	if country == "" || nicheName == "" {
		s.writeError(w, http.StatusBadRequest, "country and niche are required")
		return niche.QueryParams{}, false
	}

	limit := s.defaultLimit
	if v := values.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < s.minLimit {
		limit = s.minLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	return niche.QueryParams{Country: country, Niche: nicheName, Limit: limit}, true
}
