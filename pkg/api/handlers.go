package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/graphtint/graphtint/pkg/cache"
	"github.com/graphtint/graphtint/pkg/coloring"
	"github.com/graphtint/graphtint/pkg/errors"
	"github.com/graphtint/graphtint/pkg/graph"
	"github.com/graphtint/graphtint/pkg/pipeline"
)

// ----- Health -----

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
	})
}

// ----- Color -----

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	var req ColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	runID := newRunID()
	ctx := r.Context()

	resp := ColorResponse{RunID: runID}

	if req.Graph != nil {
		// Explicit graph: skip generation, color what the client sent.
		g, err := graph.ToGraph(*req.Graph)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		if err := req.Options.ValidateForColor(); err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		start := time.Now()
		trace, err := s.runner.ColorGraph(ctx, g, req.Options)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		resp.ElapsedMS = durationMS(time.Since(start))

		count, final := coloring.Summarize(trace)
		resp.Vertices = g.VertexCount()
		resp.Edges = g.EdgeCount()
		resp.Steps = len(trace)
		resp.ColorCount = count
		resp.Final = final
		if req.IncludeTrace {
			resp.Trace = trace
		}
		if data, err := graph.Marshal(g); err == nil {
			resp.GraphHash = cache.Hash(data)
		}
	} else {
		if err := req.Options.ValidateAndSetDefaults(); err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		result, err := s.runner.Execute(ctx, req.Options)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}

		resp.GraphHash = result.GraphHash
		resp.Vertices = result.Stats.VertexCount
		resp.Edges = result.Stats.EdgeCount
		resp.Steps = len(result.Trace)
		resp.ColorCount = result.ColorCount
		resp.Final = result.Final
		resp.ElapsedMS = durationMS(result.Stats.ColorTime)
		resp.CacheInfo = &CacheInfo{
			GraphHit: result.CacheInfo.GraphHit,
			TraceHit: result.CacheInfo.TraceHit,
		}
		if req.IncludeTrace {
			resp.Trace = result.Trace
		}
	}

	resp.Strategy = req.Options.Strategy
	resp.Mode = req.Options.Mode

	s.logger.Info("colored",
		"run_id", runID,
		"strategy", resp.Strategy,
		"mode", resp.Mode,
		"colors", resp.ColorCount)

	writeJSON(w, http.StatusOK, resp)
}

// ----- Generate -----

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	opts := pipeline.Options{Kind: req.Kind, N: req.N, P: req.P, Seed: req.Seed}
	g, err := s.runner.Generate(r.Context(), opts)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	resp := GenerateResponse{
		RunID: newRunID(),
		Graph: graph.FromGraph(g),
	}
	if data, err := graph.Marshal(g); err == nil {
		resp.GraphHash = cache.Hash(data)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ----- Strategies -----

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	resp := StrategiesResponse{
		Modes: []string{pipeline.ModeVertex, pipeline.ModeEdge},
	}
	for strategy := range coloring.ValidStrategies {
		resp.Strategies = append(resp.Strategies, string(strategy))
	}
	for kind := range graph.ValidKinds {
		resp.Kinds = append(resp.Kinds, string(kind))
	}
	sort.Strings(resp.Strategies)
	sort.Strings(resp.Kinds)

	writeJSON(w, http.StatusOK, resp)
}

// ----- Helpers -----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	}
	if full := err.Error(); full != resp.Error {
		resp.Details = full
	}
	writeJSON(w, status, resp)
}

// durationMS converts a duration to fractional milliseconds for JSON.
func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(err error) int {
	code := errors.GetCode(err)
	switch {
	case strings.HasPrefix(string(code), "INVALID_"):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
