// Package httpapi implements the HTTP demo surface for the engine: a
// single POST endpoint that accepts a scene and returns its traced
// RayPaths, plus a health check. It follows the teacher's web/server
// conventions (stdlib net/http, encoding/json request/response bodies,
// CORS headers open for local demo use) rather than any web framework.
package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/QPG-MIT/optiverse-sub001/pkg/propagate"
	"github.com/QPG-MIT/optiverse-sub001/pkg/scenefile"
)

// Server handles web requests for the ray tracing engine.
type Server struct {
	port int
}

// NewServer creates a new HTTP server bound to the given port.
func NewServer(port int) *Server {
	return &Server{port: port}
}

// TraceRequest is the wire shape of a POST /api/trace body: a scene plus
// optional overrides for the default trace config.
type TraceRequest struct {
	scenefile.SceneDoc
	MaxEvents      uint32  `json:"max_events,omitempty"`
	EpsilonAdvance float64 `json:"epsilon_advance,omitempty"`
	MinIntensity   float64 `json:"min_intensity,omitempty"`
}

// TraceResponse is the wire shape of a POST /api/trace response.
type TraceResponse struct {
	Paths     []scenefile.RayPathDoc `json:"paths"`
	ElapsedMs int64                  `json:"elapsed_ms"`
	RayCount  int                    `json:"ray_count"`
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/trace", s.handleTrace)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting optics HTTP API on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleTrace parses a scene from the request body, traces it, and
// returns the resulting RayPaths as JSON.
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed, use POST", r.Method))
		return
	}

	var req TraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	elements, err := scenefile.ToElements(req.Elements)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	sources := scenefile.ToSources(req.Sources)

	cfg := propagate.DefaultTraceConfig()
	if req.MaxEvents > 0 {
		cfg.MaxEvents = req.MaxEvents
	}
	if req.EpsilonAdvance > 0 {
		cfg.EpsilonAdvance = req.EpsilonAdvance
	}
	if req.MinIntensity > 0 {
		cfg.MinIntensity = req.MinIntensity
	}

	start := time.Now()
	paths, err := propagate.TraceRaysParallel(elements, sources, cfg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := TraceResponse{
		Paths:     scenefile.FromRayPaths(paths),
		ElapsedMs: time.Since(start).Milliseconds(),
		RayCount:  len(paths),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("error encoding trace response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
