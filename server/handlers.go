package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/planner"
)

// maxBodyBytes bounds route request bodies.
const maxBodyBytes = 1 << 16

// StatusClientClosedRequest answers a request whose client went away before
// planning finished.
const StatusClientClosedRequest = 499

// RouteRequest is the body of POST /ruta and POST /api/route. The Spanish
// field names are accepted for compatibility with the original map front-end.
type RouteRequest struct {
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	Inicio         string     `json:"inicio"`
	Fin            string     `json:"fin"`
	OriginPos      *geo.Point `json:"originPos,omitempty"`
	DestinationPos *geo.Point `json:"destinationPos,omitempty"`
}

func (rr RouteRequest) query() planner.Query {
	q := planner.Query{
		Origin:         strings.TrimSpace(rr.Origin),
		Destination:    strings.TrimSpace(rr.Destination),
		OriginPos:      rr.OriginPos,
		DestinationPos: rr.DestinationPos,
	}
	if q.Origin == "" {
		q.Origin = strings.TrimSpace(rr.Inicio)
	}
	if q.Destination == "" {
		q.Destination = strings.TrimSpace(rr.Fin)
	}

	return q
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q := req.query()
	if q.Origin == "" || q.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	it, err := s.planner.Plan(r.Context(), q)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, it)
	case errors.Is(err, planner.ErrUnknownStation):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, planner.ErrNoPath):
		writeError(w, http.StatusNotFound, fmt.Sprintf("no route between %q and %q", q.Origin, q.Destination))
	case errors.Is(err, geo.ErrNonFinite):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		writeError(w, StatusClientClosedRequest, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "planning timed out")
	default:
		s.logger.Error("planning failed", "origin", q.Origin, "destination", q.Destination,
			"request_id", w.Header().Get(HeaderRequestID), "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleStations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Network().Stations())
}

func (s *Server) handleLines(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Network().Lines())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"network": s.planner.Network().Stats(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
