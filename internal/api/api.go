// Package api exposes the rail network over HTTP as a small JSON API.
//
// The API is read-mostly: routing, reachability, station listings and
// network statistics are GETs, while blocking a track and booking a
// ticket are POSTs. All responses are JSON; errors carry a
// machine-readable code alongside the message.
package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/railnav/railnav/pkg/errors"
	"github.com/railnav/railnav/pkg/railnet"
	"github.com/railnav/railnav/pkg/ticket"
)

// Server serves the rail network API. Reads take a shared lock and the
// mutating endpoints an exclusive one, so a block takes effect on the
// next routing query.
type Server struct {
	mu     sync.RWMutex
	net    *railnet.Network
	office *ticket.Office
	policy railnet.FarePolicy
	log    *log.Logger
}

// New creates a server over the given network and fare policy.
func New(net *railnet.Network, policy railnet.FarePolicy, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		net:    net,
		office: ticket.NewOffice(net, policy),
		policy: policy,
		log:    logger,
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stations", s.handleStations)
		r.Get("/stations/{id}", s.handleStation)
		r.Get("/route", s.handleRoute)
		r.Get("/reachable", s.handleReachable)
		r.Get("/stats", s.handleStats)
		r.Post("/tracks/block", s.handleBlockTrack)
		r.Post("/tickets", s.handleBookTicket)
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "err", err)
	}
}

// writeError maps an application error to an HTTP status and writes it.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidStation, apperrors.ErrCodeInvalidTrack:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeStationNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeNoRoute:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeCapacityExceeded:
		status = http.StatusConflict
	}
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	s.writeJSON(w, status, errorResponse{Error: apperrors.UserMessage(err), Code: string(code)})
}
