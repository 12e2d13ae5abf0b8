package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/railnav/railnav/pkg/errors"
	"github.com/railnav/railnav/pkg/railnet"
	"github.com/railnav/railnav/pkg/ticket"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	stations := s.net.Stations()
	s.mu.RUnlock()

	s.writeJSON(w, http.StatusOK, map[string]any{
		"stations": stations,
		"count":    len(stations),
	})
}

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "station id must be an integer"))
		return
	}

	s.mu.RLock()
	station, err := s.net.Station(id)
	s.mu.RUnlock()
	if err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeStationNotFound, "no station with id %d", id))
		return
	}
	s.writeJSON(w, http.StatusOK, station)
}

// The numeric fields stay present even at zero: a src==dest route
// legitimately has zero time and distance.
type routeResponse struct {
	Found      bool  `json:"found"`
	Path       []int `json:"path,omitempty"`
	TimeMin    int   `json:"time_min"`
	DistKm     int   `json:"dist_km"`
	Fare       int   `json:"fare"`
	SeniorFare int   `json:"senior_fare"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from")
	if err != nil {
		s.writeError(w, err)
		return
	}
	to, err := queryInt(r, "to")
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.RLock()
	route, ok, err := s.net.ShortestRoute(from, to)
	s.mu.RUnlock()
	if err != nil {
		s.writeError(w, mapNetError(err))
		return
	}
	if !ok {
		// No path is a legitimate answer, not an error.
		s.writeJSON(w, http.StatusOK, routeResponse{Found: false})
		return
	}
	s.writeJSON(w, http.StatusOK, routeResponse{
		Found:      true,
		Path:       route.Path,
		TimeMin:    route.Time,
		DistKm:     route.Dist,
		Fare:       s.policy.Fare(route.Dist),
		SeniorFare: s.policy.SeniorFare(route.Dist),
	})
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	from, err := queryInt(r, "from")
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.RLock()
	stations, rerr := s.net.Reachable(from)
	s.mu.RUnlock()
	if rerr != nil {
		s.writeError(w, mapNetError(rerr))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"from":     from,
		"stations": stations,
		"count":    len(stations),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	stats := s.net.Stats()
	s.mu.RUnlock()
	s.writeJSON(w, http.StatusOK, stats)
}

type blockRequest struct {
	U int `json:"u"`
	V int `json:"v"`
}

func (s *Server) handleBlockTrack(w http.ResponseWriter, r *http.Request) {
	var req blockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	s.mu.Lock()
	err := s.net.BlockTrack(req.U, req.V)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, mapNetError(err))
		return
	}

	s.log.Info("track blocked", "u", req.U, "v", req.V)
	s.writeJSON(w, http.StatusOK, map[string]any{"blocked": true, "u": req.U, "v": req.V})
}

type bookRequest struct {
	Passenger string `json:"passenger"`
	Age       int    `json:"age"`
	Type      string `json:"type"`
	From      int    `json:"from"`
	To        int    `json:"to"`
}

func (s *Server) handleBookTicket(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	if req.Passenger == "" {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "passenger name is required"))
		return
	}

	typ := ticket.PassengerType(req.Type)
	switch typ {
	case "":
		typ = ticket.TypeGeneral
	case ticket.TypeGeneral, ticket.TypeLadies, ticket.TypeSenior:
	default:
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown passenger type %q", req.Type))
		return
	}

	s.mu.Lock()
	tk, err := s.office.Book(req.Passenger, req.Age, typ, req.From, req.To)
	s.mu.Unlock()
	if err != nil {
		if errors.Is(err, ticket.ErrUnreachable) {
			s.writeError(w, apperrors.New(apperrors.ErrCodeNoRoute, "no route between stations %d and %d", req.From, req.To))
			return
		}
		s.writeError(w, mapNetError(err))
		return
	}

	s.log.Info("ticket booked", "id", tk.ID, "passenger", tk.Passenger, "fare", tk.Fare)
	s.writeJSON(w, http.StatusCreated, tk)
}

// queryInt parses a required integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "missing query parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidInput, "parameter %q must be an integer", name)
	}
	return v, nil
}

// mapNetError converts railnet sentinel errors to coded API errors.
func mapNetError(err error) error {
	switch {
	case errors.Is(err, railnet.ErrInvalidStation):
		return apperrors.Wrap(apperrors.ErrCodeInvalidStation, err, "invalid station id")
	case errors.Is(err, railnet.ErrNetworkFull):
		return apperrors.Wrap(apperrors.ErrCodeCapacityExceeded, err, "network is at capacity")
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "internal error")
	}
}
