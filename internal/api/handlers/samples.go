package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// SampleHandler exposes recorded observations: the append-only archive
// and the per-pair latest store. Either backend may be absent; its
// endpoint then answers 503.
type SampleHandler struct {
	Archive     ports.SampleArchive
	Store       ports.LatestStore
	DefaultMode domain.Mode
	Log         *logrus.Logger
}

func (h *SampleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Archive == nil {
		writeError(w, r, http.StatusServiceUnavailable, "sample archive not configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	samples, err := h.Archive.ListRecent(r.Context(), limit)
	if err != nil {
		h.Log.WithError(err).Error("list samples failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSamplesResponse{Samples: make([]dto.SampleResponse, 0, len(samples))}
	for _, s := range samples {
		res.Samples = append(res.Samples, sampleResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Latest returns the most recent sample for one origin/destination
// pair. The pair is keyed by the addresses the remote service reported,
// not the spelling the original request used.
func (h *SampleHandler) Latest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.Store == nil {
		writeError(w, r, http.StatusServiceUnavailable, "latest store not configured")
		return
	}

	q := r.URL.Query()
	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	mode := h.DefaultMode
	if raw := q.Get("mode"); raw != "" {
		parsed, err := domain.ParseMode(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		mode = parsed
	}

	sample, err := h.Store.GetLatest(r.Context(), mode, origin, destination)
	if err != nil {
		if errors.Is(err, ports.ErrSampleNotFound) {
			writeError(w, r, http.StatusNotFound, "no sample recorded for this pair")
			return
		}
		h.Log.WithError(err).Error("latest sample lookup failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, sampleResponse(sample))
}

func sampleResponse(s domain.Sample) dto.SampleResponse {
	return dto.SampleResponse{
		ID:                       s.ID,
		Origin:                   s.Origin,
		Destination:              s.Destination,
		Mode:                     string(s.Mode),
		Success:                  s.Success,
		Status:                   s.Status,
		DistanceMeters:           s.DistanceMeters,
		DurationSeconds:          s.DurationSeconds,
		DurationInTrafficSeconds: s.DurationTrafficSeconds,
		RecordedAt:               s.RecordedAt,
	}
}
