package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

// RankHandler orders candidate destinations by travel time from a
// single origin.
type RankHandler struct {
	Provider ports.TravelTimeProvider
	Log      *logrus.Logger
}

func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RankRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Origin) == "" {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}
	if len(req.Destinations) == 0 {
		writeError(w, r, http.StatusBadRequest, "destinations is required")
		return
	}
	if len(req.Destinations) > maxBatchTrips {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d destinations per request", maxBatchTrips))
		return
	}

	ranked, err := services.RankDestinations(r.Context(), req.Origin, req.Destinations, h.Provider)
	if err != nil {
		if isTripError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.WithError(err).Error("rank destinations failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RankResponse{
		Origin:  req.Origin,
		Ranking: make([]dto.RankedDestinationResponse, 0, len(ranked)),
	}
	for _, rd := range ranked {
		res.Ranking = append(res.Ranking, dto.RankedDestinationResponse{
			Destination: rd.Destination,
			Result:      travelTimeResponse(rd.Result),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
