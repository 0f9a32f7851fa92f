package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"travel-time-service/internal/adapters/googlemaps"
	"travel-time-service/internal/api/dto"
	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"
)

// maxBatchTrips caps one batch request. The remote API is queried once
// per trip, all at the same time.
const maxBatchTrips = 100

// TravelTimeHandler exposes single and batch travel time lookups.
type TravelTimeHandler struct {
	Provider ports.TravelTimeProvider
	Archive  ports.SampleArchive
	Store    ports.LatestStore
	Log      *logrus.Logger
}

// Single runs one lookup and returns the parsed result. Malformed trips
// are the caller's fault; transport problems are the upstream's.
func (h *TravelTimeHandler) Single(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Origin.Value == nil {
		writeError(w, r, http.StatusBadRequest, "origin is required")
		return
	}
	if req.Destination.Value == nil {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	trip := domain.Trip{
		Origin:        req.Origin.Value,
		Destination:   req.Destination.Value,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	result, err := h.Provider.GetTravelTime(r.Context(), trip)
	if err != nil {
		if isTripError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.WithError(err).Error("travel time lookup failed")
		writeError(w, r, http.StatusBadGateway, "upstream request failed")
		return
	}

	writeJSON(w, r, http.StatusOK, travelTimeResponse(result))
}

// Batch looks up every trip in one concurrent dispatch and records the
// outcomes. Slots that failed in flight come back as failed results
// inside a 200, in input order; only malformed trips fail the batch.
func (h *TravelTimeHandler) Batch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Trips) == 0 {
		writeError(w, r, http.StatusBadRequest, "trips is required")
		return
	}
	if len(req.Trips) > maxBatchTrips {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d trips per batch", maxBatchTrips))
		return
	}

	trips := make([]domain.Trip, 0, len(req.Trips))
	for i, tr := range req.Trips {
		if tr.Origin.Value == nil || tr.Destination.Value == nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("trip %d: origin and destination are required", i))
			return
		}
		trips = append(trips, domain.Trip{
			Origin:        tr.Origin.Value,
			Destination:   tr.Destination.Value,
			DepartureTime: tr.DepartureTime,
			ArrivalTime:   tr.ArrivalTime,
		})
	}

	results, err := services.CollectTravelTimes(r.Context(), trips, h.Provider, h.Archive, h.Store, h.Log)
	if err != nil {
		if isTripError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.WithError(err).Error("batch collection failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.BatchResponse{Results: make([]dto.TravelTimeResponse, 0, len(results))}
	for _, result := range results {
		res.Results = append(res.Results, travelTimeResponse(result))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// isTripError reports whether the lookup failed because of the trip the
// caller sent rather than the upstream service.
func isTripError(err error) bool {
	return errors.Is(err, googlemaps.ErrInvalidLocation) ||
		errors.Is(err, googlemaps.ErrConflictingTimes)
}

func travelTimeResponse(t domain.TravelTime) dto.TravelTimeResponse {
	res := dto.TravelTimeResponse{
		Mode:                     string(t.Mode),
		Success:                  t.Success,
		Status:                   t.Status,
		Origin:                   t.Origin,
		Destination:              t.Destination,
		DurationSeconds:          t.Duration,
		DurationInTrafficSeconds: t.DurationInTraffic,
		QueryParams:              t.Applied,
	}

	if meters, ok := t.Meters(); ok {
		feet, _ := t.Feet()
		miles, _ := t.Miles()
		res.DistanceMeters = &meters
		res.DistanceFeet = &feet
		res.DistanceMiles = &miles
	}

	if t.Fare != nil {
		res.Fare = &dto.FareResponse{
			Currency: t.Fare.Currency,
			Cost:     t.Fare.Cost,
			CostText: t.Fare.CostText,
		}
	}

	return res
}
