package dto

import (
	"encoding/json"
	"errors"
)

// LocationValue accepts either a JSON string or an array of strings,
// the two location shapes the query builder understands. Any other
// JSON type is rejected at decode time.
type LocationValue struct {
	Value any
}

func (v *LocationValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		v.Value = single
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		v.Value = list
		return nil
	}

	return errors.New("location must be a string or an array of strings")
}

type TripRequest struct {
	Origin        LocationValue `json:"origin"`
	Destination   LocationValue `json:"destination"`
	DepartureTime string        `json:"departure_time"`
	ArrivalTime   string        `json:"arrival_time"`
}

type BatchRequest struct {
	Trips []TripRequest `json:"trips"`
}
