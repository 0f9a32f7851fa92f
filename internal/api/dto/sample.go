package dto

import "time"

type SampleResponse struct {
	ID                       int64     `json:"id"`
	Origin                   string    `json:"origin"`
	Destination              string    `json:"destination"`
	Mode                     string    `json:"mode"`
	Success                  bool      `json:"success"`
	Status                   string    `json:"status"`
	DistanceMeters           *int      `json:"distance_meters,omitempty"`
	DurationSeconds          *int      `json:"duration_seconds,omitempty"`
	DurationInTrafficSeconds *int      `json:"duration_in_traffic_seconds,omitempty"`
	RecordedAt               time.Time `json:"recorded_at"`
}

type ListSamplesResponse struct {
	Samples []SampleResponse `json:"samples"`
}
