package domain

import "time"

// One archived travel-time observation. Samples are append-only rows;
// they are never read back to answer a live query.
type Sample struct {
	ID                     int64
	Origin                 string
	Destination            string
	Mode                   Mode
	Success                bool
	Status                 string
	DistanceMeters         *int
	DurationSeconds        *int
	DurationTrafficSeconds *int
	RecordedAt             time.Time
}

// NewSample stamps a parsed result into an archivable observation.
func NewSample(t TravelTime, at time.Time) Sample {
	return Sample{
		Origin:                 t.Origin,
		Destination:            t.Destination,
		Mode:                   t.Mode,
		Success:                t.Success,
		Status:                 t.Status,
		DistanceMeters:         t.Distance,
		DurationSeconds:        t.Duration,
		DurationTrafficSeconds: t.DurationInTraffic,
		RecordedAt:             at,
	}
}
