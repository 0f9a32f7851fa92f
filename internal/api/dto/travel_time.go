package dto

type FareResponse struct {
	Currency string   `json:"currency"`
	Cost     *float64 `json:"cost"`
	CostText string   `json:"cost_text"`
}

type TravelTimeResponse struct {
	Mode                     string            `json:"mode"`
	Success                  bool              `json:"success"`
	Status                   string            `json:"status"`
	Origin                   string            `json:"origin"`
	Destination              string            `json:"destination"`
	DistanceMeters           *int              `json:"distance_meters,omitempty"`
	DistanceFeet             *float64          `json:"distance_feet,omitempty"`
	DistanceMiles            *float64          `json:"distance_miles,omitempty"`
	DurationSeconds          *int              `json:"duration_seconds,omitempty"`
	DurationInTrafficSeconds *int              `json:"duration_in_traffic_seconds,omitempty"`
	Fare                     *FareResponse     `json:"fare,omitempty"`
	QueryParams              map[string]string `json:"query_params,omitempty"`
}

type BatchResponse struct {
	Results []TravelTimeResponse `json:"results"`
}
