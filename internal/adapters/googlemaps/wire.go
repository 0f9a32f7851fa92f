package googlemaps

// Raw wire structs for the distance matrix JSON payload. Pointer fields
// let the parser tell a missing key apart from a zero value; nil versus
// empty slices tell a missing key apart from an empty array.
type matrixResponse struct {
	Status               string      `json:"status"`
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []matrixRow `json:"rows"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status            *string    `json:"status"`
	Distance          *valueText `json:"distance"`
	Duration          *valueText `json:"duration"`
	DurationInTraffic *valueText `json:"duration_in_traffic"`
	Fare              *fareBlock `json:"fare"`
}

type valueText struct {
	Text  string `json:"text"`
	Value *int   `json:"value"`
}

type fareBlock struct {
	Currency string   `json:"currency"`
	Value    *float64 `json:"value"`
	Text     string   `json:"text"`
}
