package dto

type RankRequest struct {
	Origin       string   `json:"origin"`
	Destinations []string `json:"destinations"`
}

type RankedDestinationResponse struct {
	Destination string             `json:"destination"`
	Result      TravelTimeResponse `json:"result"`
}

type RankResponse struct {
	Origin  string                      `json:"origin"`
	Ranking []RankedDestinationResponse `json:"ranking"`
}
