package googlemaps

import (
	"strings"
	"testing"

	"travel-time-service/internal/domain"
)

const drivingPayload = `{
	"destination_addresses": ["New York, NY, USA"],
	"origin_addresses": ["Boston, MA, USA"],
	"rows": [
		{
			"elements": [
				{
					"distance": {"text": "217 mi", "value": 348700},
					"duration": {"text": "3 hours 48 mins", "value": 13684},
					"duration_in_traffic": {"text": "4 hours 20 mins", "value": 15570},
					"status": "OK"
				}
			]
		}
	],
	"status": "OK"
}`

func TestParseDrivingResponse(t *testing.T) {
	result := ParseResponse(domain.ModeDriving, map[string]string{"departure_time": "now"}, []byte(drivingPayload))

	if !result.Success || result.Status != domain.StatusOK {
		t.Fatalf("success=%v status=%q, want successful OK result", result.Success, result.Status)
	}
	if result.Origin != "Boston, MA, USA" || result.Destination != "New York, NY, USA" {
		t.Errorf("addresses = %q -> %q", result.Origin, result.Destination)
	}
	if result.Distance == nil || *result.Distance != 348700 {
		t.Errorf("distance = %v, want 348700", result.Distance)
	}
	if result.Duration == nil || *result.Duration != 13684 {
		t.Errorf("duration = %v, want 13684", result.Duration)
	}
	if result.DurationInTraffic == nil || *result.DurationInTraffic != 15570 {
		t.Errorf("duration_in_traffic = %v, want 15570", result.DurationInTraffic)
	}
	if result.Applied["departure_time"] != "now" {
		t.Errorf("applied options not carried through: %v", result.Applied)
	}
}

func TestParseQueryLevelFailure(t *testing.T) {
	result := ParseResponse(domain.ModeDriving, nil, []byte(`{"status": "OVER_QUERY_LIMIT"}`))

	if result.Success {
		t.Fatalf("success = true for a failed query")
	}
	if result.Status != "OVER_QUERY_LIMIT" {
		t.Errorf("status = %q, want the remote status verbatim", result.Status)
	}
	if result.Origin != "" || result.Destination != "" {
		t.Errorf("addresses must stay empty on query-level failure, got %q -> %q", result.Origin, result.Destination)
	}
	if result.Distance != nil || result.Duration != nil {
		t.Errorf("distance/duration must stay unset on query-level failure")
	}
}

func TestParseElementLevelFailure(t *testing.T) {
	payload := `{
		"origin_addresses": ["Boston, MA, USA"],
		"destination_addresses": ["Atlantis"],
		"rows": [{"elements": [{"status": "NOT_FOUND"}]}],
		"status": "OK"
	}`

	result := ParseResponse(domain.ModeDriving, nil, []byte(payload))

	if result.Success {
		t.Fatalf("success = true for an unroutable pair")
	}
	if result.Status != "NOT_FOUND" {
		t.Errorf("status = %q, want NOT_FOUND", result.Status)
	}
	// Element-level failures still report which pair they were about.
	if result.Origin != "Boston, MA, USA" || result.Destination != "Atlantis" {
		t.Errorf("addresses = %q -> %q, want them populated", result.Origin, result.Destination)
	}
}

func TestParseDistinguishesMissingKeyFromEmptyList(t *testing.T) {
	missing := ParseResponse(domain.ModeWalking, nil, []byte(`{
		"status": "OK",
		"origin_addresses": ["A"],
		"destination_addresses": ["B"]
	}`))
	if missing.Success {
		t.Fatalf("success = true without rows")
	}
	if missing.Status != `response schema invalid: missing key "rows"` {
		t.Errorf("status = %q, want missing key message", missing.Status)
	}

	empty := ParseResponse(domain.ModeWalking, nil, []byte(`{
		"status": "OK",
		"origin_addresses": ["A"],
		"destination_addresses": ["B"],
		"rows": []
	}`))
	if empty.Success {
		t.Fatalf("success = true with empty rows")
	}
	if empty.Status != `response schema invalid: empty "rows"` {
		t.Errorf("status = %q, want empty list message", empty.Status)
	}

	if missing.Status == empty.Status {
		t.Errorf("missing-key and empty-list cases must stay distinguishable")
	}
}

func TestParseDrivingWithoutTrafficIsFailure(t *testing.T) {
	payload := `{
		"origin_addresses": ["Boston, MA, USA"],
		"destination_addresses": ["New York, NY, USA"],
		"rows": [
			{
				"elements": [
					{
						"distance": {"text": "217 mi", "value": 348700},
						"duration": {"text": "3 hours 48 mins", "value": 13684},
						"status": "OK"
					}
				]
			}
		],
		"status": "OK"
	}`

	result := ParseResponse(domain.ModeDriving, nil, []byte(payload))

	if result.Success {
		t.Fatalf("success = true for a driving payload without duration_in_traffic")
	}
	if result.Status != `response schema invalid: missing key "duration_in_traffic"` {
		t.Errorf("status = %q", result.Status)
	}
	// The general fields parsed before the mode step invalidated the result.
	if result.Distance == nil || *result.Distance != 348700 {
		t.Errorf("distance = %v, want the parsed 348700", result.Distance)
	}
}

func TestParseWalkingNeedsNoTraffic(t *testing.T) {
	payload := `{
		"origin_addresses": ["Boston, MA, USA"],
		"destination_addresses": ["New York, NY, USA"],
		"rows": [
			{
				"elements": [
					{
						"distance": {"text": "215 mi", "value": 346000},
						"duration": {"text": "71 hours", "value": 255600},
						"status": "OK"
					}
				]
			}
		],
		"status": "OK"
	}`

	result := ParseResponse(domain.ModeWalking, nil, []byte(payload))

	if !result.Success || result.Status != domain.StatusOK {
		t.Fatalf("success=%v status=%q, want successful walking result", result.Success, result.Status)
	}
	if result.DurationInTraffic != nil {
		t.Errorf("walking result must not carry duration_in_traffic")
	}
	if result.Fare != nil {
		t.Errorf("walking result must not carry fare")
	}
}

func TestParseTransitWithoutFareUsesDefaults(t *testing.T) {
	payload := `{
		"origin_addresses": ["Boston, MA, USA"],
		"destination_addresses": ["New York, NY, USA"],
		"rows": [
			{
				"elements": [
					{
						"distance": {"text": "219 mi", "value": 352000},
						"duration": {"text": "4 hours 10 mins", "value": 15000},
						"status": "OK"
					}
				]
			}
		],
		"status": "OK"
	}`

	result := ParseResponse(domain.ModeTransit, nil, []byte(payload))

	if !result.Success {
		t.Fatalf("a transit payload without fare must still succeed, status=%q", result.Status)
	}
	if result.Fare == nil {
		t.Fatalf("fare defaults missing")
	}
	if result.Fare.Currency != domain.NoFareInformation {
		t.Errorf("currency = %q, want default sentinel", result.Fare.Currency)
	}
	if result.Fare.CostText != domain.NoFareInformation {
		t.Errorf("cost text = %q, want default sentinel", result.Fare.CostText)
	}
	if result.Fare.Cost != nil {
		t.Errorf("cost = %v, want nil", *result.Fare.Cost)
	}
}

func TestParseTransitWithFare(t *testing.T) {
	payload := `{
		"origin_addresses": ["Boston, MA, USA"],
		"destination_addresses": ["New York, NY, USA"],
		"rows": [
			{
				"elements": [
					{
						"distance": {"text": "219 mi", "value": 352000},
						"duration": {"text": "4 hours 10 mins", "value": 15000},
						"fare": {"currency": "USD", "value": 2.75, "text": "$2.75"},
						"status": "OK"
					}
				]
			}
		],
		"status": "OK"
	}`

	result := ParseResponse(domain.ModeTransit, nil, []byte(payload))

	if !result.Success {
		t.Fatalf("unexpected failure: %q", result.Status)
	}
	if result.Fare == nil || result.Fare.Cost == nil {
		t.Fatalf("fare not populated: %+v", result.Fare)
	}
	if result.Fare.Currency != "USD" || *result.Fare.Cost != 2.75 || result.Fare.CostText != "$2.75" {
		t.Errorf("fare = %+v", *result.Fare)
	}
}

func TestParseRejectsNonJSONBody(t *testing.T) {
	result := ParseResponse(domain.ModeDriving, nil, []byte("<html>rate limited</html>"))

	if result.Success {
		t.Fatalf("success = true for a non-JSON body")
	}
	if !strings.HasPrefix(result.Status, "response not valid JSON:") {
		t.Errorf("status = %q", result.Status)
	}
}
