package googlemaps

import (
	"encoding/json"
	"fmt"

	"travel-time-service/internal/domain"
)

// ParseResponse turns one raw response body into a TravelTime. It never
// fails: undecodable payloads, remote errors and schema gaps all land
// in the result's Success and Status fields, so callers branch on
// Success instead of handling errors.
//
// The general envelope is validated the same way for every mode; the
// mode-specific step below runs only on a fully successful envelope.
func ParseResponse(mode domain.Mode, applied map[string]string, body []byte) domain.TravelTime {
	result := domain.TravelTime{Mode: mode, Applied: applied}

	var raw matrixResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		result.Status = fmt.Sprintf("response not valid JSON: %v", err)
		return result
	}

	element, ok := parseGeneral(&result, raw)
	if !ok {
		return result
	}

	// Static dispatch on the mode tag. Walking and bicycling carry no
	// extra payload; their general outcome is final.
	switch mode {
	case domain.ModeDriving:
		parseDriving(&result, element)
	case domain.ModeTransit:
		parseTransit(&result, element)
	}

	return result
}

// parseGeneral validates the envelope shared by all modes and fills the
// common fields. Returns the element for mode-specific parsing and
// whether the envelope was fully valid.
func parseGeneral(result *domain.TravelTime, raw matrixResponse) (matrixElement, bool) {
	// Query-level failure: the remote status comes back verbatim and
	// nothing else is populated.
	if raw.Status != domain.StatusOK {
		result.Status = raw.Status
		return matrixElement{}, false
	}

	if raw.OriginAddresses == nil {
		result.Status = missingKey("origin_addresses")
		return matrixElement{}, false
	}
	if len(raw.OriginAddresses) == 0 {
		result.Status = emptyList("origin_addresses")
		return matrixElement{}, false
	}

	if raw.DestinationAddresses == nil {
		result.Status = missingKey("destination_addresses")
		return matrixElement{}, false
	}
	if len(raw.DestinationAddresses) == 0 {
		result.Status = emptyList("destination_addresses")
		return matrixElement{}, false
	}

	if raw.Rows == nil {
		result.Status = missingKey("rows")
		return matrixElement{}, false
	}
	if len(raw.Rows) == 0 {
		result.Status = emptyList("rows")
		return matrixElement{}, false
	}

	row := raw.Rows[0]
	if row.Elements == nil {
		result.Status = missingKey("elements")
		return matrixElement{}, false
	}
	if len(row.Elements) == 0 {
		result.Status = emptyList("elements")
		return matrixElement{}, false
	}

	// The addresses are good from here on, so element-level failures
	// still report which pair they were about.
	result.Origin = raw.OriginAddresses[0]
	result.Destination = raw.DestinationAddresses[0]

	element := row.Elements[0]
	if element.Status == nil {
		result.Status = missingKey("status")
		return matrixElement{}, false
	}
	if *element.Status != domain.StatusOK {
		result.Status = *element.Status
		return matrixElement{}, false
	}

	if element.Distance == nil {
		result.Status = missingKey("distance")
		return matrixElement{}, false
	}
	if element.Distance.Value == nil {
		result.Status = missingKey("distance.value")
		return matrixElement{}, false
	}
	if element.Duration == nil {
		result.Status = missingKey("duration")
		return matrixElement{}, false
	}
	if element.Duration.Value == nil {
		result.Status = missingKey("duration.value")
		return matrixElement{}, false
	}

	result.Distance = element.Distance.Value
	result.Duration = element.Duration.Value
	result.Status = domain.StatusOK
	result.Success = true

	return element, true
}

// parseDriving requires duration_in_traffic: a response without it
// invalidates an otherwise successful general parse.
func parseDriving(result *domain.TravelTime, element matrixElement) {
	if element.DurationInTraffic == nil {
		result.Status = missingKey("duration_in_traffic")
		result.Success = false
		return
	}
	if element.DurationInTraffic.Value == nil {
		result.Status = missingKey("duration_in_traffic.value")
		result.Success = false
		return
	}

	result.DurationInTraffic = element.DurationInTraffic.Value
}

// parseTransit reads the optional fare block. A missing fare is
// expected and non-fatal; the fields keep their documented defaults.
func parseTransit(result *domain.TravelTime, element matrixElement) {
	fare := domain.UnavailableFare()
	if element.Fare != nil {
		if element.Fare.Currency != "" {
			fare.Currency = element.Fare.Currency
		}
		if element.Fare.Text != "" {
			fare.CostText = element.Fare.Text
		}
		fare.Cost = element.Fare.Value
	}

	result.Fare = fare
}

func missingKey(key string) string {
	return fmt.Sprintf("response schema invalid: missing key %q", key)
}

func emptyList(name string) string {
	return fmt.Sprintf("response schema invalid: empty %q", name)
}
