package domain

// One origin/destination query. Origin and Destination each hold a
// single address string or an ordered []string of addresses; any other
// type is rejected when the request URL is built. DepartureTime and
// ArrivalTime are mutually exclusive. When neither is set the request
// departs "now".
type Trip struct {
	Origin        any
	Destination   any
	DepartureTime string
	ArrivalTime   string
}
