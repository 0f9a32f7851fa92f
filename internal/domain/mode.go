package domain

import "fmt"

// Travel mode understood by the distance API. The wire protocol uses
// these exact strings in the mode query parameter.
type Mode string

const (
	ModeDriving   Mode = "driving"
	ModeWalking   Mode = "walking"
	ModeBicycling Mode = "bicycling"
	ModeTransit   Mode = "transit"
)

// ParseMode validates a raw mode string from config or request input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDriving, ModeWalking, ModeBicycling, ModeTransit:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown travel mode %q", s)
}

func (m Mode) String() string { return string(m) }
