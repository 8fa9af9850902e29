// Package validation checks the user supplied parts of a telemetry query.
// Values that pass are returned as typed values; query text is only ever built from those.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrInvalidDeviceID   = errors.New("invalid device id")
	ErrInvalidDeviceIDs  = errors.New("invalid device id list")
	ErrMissingDevice     = errors.New("missing device id")
)

// DefaultTimeWindow applies when a request carries no time window.
const DefaultTimeWindow = "1m"

var (
	timeWindowRegex = regexp.MustCompile(`^([1-9]\d*)([mhd])$`)
	uuidV4Regex     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

// Unit of a time window.
type Unit byte

const (
	Minutes Unit = 'm'
	Hours   Unit = 'h'
	Days    Unit = 'd'
)

// TimeWindow is a relative look-back such as 2h. The amount is kept as its
// decimal digits so arbitrarily long inputs never overflow.
type TimeWindow struct {
	Amount string
	Unit   Unit
}

// String renders the window the way it was supplied, e.g. "15m".
func (w TimeWindow) String() string {
	return w.Amount + string(w.Unit)
}

// ParseTimeWindow accepts [number][m|h|d] with no leading zero.
func ParseTimeWindow(s string) (TimeWindow, error) {
	m := timeWindowRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{Amount: m[1], Unit: Unit(m[2][0])}, nil
}

// MustTimeWindow is ParseTimeWindow for constants.
func MustTimeWindow(s string) TimeWindow {
	w, err := ParseTimeWindow(s)
	if err != nil {
		panic(err)
	}
	return w
}

// DeviceID is a UUID v4 in its canonical 8-4-4-4-12 form, case preserved.
type DeviceID string

// ParseDeviceID validates a single device id.
func ParseDeviceID(s string) (DeviceID, error) {
	if !uuidV4Regex.MatchString(s) {
		return "", ErrInvalidDeviceID
	}
	return DeviceID(s), nil
}

// ParseDeviceIDs splits a comma separated list and validates every element.
// One bad element rejects the whole list. Empty elements are bad elements.
func ParseDeviceIDs(list string) ([]DeviceID, error) {
	parts := strings.Split(list, ",")
	ids := make([]DeviceID, 0, len(parts))
	for _, p := range parts {
		id, err := ParseDeviceID(p)
		if err != nil {
			return nil, ErrInvalidDeviceIDs
		}
		ids = append(ids, id)
	}
	return ids, nil
}
