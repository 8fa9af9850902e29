package models

// Reading is one flattened telemetry row.
type Reading struct {
	Time string `json:"time"`
	// ID is only set for multi-device queries; a single-device query already pins it.
	ID          string `json:"id,omitempty"`
	Value       *int64 `json:"value"`
	MeasureName string `json:"measureName"`
}
