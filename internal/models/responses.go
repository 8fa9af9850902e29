package models

// RecentResponse is the recent-window handler's success body.
type RecentResponse struct {
	Message string `json:"message"`
	Data    []Row  `json:"data"`
}

// DeviceReadingsResponse answers a single-device query.
type DeviceReadingsResponse struct {
	Message    string    `json:"message"`
	DeviceID   string    `json:"deviceId"`
	TimeWindow string    `json:"timeWindow"`
	Data       []Reading `json:"data"`
}

// DevicesReadingsResponse answers a multi-device query.
type DevicesReadingsResponse struct {
	Message    string    `json:"message"`
	DeviceIDs  []string  `json:"deviceIds"`
	TimeWindow string    `json:"timeWindow"`
	Data       []Reading `json:"data"`
}
