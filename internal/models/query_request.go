package models

// QueryRequest is what the device query handler reads from an API Gateway event.
type QueryRequest struct {
	// TimeWindow is the raw timeWindow query parameter; empty means default.
	TimeWindow string
	// IDs is the raw ids query parameter. HasIDs distinguishes "ids=" from no ids at all.
	IDs    string
	HasIDs bool
	// DeviceID is the deviceId path parameter.
	DeviceID string
}
