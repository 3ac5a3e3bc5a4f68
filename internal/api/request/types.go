package request

// PublishServerRequest is the request body for publishing a server
type PublishServerRequest struct {
	Name string `json:"name"`
	IP   string `json:"ip"`
	Type string `json:"type"`
}
