package response

// Status is the outcome carried by every response envelope.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	// StatusIgnore is never written by the server; clients use it for
	// requests they cancelled themselves.
	StatusIgnore Status = "ignore"
)

// Resp is the standard JSON response body.
type Resp struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
