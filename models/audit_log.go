package models

import "time"

// ActivityRecord describes one audited mutating request: who called which
// endpoint about which object. Records are immutable once built.
type ActivityRecord struct {
	ID             int64     `json:"id"`
	RequestID      string    `json:"request_id,omitempty"`
	URL            string    `json:"url"`
	HTTPMethod     string    `json:"http_method"`
	ControllerName string    `json:"controller_name"`
	ActionName     string    `json:"action_name"`
	UserID         int       `json:"user_id"`
	// ObjectID is a comma-joined list when the payload was an array.
	ObjectID       string    `json:"object_id"`
	RawBody        string    `json:"raw_body"`
	ClientIP       string    `json:"client_ip"`
	Timestamp      time.Time `json:"timestamp"`
}

// ExceptionRecord captures an unhandled handler failure for a known user.
type ExceptionRecord struct {
	ID           int64     `json:"id"`
	RequestID    string    `json:"request_id,omitempty"`
	UserID       int       `json:"user_id"`
	Message      string    `json:"message"`
	StackTrace   string    `json:"stack_trace"`
	InnerMessage string    `json:"inner_message,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
