package models

// Response is the generic JSON envelope used for error bodies and
// simple status replies.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
