package models

// RevalidateResponse reports a successful cache invalidation.
type RevalidateResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	RevalidatedAt string `json:"revalidatedAt"`
}
