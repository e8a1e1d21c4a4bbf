package models

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login; the session
// credential itself travels in the auth cookie.
type LoginResponse struct {
	Success bool   `json:"success"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message,omitempty"`
}

// CheckResponse reports the caller's session state.
type CheckResponse struct {
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message,omitempty"`
}

// LogoutResponse confirms that the credential was cleared.
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
