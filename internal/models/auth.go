package models

// AuthData carries the session token issued at login/registration.
type AuthData struct {
	Token string `json:"token"`
}

// AuthResponse wraps the login/register endpoint payload.
type AuthResponse struct {
	Data AuthData `json:"data"`
}

// GeneralResponse is the bare reply of mutation endpoints that return no entity.
type GeneralResponse struct {
	Data string `json:"data,omitempty"`
}
