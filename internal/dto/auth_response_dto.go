package dto

// AuthResponse is returned on successful login or OAuth code exchange.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
