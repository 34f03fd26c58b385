package models

// Credentials is the login form. It is sent to the backend once and never
// persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of a login reply. Token is empty when the
// backend accepted the request but did not open a session.
type LoginResponse struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Token    string `json:"token,omitempty"`
}
