package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ErrorResponse is the JSON body returned for any failed API call.
// Message is intentionally generic for 404 responses: a nonexistent record
// and another user's record produce identical bodies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AffectedResponse reports how many rows a scoped update or delete touched.
// Zero rows means the target record does not exist or is not owned by the
// caller; the server does not distinguish the two.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}
