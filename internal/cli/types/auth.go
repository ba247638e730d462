package types

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User represents an admin account
type User struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	LastLoginAt *string `json:"lastLoginAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// LoginData represents the data returned after successful login
type LoginData struct {
	Token  string `json:"token"`
	Expire string `json:"expire"`
	User   *User  `json:"user"`
}
