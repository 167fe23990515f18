package accountsdk

import "time"

// Account is the public view of an account as rendered by the API.
// Password material never appears here.
type Account struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Pagination accompanies list responses.
type Pagination struct {
	Total       int64 `json:"total"`
	Pages       int64 `json:"pages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Token   string   `json:"token,omitempty"`
	User    *Account `json:"user,omitempty"`
}

// AccountResponse wraps a single account.
type AccountResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	User    *Account `json:"user,omitempty"`
}

// ListResponse wraps one page of accounts.
type ListResponse struct {
	Success    bool       `json:"success"`
	Users      []Account  `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// MessageResponse carries a bare confirmation.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the shape of every non-2xx body.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SignupRequest is the body for POST /api/auth/signup.
type SignupRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role,omitempty"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body for PUT /api/users/profile/{id}.
// Empty fields are left unchanged.
type UpdateProfileRequest struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ChangePasswordRequest is the body for PUT /api/users/change-password/{id}.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
