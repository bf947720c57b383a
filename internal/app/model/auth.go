package model

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type UserResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CreatedAt    string `json:"createdAt"`
	LastModified string `json:"lastModified"`
}

type AuthResponse struct {
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// MessageResponse is the body of every answer without a payload, errors
// holds per field validation messages.
type MessageResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
