package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User администратор в ответе
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}
