package dto

// LoginRequest represents login credentials sent to the backend
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend answer to a login. An empty Token means the
// credentials were rejected.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents a new account sent to the backend
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	Department     string `json:"department,omitempty"`
}

// LoginForm is the login page form
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the registration page form
type RegisterForm struct {
	Name           string `form:"name" validate:"notblank,max=100"`
	Email          string `form:"email" validate:"required,email"`
	Password       string `form:"password" validate:"required,min=6"`
	Role           string `form:"role" validate:"required,oneof=student alumni"`
	GraduationYear int    `form:"graduationYear" validate:"omitempty,min=1900,max=2100"`
	Department     string `form:"department" validate:"max=100"`
}

// ToRequest converts the form into the backend payload
func (f RegisterForm) ToRequest() RegisterRequest {
	return RegisterRequest{
		Name:           f.Name,
		Email:          f.Email,
		Password:       f.Password,
		Role:           f.Role,
		GraduationYear: f.GraduationYear,
		Department:     f.Department,
	}
}
