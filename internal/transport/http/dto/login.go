package dto

import (
	"github.com/digicard/admin-auth/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces presence only. The wire contract collapses both
// missing fields into one message; format checks live client-side.
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return domain.ErrCredentialsRequired()
	}
	return nil
}

// UserView is the sanitized account payload. No password field exists on
// the type, so it cannot leak by omission of a tag.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	User    UserView `json:"user"`
}

func NewLoginResponse(u domain.AdminUser) LoginResponse {
	return LoginResponse{
		Message: "Login successful",
		User: UserView{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		},
	}
}
