package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required"`
	Confirm  string `json:"confirm" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin staff student"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session describes an authenticated login: the signed cookie value plus the
// role-dependent landing page.
type Session struct {
	Token        string
	UserID       uuid.UUID
	Role         string
	UserName     string
	RedirectPath string
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
