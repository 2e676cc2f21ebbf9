package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/prabhatlnct2008/digipath/internals/features/admins/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token,omitempty"`
	TokenType    string             `json:"token_type"`
	Admin        *AdminUserResponse `json:"admin,omitempty"`
}

type AdminUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToAdminUserResponse(m model.AdminUserModel) AdminUserResponse {
	return AdminUserResponse{
		ID:        m.AdminUserID,
		Name:      m.AdminUserName,
		Email:     m.AdminUserEmail,
		Role:      m.AdminUserRole,
		CreatedAt: m.AdminUserCreatedAt,
		UpdatedAt: m.AdminUserUpdatedAt,
	}
}
