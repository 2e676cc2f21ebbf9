package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/admins/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

type AuthService struct {
	DB *gorm.DB

	// Now is the clock used for token issuance; nil means time.Now.
	Now func() time.Time
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the credentials and issues an access + refresh token pair.
func (s *AuthService) Login(req dto.LoginRequest) (dto.TokenResponse, error) {
	var admin model.AdminUserModel
	if err := s.DB.Where("admin_user_email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenResponse{}, helper.NewAuthError("Invalid email or password")
		}
		return dto.TokenResponse{}, err
	}
	if err := CheckPasswordHash(admin.AdminUserPassword, req.Password); err != nil {
		return dto.TokenResponse{}, helper.NewAuthError("Invalid email or password")
	}

	now := s.now()
	accessToken, err := IssueAccessToken(admin, now)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	refreshToken, err := IssueRefreshToken(admin, now)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	adminResp := dto.ToAdminUserResponse(admin)
	return dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		Admin:        &adminResp,
	}, nil
}

// Refresh validates a refresh token and issues a fresh access token.
func (s *AuthService) Refresh(refreshToken string) (dto.TokenResponse, error) {
	adminID, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	var admin model.AdminUserModel
	if err := s.DB.First(&admin, "admin_user_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TokenResponse{}, helper.NewAuthError("Admin account no longer exists")
		}
		return dto.TokenResponse{}, err
	}

	accessToken, err := IssueAccessToken(admin, s.now())
	if err != nil {
		return dto.TokenResponse{}, err
	}
	return dto.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// Logout blacklists the presented access token until it would have expired
// anyway.
func (s *AuthService) Logout(rawToken string) error {
	if rawToken == "" {
		return helper.NewAuthError("Missing access token")
	}
	entry := model.TokenBlacklistModel{
		Token:     rawToken,
		ExpiredAt: AccessTokenExpiry(rawToken),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		// Re-blacklisting the same token is a no-op, not a failure.
		var existing model.TokenBlacklistModel
		if lookupErr := s.DB.Where("token = ?", rawToken).First(&existing).Error; lookupErr == nil {
			return nil
		}
		return err
	}
	return nil
}

func (s *AuthService) Me(adminID uuid.UUID) (dto.AdminUserResponse, error) {
	var admin model.AdminUserModel
	if err := s.DB.First(&admin, "admin_user_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AdminUserResponse{}, helper.NewNotFoundError("Admin user not found")
		}
		return dto.AdminUserResponse{}, err
	}
	return dto.ToAdminUserResponse(admin), nil
}
