package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

func IssueAccessToken(admin model.AdminUserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  admin.AdminUserID.String(),
		"role": admin.AdminUserRole,
		"typ":  tokenTypeAccess,
		"iat":  now.Unix(),
		"exp":  now.Add(configs.AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func IssueRefreshToken(admin model.AdminUserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": admin.AdminUserID.String(),
		"typ": tokenTypeRefresh,
		"iat": now.Unix(),
		"exp": now.Add(configs.RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken verifies a refresh token and returns the admin id it was
// issued for.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, helper.NewAuthError("Unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, helper.NewAuthError("Invalid or expired refresh token")
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return uuid.Nil, helper.NewAuthError("Invalid or expired refresh token")
	}
	sub, _ := claims["sub"].(string)
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, helper.NewAuthError("Invalid or expired refresh token")
	}
	return adminID, nil
}

// AccessTokenExpiry extracts the exp claim from an access token without
// verifying the signature; used when blacklisting on logout.
func AccessTokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Now().Add(configs.AccessTokenTTL)
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(configs.AccessTokenTTL)
}
