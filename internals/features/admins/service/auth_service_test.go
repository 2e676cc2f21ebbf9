package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/admins/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = time.Hour
	configs.RefreshTokenTTL = 7 * 24 * time.Hour

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminUserModel{}, &model.TokenBlacklistModel{}))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) model.AdminUserModel {
	t.Helper()
	hashed, err := HashPassword(password)
	require.NoError(t, err)

	admin := model.AdminUserModel{
		AdminUserName:     "System Administrator",
		AdminUserEmail:    email,
		AdminUserPassword: hashed,
		AdminUserRole:     model.RoleSuperAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)
	require.NotEqual(t, uuid.Nil, admin.AdminUserID)
	return admin
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hashed)
	require.NoError(t, CheckPasswordHash(hashed, "s3cret"))
	require.Error(t, CheckPasswordHash(hashed, "wrong"))
}

func TestLoginIssuesTokenPair(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(db)
	admin := seedAdmin(t, db, "admin@aiims.edu", "admin123")

	tokens, err := svc.Login(dto.LoginRequest{Email: "admin@aiims.edu", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)
	require.NotNil(t, tokens.Admin)
	assert.Equal(t, admin.AdminUserID, tokens.Admin.ID)
	assert.Equal(t, model.RoleSuperAdmin, tokens.Admin.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(db)
	seedAdmin(t, db, "admin@aiims.edu", "admin123")

	// Same error for wrong password and unknown email.
	_, err := svc.Login(dto.LoginRequest{Email: "admin@aiims.edu", Password: "nope"})
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_ERROR", appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)

	_, err = svc.Login(dto.LoginRequest{Email: "nobody@aiims.edu", Password: "admin123"})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(db)
	seedAdmin(t, db, "admin@aiims.edu", "admin123")

	tokens, err := svc.Login(dto.LoginRequest{Email: "admin@aiims.edu", Password: "admin123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Empty(t, refreshed.RefreshToken)

	// An access token is not a refresh token.
	_, err = svc.Refresh(tokens.AccessToken)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_ERROR", appErr.Code)

	_, err = svc.Refresh("garbage")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_ERROR", appErr.Code)
}

func TestLogoutBlacklistsTokenIdempotently(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(db)
	seedAdmin(t, db, "admin@aiims.edu", "admin123")

	tokens, err := svc.Login(dto.LoginRequest{Email: "admin@aiims.edu", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(tokens.AccessToken))
	require.NoError(t, svc.Logout(tokens.AccessToken))

	var count int64
	require.NoError(t, db.Model(&model.TokenBlacklistModel{}).
		Where("token = ?", tokens.AccessToken).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMe(t *testing.T) {
	db := setupAuthTestDB(t)
	svc := NewAuthService(db)
	admin := seedAdmin(t, db, "admin@aiims.edu", "admin123")

	me, err := svc.Me(admin.AdminUserID)
	require.NoError(t, err)
	assert.Equal(t, "admin@aiims.edu", me.Email)

	_, err = svc.Me(uuid.New())
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	db := setupAuthTestDB(t)
	admin := seedAdmin(t, db, "admin@aiims.edu", "admin123")

	raw, err := IssueRefreshToken(admin, time.Now())
	require.NoError(t, err)

	adminID, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, admin.AdminUserID, adminID)
}
