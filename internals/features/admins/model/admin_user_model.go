package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type AdminUserModel struct {
	AdminUserID       uuid.UUID `gorm:"column:admin_user_id;primaryKey;type:uuid" json:"admin_user_id"`
	AdminUserName     string    `gorm:"column:admin_user_name;type:varchar(100);not null" json:"admin_user_name"`
	AdminUserEmail    string    `gorm:"column:admin_user_email;type:varchar(255);uniqueIndex;not null" json:"admin_user_email"`
	AdminUserPassword string    `gorm:"column:admin_user_password;type:varchar(255);not null" json:"-"`
	AdminUserRole     string    `gorm:"column:admin_user_role;type:varchar(20);not null;default:'admin'" json:"admin_user_role"`

	AdminUserCreatedAt time.Time `gorm:"column:admin_user_created_at;autoCreateTime" json:"admin_user_created_at"`
	AdminUserUpdatedAt time.Time `gorm:"column:admin_user_updated_at;autoUpdateTime" json:"admin_user_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}

func (m *AdminUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminUserID == uuid.Nil {
		m.AdminUserID = uuid.New()
	}
	return nil
}
