package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryOrgan = "organ"
	CategoryType  = "type"
	CategoryLevel = "level"
)

// Categories lists the valid tag categories in display order.
var Categories = []string{CategoryOrgan, CategoryType, CategoryLevel}

func IsValidCategory(category string) bool {
	switch category {
	case CategoryOrgan, CategoryType, CategoryLevel:
		return true
	}
	return false
}

type TagModel struct {
	TagID uuid.UUID `gorm:"column:tag_id;primaryKey;type:uuid" json:"tag_id"`

	// Category is immutable after creation; (category,label) is unique.
	TagCategory string `gorm:"column:tag_category;type:varchar(20);not null;uniqueIndex:uq_tag_category_label" json:"tag_category"`
	TagLabel    string `gorm:"column:tag_label;type:varchar(100);not null;uniqueIndex:uq_tag_category_label" json:"tag_label"`
	TagIsActive bool   `gorm:"column:tag_is_active;not null;default:true" json:"tag_is_active"`

	TagCreatedAt time.Time `gorm:"column:tag_created_at;autoCreateTime" json:"tag_created_at"`
	TagUpdatedAt time.Time `gorm:"column:tag_updated_at;autoUpdateTime" json:"tag_updated_at"`
}

func (TagModel) TableName() string {
	return "tags"
}

func (m *TagModel) BeforeCreate(tx *gorm.DB) error {
	if m.TagID == uuid.Nil {
		m.TagID = uuid.New()
	}
	return nil
}
