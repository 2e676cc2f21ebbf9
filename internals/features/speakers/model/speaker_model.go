package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpeakerModel struct {
	SpeakerID          uuid.UUID `gorm:"column:speaker_id;primaryKey;type:uuid" json:"speaker_id"`
	SpeakerName        string    `gorm:"column:speaker_name;type:varchar(200);not null" json:"speaker_name"`
	SpeakerDesignation string    `gorm:"column:speaker_designation;type:varchar(300);not null" json:"speaker_designation"`

	// AIIMS faculty vs. external guest speaker
	SpeakerIsAiims bool `gorm:"column:speaker_is_aiims;not null;default:true" json:"speaker_is_aiims"`

	SpeakerCreatedAt time.Time `gorm:"column:speaker_created_at;autoCreateTime" json:"speaker_created_at"`
	SpeakerUpdatedAt time.Time `gorm:"column:speaker_updated_at;autoUpdateTime" json:"speaker_updated_at"`
}

func (SpeakerModel) TableName() string {
	return "speakers"
}

func (m *SpeakerModel) BeforeCreate(tx *gorm.DB) error {
	if m.SpeakerID == uuid.Nil {
		m.SpeakerID = uuid.New()
	}
	return nil
}
