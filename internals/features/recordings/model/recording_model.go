package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecordingModel struct {
	RecordingID uuid.UUID `gorm:"column:recording_id;primaryKey;type:uuid" json:"recording_id"`

	// Unique session FK enforces the one-recording-per-session rule.
	RecordingSessionID uuid.UUID `gorm:"column:recording_session_id;type:uuid;uniqueIndex;not null" json:"recording_session_id"`

	RecordingYoutubeURL   string  `gorm:"column:recording_youtube_url;type:varchar(500);not null" json:"recording_youtube_url"`
	RecordingThumbnailURL *string `gorm:"column:recording_thumbnail_url;type:varchar(500)" json:"recording_thumbnail_url"`
	RecordingPDFURL       *string `gorm:"column:recording_pdf_url;type:varchar(500)" json:"recording_pdf_url"`

	RecordingRecordedDate datatypes.Date `gorm:"column:recording_recorded_date;not null" json:"recording_recorded_date"`
	RecordingViewsCount   int            `gorm:"column:recording_views_count;not null;default:0" json:"recording_views_count"`

	RecordingCreatedAt time.Time `gorm:"column:recording_created_at;autoCreateTime" json:"recording_created_at"`
	RecordingUpdatedAt time.Time `gorm:"column:recording_updated_at;autoUpdateTime" json:"recording_updated_at"`
}

func (RecordingModel) TableName() string {
	return "recordings"
}

func (m *RecordingModel) BeforeCreate(tx *gorm.DB) error {
	if m.RecordingID == uuid.Nil {
		m.RecordingID = uuid.New()
	}
	return nil
}
