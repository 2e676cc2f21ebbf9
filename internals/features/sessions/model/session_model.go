package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCompleted = "completed"
)

type SessionModel struct {
	SessionID         uuid.UUID                   `gorm:"column:session_id;primaryKey;type:uuid" json:"session_id"`
	SessionTitle      string                      `gorm:"column:session_title;type:varchar(300);not null" json:"session_title"`
	SessionSummary    string                      `gorm:"column:session_summary;type:text;not null" json:"session_summary"`
	SessionAbstract   string                      `gorm:"column:session_abstract;type:text;not null" json:"session_abstract"`
	SessionObjectives datatypes.JSONSlice[string] `gorm:"column:session_objectives" json:"session_objectives"`

	// Schedule. Time is kept as zero-padded "HH:MM" so (date,time) ordering
	// works directly in SQL.
	SessionDate            datatypes.Date `gorm:"column:session_date;not null" json:"session_date"`
	SessionTime            string         `gorm:"column:session_time;type:varchar(8);not null" json:"session_time"`
	SessionDurationMinutes int            `gorm:"column:session_duration_minutes;not null" json:"session_duration_minutes"`

	SessionStatus string `gorm:"column:session_status;type:varchar(20);not null;default:'draft'" json:"session_status"`

	SessionPlatform        string  `gorm:"column:session_platform;type:varchar(100);not null" json:"session_platform"`
	SessionMeetingLink     *string `gorm:"column:session_meeting_link;type:varchar(500)" json:"session_meeting_link"`
	SessionMeetingID       *string `gorm:"column:session_meeting_id;type:varchar(100)" json:"session_meeting_id"`
	SessionMeetingPassword *string `gorm:"column:session_meeting_password;type:varchar(100)" json:"session_meeting_password"`

	// References. Tag slots always hold a tag of the matching category at
	// write time; a later deactivation of the tag is not re-validated.
	SessionSpeakerID  uuid.UUID `gorm:"column:session_speaker_id;type:uuid;not null" json:"session_speaker_id"`
	SessionOrganTagID uuid.UUID `gorm:"column:session_organ_tag_id;type:uuid;not null" json:"session_organ_tag_id"`
	SessionTypeTagID  uuid.UUID `gorm:"column:session_type_tag_id;type:uuid;not null" json:"session_type_tag_id"`
	SessionLevelTagID uuid.UUID `gorm:"column:session_level_tag_id;type:uuid;not null" json:"session_level_tag_id"`
	SessionCreatedBy  uuid.UUID `gorm:"column:session_created_by;type:uuid;not null" json:"session_created_by"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (m *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	return nil
}
