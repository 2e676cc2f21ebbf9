package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	recordingModel "github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerDTO "github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	tagDTO "github.com/prabhatlnct2008/digipath/internals/features/tags/dto"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// =========================
// Request DTOs
// =========================

type CreateSessionRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=300"`
	Summary         string   `json:"summary" validate:"required"`
	Abstract        string   `json:"abstract" validate:"required"`
	Objectives      []string `json:"objectives"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string   `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,gt=0"`
	Platform        string   `json:"platform" validate:"required,max=100"`
	MeetingLink     *string  `json:"meeting_link" validate:"omitempty,max=500"`
	MeetingID       *string  `json:"meeting_id" validate:"omitempty,max=100"`
	MeetingPassword *string  `json:"meeting_password" validate:"omitempty,max=100"`

	SpeakerID  uuid.UUID `json:"speaker_id" validate:"required"`
	OrganTagID uuid.UUID `json:"organ_tag_id" validate:"required"`
	TypeTagID  uuid.UUID `json:"type_tag_id" validate:"required"`
	LevelTagID uuid.UUID `json:"level_tag_id" validate:"required"`
}

// UpdateSessionRequest is a patch: nil means "leave the field alone".
type UpdateSessionRequest struct {
	Title           *string   `json:"title" validate:"omitempty,min=3,max=300"`
	Summary         *string   `json:"summary"`
	Abstract        *string   `json:"abstract"`
	Objectives      *[]string `json:"objectives"`
	Date            *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            *string   `json:"time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,gt=0"`
	Platform        *string   `json:"platform" validate:"omitempty,max=100"`
	MeetingLink     *string   `json:"meeting_link" validate:"omitempty,max=500"`
	MeetingID       *string   `json:"meeting_id" validate:"omitempty,max=100"`
	MeetingPassword *string   `json:"meeting_password" validate:"omitempty,max=100"`

	SpeakerID  *uuid.UUID `json:"speaker_id"`
	OrganTagID *uuid.UUID `json:"organ_tag_id"`
	TypeTagID  *uuid.UUID `json:"type_tag_id"`
	LevelTagID *uuid.UUID `json:"level_tag_id"`
}

type CompleteSessionRequest struct {
	YoutubeURL string  `json:"youtube_url" validate:"required,url"`
	PDFURL     *string `json:"pdf_url" validate:"omitempty,url"`
}

// SessionFilters carries the optional list criteria; nil/empty means "no
// filter on this attribute".
type SessionFilters struct {
	Status     string
	Search     string
	SpeakerID  *uuid.UUID
	OrganTagID *uuid.UUID
	TypeTagID  *uuid.UUID
	LevelTagID *uuid.UUID
}

// =========================
// Response DTOs
// =========================

type SessionResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	Abstract        string    `json:"abstract"`
	Objectives      []string  `json:"objectives"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Platform        string    `json:"platform"`
	MeetingLink     *string   `json:"meeting_link"`
	MeetingID       *string   `json:"meeting_id"`
	MeetingPassword *string   `json:"meeting_password"`

	SpeakerID  uuid.UUID `json:"speaker_id"`
	OrganTagID uuid.UUID `json:"organ_tag_id"`
	TypeTagID  uuid.UUID `json:"type_tag_id"`
	LevelTagID uuid.UUID `json:"level_tag_id"`
	CreatedBy  uuid.UUID `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Expanded references, resolved by explicit lookups.
	Speaker      *speakerDTO.SpeakerResponse `json:"speaker"`
	OrganTag     *tagDTO.TagResponse         `json:"organ_tag"`
	TypeTag      *tagDTO.TagResponse         `json:"type_tag"`
	LevelTag     *tagDTO.TagResponse         `json:"level_tag"`
	Recording    *RecordingSummary           `json:"recording,omitempty"`
	HasRecording bool                        `json:"has_recording"`
}

// RecordingSummary is the recording block nested in a session response.
type RecordingSummary struct {
	ID           uuid.UUID `json:"id"`
	YoutubeURL   string    `json:"youtube_url"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	PDFURL       *string   `json:"pdf_url"`
	RecordedDate string    `json:"recorded_date"`
	ViewsCount   int       `json:"views_count"`
}

func (r CreateSessionRequest) ToModel(adminID uuid.UUID) (model.SessionModel, error) {
	date, err := helper.ParseDate(r.Date)
	if err != nil {
		return model.SessionModel{}, err
	}
	return model.SessionModel{
		SessionTitle:           r.Title,
		SessionSummary:         r.Summary,
		SessionAbstract:        r.Abstract,
		SessionObjectives:      datatypes.NewJSONSlice(r.Objectives),
		SessionDate:            date,
		SessionTime:            r.Time,
		SessionDurationMinutes: r.DurationMinutes,
		SessionStatus:          model.StatusDraft,
		SessionPlatform:        r.Platform,
		SessionMeetingLink:     r.MeetingLink,
		SessionMeetingID:       r.MeetingID,
		SessionMeetingPassword: r.MeetingPassword,
		SessionSpeakerID:       r.SpeakerID,
		SessionOrganTagID:      r.OrganTagID,
		SessionTypeTagID:       r.TypeTagID,
		SessionLevelTagID:      r.LevelTagID,
		SessionCreatedBy:       adminID,
	}, nil
}

func ToSessionResponse(m model.SessionModel) SessionResponse {
	return SessionResponse{
		ID:              m.SessionID,
		Title:           m.SessionTitle,
		Summary:         m.SessionSummary,
		Abstract:        m.SessionAbstract,
		Objectives:      []string(m.SessionObjectives),
		Date:            helper.FormatDate(m.SessionDate),
		Time:            m.SessionTime,
		DurationMinutes: m.SessionDurationMinutes,
		Status:          m.SessionStatus,
		Platform:        m.SessionPlatform,
		MeetingLink:     m.SessionMeetingLink,
		MeetingID:       m.SessionMeetingID,
		MeetingPassword: m.SessionMeetingPassword,
		SpeakerID:       m.SessionSpeakerID,
		OrganTagID:      m.SessionOrganTagID,
		TypeTagID:       m.SessionTypeTagID,
		LevelTagID:      m.SessionLevelTagID,
		CreatedBy:       m.SessionCreatedBy,
		CreatedAt:       m.SessionCreatedAt,
		UpdatedAt:       m.SessionUpdatedAt,
	}
}

func ToRecordingSummary(m recordingModel.RecordingModel) *RecordingSummary {
	return &RecordingSummary{
		ID:           m.RecordingID,
		YoutubeURL:   m.RecordingYoutubeURL,
		VideoURL:     m.RecordingYoutubeURL,
		ThumbnailURL: m.RecordingThumbnailURL,
		PDFURL:       m.RecordingPDFURL,
		RecordedDate: helper.FormatDate(m.RecordingRecordedDate),
		ViewsCount:   m.RecordingViewsCount,
	}
}
