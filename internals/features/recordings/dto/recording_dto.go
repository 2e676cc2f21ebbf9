package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerDTO "github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

const (
	SortRecent = "recent"
	SortViews  = "views"
)

// =========================
// Request DTOs
// =========================

type CreateRecordingRequest struct {
	SessionID    uuid.UUID `json:"session_id" validate:"required"`
	YoutubeURL   string    `json:"youtube_url" validate:"required,url"`
	PDFURL       *string   `json:"pdf_url" validate:"omitempty,url"`
	RecordedDate *string   `json:"recorded_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateRecordingRequest struct {
	YoutubeURL   *string `json:"youtube_url" validate:"omitempty,url"`
	PDFURL       *string `json:"pdf_url" validate:"omitempty,url"`
	RecordedDate *string `json:"recorded_date" validate:"omitempty,datetime=2006-01-02"`
}

type RecordingFilters struct {
	Search     string
	Sort       string // recent | views
	OrganTagID *uuid.UUID
	TypeTagID  *uuid.UUID
	LevelTagID *uuid.UUID
}

// =========================
// Response DTOs
// =========================

type RecordingResponse struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	YoutubeURL string    `json:"youtube_url"`
	// Alias retained for frontend compatibility.
	VideoURL     string  `json:"video_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	PDFURL       *string `json:"pdf_url"`
	RecordedDate string  `json:"recorded_date"`
	ViewsCount   int     `json:"views_count"`
	Views        int     `json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Session *SessionSummary `json:"session,omitempty"`
}

// SessionSummary is the owning-session block nested in a recording response.
type SessionSummary struct {
	ID              uuid.UUID                   `json:"id"`
	Title           string                      `json:"title"`
	Summary         string                      `json:"summary"`
	Date            string                      `json:"date"`
	Time            string                      `json:"time"`
	DurationMinutes int                         `json:"duration_minutes"`
	Status          string                      `json:"status"`
	Speaker         *speakerDTO.SpeakerResponse `json:"speaker"`
}

func ToRecordingResponse(m model.RecordingModel) RecordingResponse {
	return RecordingResponse{
		ID:           m.RecordingID,
		SessionID:    m.RecordingSessionID,
		YoutubeURL:   m.RecordingYoutubeURL,
		VideoURL:     m.RecordingYoutubeURL,
		ThumbnailURL: m.RecordingThumbnailURL,
		PDFURL:       m.RecordingPDFURL,
		RecordedDate: helper.FormatDate(m.RecordingRecordedDate),
		ViewsCount:   m.RecordingViewsCount,
		Views:        m.RecordingViewsCount,
		CreatedAt:    m.RecordingCreatedAt,
		UpdatedAt:    m.RecordingUpdatedAt,
	}
}

func ToSessionSummary(m sessionModel.SessionModel, speaker *speakerDTO.SpeakerResponse) *SessionSummary {
	return &SessionSummary{
		ID:              m.SessionID,
		Title:           m.SessionTitle,
		Summary:         m.SessionSummary,
		Date:            helper.FormatDate(m.SessionDate),
		Time:            m.SessionTime,
		DurationMinutes: m.SessionDurationMinutes,
		Status:          m.SessionStatus,
		Speaker:         speaker,
	}
}
