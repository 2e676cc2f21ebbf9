package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
)

// =========================
// Request DTOs
// =========================

type CreateSpeakerRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Designation string `json:"designation" validate:"required,max=300"`
	IsAiims     *bool  `json:"is_aiims"`
}

type UpdateSpeakerRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Designation *string `json:"designation" validate:"omitempty,max=300"`
	IsAiims     *bool   `json:"is_aiims"`
}

// =========================
// Response DTO
// =========================

type SpeakerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	IsAiims     bool      `json:"is_aiims"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r CreateSpeakerRequest) ToModel() model.SpeakerModel {
	isAiims := true
	if r.IsAiims != nil {
		isAiims = *r.IsAiims
	}
	return model.SpeakerModel{
		SpeakerName:        r.Name,
		SpeakerDesignation: r.Designation,
		SpeakerIsAiims:     isAiims,
	}
}

func ToSpeakerResponse(m model.SpeakerModel) SpeakerResponse {
	return SpeakerResponse{
		ID:          m.SpeakerID,
		Name:        m.SpeakerName,
		Designation: m.SpeakerDesignation,
		IsAiims:     m.SpeakerIsAiims,
		CreatedAt:   m.SpeakerCreatedAt,
		UpdatedAt:   m.SpeakerUpdatedAt,
	}
}

func ToSpeakerResponses(models []model.SpeakerModel) []SpeakerResponse {
	out := make([]SpeakerResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToSpeakerResponse(m))
	}
	return out
}
