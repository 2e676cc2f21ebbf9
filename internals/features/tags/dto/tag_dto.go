package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/prabhatlnct2008/digipath/internals/features/tags/model"
)

// =========================
// Request DTOs
// =========================

type CreateTagRequest struct {
	Category string `json:"category" validate:"required,oneof=organ type level"`
	Label    string `json:"label" validate:"required,min=1,max=100"`
	IsActive *bool  `json:"is_active"`
}

// UpdateTagRequest deliberately has no category field: the category of a tag
// is immutable after creation.
type UpdateTagRequest struct {
	Label    *string `json:"label" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

type DeleteTagRequest struct {
	ReplacementTagID *uuid.UUID `json:"replacement_tag_id"`
}

// =========================
// Response DTOs
// =========================

type TagResponse struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Label    string    `json:"label"`
	// Alias retained for frontend compatibility.
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TagUsageResponse struct {
	TagID      uuid.UUID `json:"tag_id"`
	Category   string    `json:"category"`
	Label      string    `json:"label"`
	UsageCount int64     `json:"usage_count"`
	CanDelete  bool      `json:"can_delete"`
}

func (r CreateTagRequest) ToModel() model.TagModel {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return model.TagModel{
		TagCategory: r.Category,
		TagLabel:    r.Label,
		TagIsActive: isActive,
	}
}

func ToTagResponse(m model.TagModel) TagResponse {
	return TagResponse{
		ID:        m.TagID,
		Category:  m.TagCategory,
		Label:     m.TagLabel,
		Name:      m.TagLabel,
		IsActive:  m.TagIsActive,
		CreatedAt: m.TagCreatedAt,
		UpdatedAt: m.TagUpdatedAt,
	}
}

func ToTagResponses(models []model.TagModel) []TagResponse {
	out := make([]TagResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToTagResponse(m))
	}
	return out
}
