package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	"github.com/prabhatlnct2008/digipath/internals/features/tags/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/tags/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// slotColumns maps a tag category to the session column that can hold it.
var slotColumns = map[string]string{
	model.CategoryOrgan: "session_organ_tag_id",
	model.CategoryType:  "session_type_tag_id",
	model.CategoryLevel: "session_level_tag_id",
}

type TagService struct {
	DB *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{DB: db}
}

func (s *TagService) Create(req dto.CreateTagRequest) (model.TagModel, error) {
	var existing model.TagModel
	err := s.DB.Where("tag_category = ? AND tag_label = ?", req.Category, req.Label).First(&existing).Error
	if err == nil {
		return model.TagModel{}, helper.NewConflictError(
			fmt.Sprintf("Tag with category '%s' and label '%s' already exists", req.Category, req.Label))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.TagModel{}, err
	}

	tag := req.ToModel()
	if err := s.DB.Create(&tag).Error; err != nil {
		return model.TagModel{}, err
	}
	return tag, nil
}

func (s *TagService) Update(tagID uuid.UUID, req dto.UpdateTagRequest) (model.TagModel, error) {
	tag, err := s.Get(tagID)
	if err != nil {
		return model.TagModel{}, err
	}

	if req.Label != nil && *req.Label != tag.TagLabel {
		var existing model.TagModel
		err := s.DB.Where("tag_category = ? AND tag_label = ?", tag.TagCategory, *req.Label).First(&existing).Error
		if err == nil {
			return model.TagModel{}, helper.NewConflictError(
				fmt.Sprintf("Tag with category '%s' and label '%s' already exists", tag.TagCategory, *req.Label))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return model.TagModel{}, err
		}
		tag.TagLabel = *req.Label
	}
	if req.IsActive != nil {
		tag.TagIsActive = *req.IsActive
	}

	if err := s.DB.Save(&tag).Error; err != nil {
		return model.TagModel{}, err
	}
	return tag, nil
}

func (s *TagService) Get(tagID uuid.UUID) (model.TagModel, error) {
	var tag model.TagModel
	if err := s.DB.First(&tag, "tag_id = ?", tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.TagModel{}, helper.NewNotFoundError(fmt.Sprintf("Tag with id %s not found", tagID))
		}
		return model.TagModel{}, err
	}
	return tag, nil
}

func (s *TagService) List(category string, activeOnly bool) ([]model.TagModel, error) {
	q := s.DB.Model(&model.TagModel{})
	if category != "" {
		q = q.Where("tag_category = ?", category)
	}
	if activeOnly {
		q = q.Where("tag_is_active = ?", true)
	}

	var tags []model.TagModel
	if err := q.Order("tag_category").Order("tag_label").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListGrouped returns all active tags keyed by category.
func (s *TagService) ListGrouped() (map[string][]model.TagModel, error) {
	tags, err := s.List("", true)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.TagModel, len(model.Categories))
	for _, category := range model.Categories {
		grouped[category] = []model.TagModel{}
	}
	for _, tag := range tags {
		grouped[tag.TagCategory] = append(grouped[tag.TagCategory], tag)
	}
	return grouped, nil
}

// Usage counts sessions holding the tag in any of the three slot columns.
func (s *TagService) Usage(tagID uuid.UUID) (dto.TagUsageResponse, error) {
	tag, err := s.Get(tagID)
	if err != nil {
		return dto.TagUsageResponse{}, err
	}

	var count int64
	err = s.DB.Model(&sessionModel.SessionModel{}).
		Where("session_organ_tag_id = ? OR session_type_tag_id = ? OR session_level_tag_id = ?", tagID, tagID, tagID).
		Count(&count).Error
	if err != nil {
		return dto.TagUsageResponse{}, err
	}

	return dto.TagUsageResponse{
		TagID:      tag.TagID,
		Category:   tag.TagCategory,
		Label:      tag.TagLabel,
		UsageCount: count,
		CanDelete:  count == 0,
	}, nil
}

// Delete removes a tag. An in-use tag can only go away together with a
// replacement: every referencing session is rewritten to the replacement in
// the same transaction that deletes the tag, so the store never holds a
// dangling reference.
func (s *TagService) Delete(tagID uuid.UUID, replacementTagID *uuid.UUID) error {
	tag, err := s.Get(tagID)
	if err != nil {
		return err
	}

	usage, err := s.Usage(tagID)
	if err != nil {
		return err
	}

	if usage.UsageCount > 0 && replacementTagID == nil {
		return helper.NewConflictError(
			fmt.Sprintf("Cannot delete tag. Associated with %d session(s)", usage.UsageCount))
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if replacementTagID != nil {
			var replacement model.TagModel
			if err := tx.First(&replacement, "tag_id = ?", *replacementTagID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.NewValidationError("Replacement tag not found")
				}
				return err
			}
			if replacement.TagCategory != tag.TagCategory {
				return helper.NewValidationError("Replacement tag must belong to the same category")
			}
			if !replacement.TagIsActive {
				return helper.NewValidationError("Replacement tag must be active")
			}

			column := slotColumns[tag.TagCategory]
			if err := tx.Model(&sessionModel.SessionModel{}).
				Where(column+" = ?", tagID).
				Update(column, replacement.TagID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&tag).Error
	})
}
