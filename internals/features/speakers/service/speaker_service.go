package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	"github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

type SpeakerService struct {
	DB *gorm.DB
}

func NewSpeakerService(db *gorm.DB) *SpeakerService {
	return &SpeakerService{DB: db}
}

func (s *SpeakerService) Create(req dto.CreateSpeakerRequest) (model.SpeakerModel, error) {
	speaker := req.ToModel()
	if err := s.DB.Create(&speaker).Error; err != nil {
		return model.SpeakerModel{}, err
	}
	return speaker, nil
}

func (s *SpeakerService) Update(speakerID uuid.UUID, req dto.UpdateSpeakerRequest) (model.SpeakerModel, error) {
	speaker, err := s.Get(speakerID)
	if err != nil {
		return model.SpeakerModel{}, err
	}

	if req.Name != nil {
		speaker.SpeakerName = *req.Name
	}
	if req.Designation != nil {
		speaker.SpeakerDesignation = *req.Designation
	}
	if req.IsAiims != nil {
		speaker.SpeakerIsAiims = *req.IsAiims
	}

	if err := s.DB.Save(&speaker).Error; err != nil {
		return model.SpeakerModel{}, err
	}
	return speaker, nil
}

func (s *SpeakerService) Get(speakerID uuid.UUID) (model.SpeakerModel, error) {
	var speaker model.SpeakerModel
	if err := s.DB.First(&speaker, "speaker_id = ?", speakerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SpeakerModel{}, helper.NewNotFoundError(fmt.Sprintf("Speaker with id %s not found", speakerID))
		}
		return model.SpeakerModel{}, err
	}
	return speaker, nil
}

func (s *SpeakerService) List() ([]model.SpeakerModel, error) {
	var speakers []model.SpeakerModel
	if err := s.DB.Order("speaker_name").Find(&speakers).Error; err != nil {
		return nil, err
	}
	return speakers, nil
}

// Usage counts the sessions referencing the speaker.
func (s *SpeakerService) Usage(speakerID uuid.UUID) (int64, error) {
	var count int64
	err := s.DB.Model(&sessionModel.SessionModel{}).
		Where("session_speaker_id = ?", speakerID).
		Count(&count).Error
	return count, err
}

// Delete removes a speaker. Speakers are not substitutable, so there is no
// replacement mechanism: any referencing session blocks the delete.
func (s *SpeakerService) Delete(speakerID uuid.UUID) error {
	speaker, err := s.Get(speakerID)
	if err != nil {
		return err
	}

	count, err := s.Usage(speakerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return helper.NewConflictError(fmt.Sprintf("Cannot delete speaker. Associated with %d session(s)", count))
	}

	return s.DB.Delete(&speaker).Error
}
