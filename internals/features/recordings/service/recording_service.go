package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/recordings/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerDTO "github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	speakerModel "github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// Ordered: watch URLs first, then short links, then embeds.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]+)`),
}

// ExtractYoutubeThumbnail derives the max-resolution thumbnail URL from a
// YouTube watch, short or embed link. Unrecognized URLs yield nil; the
// recording is stored without a thumbnail rather than rejected.
func ExtractYoutubeThumbnail(youtubeURL string) *string {
	for _, re := range youtubeIDPatterns {
		if m := re.FindStringSubmatch(youtubeURL); m != nil {
			url := fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", m[1])
			return &url
		}
	}
	return nil
}

type RecordingService struct {
	DB *gorm.DB

	// Now backs the recorded-date default; nil means time.Now.
	Now func() time.Time
}

func NewRecordingService(db *gorm.DB) *RecordingService {
	return &RecordingService{DB: db}
}

func (s *RecordingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Add creates the recording for a session. A non-nil tx makes the insert part
// of the caller's transaction (session completion uses this).
func (s *RecordingService) Add(tx *gorm.DB, req dto.CreateRecordingRequest) (model.RecordingModel, error) {
	db := tx
	if db == nil {
		db = s.DB
	}

	var session sessionModel.SessionModel
	if err := db.First(&session, "session_id = ?", req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RecordingModel{}, helper.NewNotFoundError(fmt.Sprintf("Session with id %s not found", req.SessionID))
		}
		return model.RecordingModel{}, err
	}

	var count int64
	if err := db.Model(&model.RecordingModel{}).
		Where("recording_session_id = ?", req.SessionID).
		Count(&count).Error; err != nil {
		return model.RecordingModel{}, err
	}
	if count > 0 {
		return model.RecordingModel{}, helper.NewConflictError(fmt.Sprintf("Recording already exists for session %s", req.SessionID))
	}

	recordedDate := helper.DateOnly(s.now())
	if req.RecordedDate != nil {
		parsed, err := helper.ParseDate(*req.RecordedDate)
		if err != nil {
			return model.RecordingModel{}, helper.NewValidationError("Invalid recorded date format")
		}
		recordedDate = parsed
	}

	recording := model.RecordingModel{
		RecordingSessionID:    req.SessionID,
		RecordingYoutubeURL:   req.YoutubeURL,
		RecordingThumbnailURL: ExtractYoutubeThumbnail(req.YoutubeURL),
		RecordingPDFURL:       req.PDFURL,
		RecordingRecordedDate: recordedDate,
	}
	if err := db.Create(&recording).Error; err != nil {
		return model.RecordingModel{}, err
	}
	return recording, nil
}

// Update re-derives the thumbnail whenever the video URL changes.
func (s *RecordingService) Update(recordingID uuid.UUID, req dto.UpdateRecordingRequest) (model.RecordingModel, error) {
	recording, err := s.getByID(recordingID)
	if err != nil {
		return model.RecordingModel{}, err
	}

	if req.YoutubeURL != nil {
		recording.RecordingYoutubeURL = *req.YoutubeURL
		recording.RecordingThumbnailURL = ExtractYoutubeThumbnail(*req.YoutubeURL)
	}
	if req.PDFURL != nil {
		recording.RecordingPDFURL = req.PDFURL
	}
	if req.RecordedDate != nil {
		parsed, err := helper.ParseDate(*req.RecordedDate)
		if err != nil {
			return model.RecordingModel{}, helper.NewValidationError("Invalid recorded date format")
		}
		recording.RecordingRecordedDate = parsed
	}

	if err := s.DB.Save(&recording).Error; err != nil {
		return model.RecordingModel{}, err
	}
	return recording, nil
}

// Delete removes the recording and demotes a completed owning session back to
// published, atomically. Without its recording a session is no longer
// "completed" in any meaningful sense.
func (s *RecordingService) Delete(recordingID uuid.UUID) error {
	recording, err := s.getByID(recordingID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var session sessionModel.SessionModel
		err := tx.First(&session, "session_id = ?", recording.RecordingSessionID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil && session.SessionStatus == sessionModel.StatusCompleted {
			session.SessionStatus = sessionModel.StatusPublished
			if err := tx.Save(&session).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&recording).Error
	})
}

func (s *RecordingService) getByID(recordingID uuid.UUID) (model.RecordingModel, error) {
	var recording model.RecordingModel
	if err := s.DB.First(&recording, "recording_id = ?", recordingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RecordingModel{}, helper.NewNotFoundError(fmt.Sprintf("Recording with id %s not found", recordingID))
		}
		return model.RecordingModel{}, err
	}
	return recording, nil
}

// GetDetail resolves a public detail view by recording id or, failing that,
// by the owning session id, and counts the view before returning.
func (s *RecordingService) GetDetail(id uuid.UUID) (model.RecordingModel, error) {
	var recording model.RecordingModel
	err := s.DB.First(&recording, "recording_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.DB.First(&recording, "recording_session_id = ?", id).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RecordingModel{}, helper.NewNotFoundError(fmt.Sprintf("Recording with id %s not found", id))
		}
		return model.RecordingModel{}, err
	}

	if err := s.DB.Model(&model.RecordingModel{}).
		Where("recording_id = ?", recording.RecordingID).
		UpdateColumn("recording_views_count", gorm.Expr("recording_views_count + 1")).Error; err != nil {
		return model.RecordingModel{}, err
	}
	recording.RecordingViewsCount++
	return recording, nil
}

// List pages recordings joined to their sessions so tag filters and search
// terms apply to the owning session's fields.
func (s *RecordingService) List(f dto.RecordingFilters, pg *helper.Paging) ([]model.RecordingModel, int64, error) {
	q := s.DB.Model(&model.RecordingModel{}).
		Joins("JOIN sessions ON sessions.session_id = recordings.recording_session_id")

	if f.OrganTagID != nil {
		q = q.Where("sessions.session_organ_tag_id = ?", *f.OrganTagID)
	}
	if f.TypeTagID != nil {
		q = q.Where("sessions.session_type_tag_id = ?", *f.TypeTagID)
	}
	if f.LevelTagID != nil {
		q = q.Where("sessions.session_level_tag_id = ?", *f.LevelTagID)
	}
	searching := strings.TrimSpace(f.Search) != ""
	if searching {
		// Same text columns as the session search; the tag join can
		// produce one row per matching slot, hence the DISTINCT below.
		pattern := "%" + strings.ToLower(strings.TrimSpace(f.Search)) + "%"
		q = q.
			Joins("LEFT JOIN speakers ON speakers.speaker_id = sessions.session_speaker_id").
			Joins("LEFT JOIN tags ON tags.tag_id IN (sessions.session_organ_tag_id, sessions.session_type_tag_id, sessions.session_level_tag_id)").
			Where(`LOWER(sessions.session_title) LIKE ?
				OR LOWER(sessions.session_summary) LIKE ?
				OR LOWER(sessions.session_abstract) LIKE ?
				OR LOWER(speakers.speaker_name) LIKE ?
				OR LOWER(tags.tag_label) LIKE ?`,
				pattern, pattern, pattern, pattern, pattern)
	}

	countQ := q.Session(&gorm.Session{})
	if searching {
		countQ = countQ.Distinct("recordings.recording_id")
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rowsQ := q.Session(&gorm.Session{})
	if searching {
		rowsQ = rowsQ.Distinct("recordings.*")
	}
	switch f.Sort {
	case dto.SortViews:
		rowsQ = rowsQ.Order("recordings.recording_views_count DESC")
	default:
		rowsQ = rowsQ.Order("recordings.recording_recorded_date DESC")
	}
	rowsQ = rowsQ.Order("recordings.recording_created_at DESC")
	if pg != nil {
		rowsQ = rowsQ.Limit(pg.Limit).Offset(pg.Offset)
	}

	var recordings []model.RecordingModel
	if err := rowsQ.Find(&recordings).Error; err != nil {
		return nil, 0, err
	}
	return recordings, total, nil
}

// Expand nests each recording's owning session (with its speaker) into the
// response, using batched lookups.
func (s *RecordingService) Expand(recordings []model.RecordingModel) ([]dto.RecordingResponse, error) {
	sessionIDs := make([]uuid.UUID, 0, len(recordings))
	for _, m := range recordings {
		sessionIDs = append(sessionIDs, m.RecordingSessionID)
	}

	sessions := make(map[uuid.UUID]sessionModel.SessionModel)
	speakers := make(map[uuid.UUID]speakerModel.SpeakerModel)
	if len(sessionIDs) > 0 {
		var sessionRows []sessionModel.SessionModel
		if err := s.DB.Where("session_id IN ?", sessionIDs).Find(&sessionRows).Error; err != nil {
			return nil, err
		}
		speakerIDs := make([]uuid.UUID, 0, len(sessionRows))
		for _, row := range sessionRows {
			sessions[row.SessionID] = row
			speakerIDs = append(speakerIDs, row.SessionSpeakerID)
		}
		if len(speakerIDs) > 0 {
			var speakerRows []speakerModel.SpeakerModel
			if err := s.DB.Where("speaker_id IN ?", speakerIDs).Find(&speakerRows).Error; err != nil {
				return nil, err
			}
			for _, row := range speakerRows {
				speakers[row.SpeakerID] = row
			}
		}
	}

	out := make([]dto.RecordingResponse, 0, len(recordings))
	for _, m := range recordings {
		resp := dto.ToRecordingResponse(m)
		if session, ok := sessions[m.RecordingSessionID]; ok {
			var speaker *speakerDTO.SpeakerResponse
			if row, ok := speakers[session.SessionSpeakerID]; ok {
				sp := speakerDTO.ToSpeakerResponse(row)
				speaker = &sp
			}
			resp.Session = dto.ToSessionSummary(session, speaker)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *RecordingService) ExpandOne(recording model.RecordingModel) (dto.RecordingResponse, error) {
	expanded, err := s.Expand([]model.RecordingModel{recording})
	if err != nil {
		return dto.RecordingResponse{}, err
	}
	return expanded[0], nil
}
