package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	recordingDTO "github.com/prabhatlnct2008/digipath/internals/features/recordings/dto"
	recordingModel "github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	recordingService "github.com/prabhatlnct2008/digipath/internals/features/recordings/service"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerDTO "github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	speakerModel "github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	tagDTO "github.com/prabhatlnct2008/digipath/internals/features/tags/dto"
	tagModel "github.com/prabhatlnct2008/digipath/internals/features/tags/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

type SessionService struct {
	DB         *gorm.DB
	Recordings *recordingService.RecordingService

	// Now is the clock every today-boundary is computed from; nil means
	// time.Now. It is read once per operation so a single query never sees
	// two different instants.
	Now func() time.Time
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{
		DB:         db,
		Recordings: recordingService.NewRecordingService(db),
	}
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionService) today() time.Time {
	return time.Time(helper.DateOnly(s.now()))
}

// ===========================
// Reference validation
// ===========================

func (s *SessionService) validateSpeakerRef(db *gorm.DB, speakerID uuid.UUID) error {
	var speaker speakerModel.SpeakerModel
	if err := db.First(&speaker, "speaker_id = ?", speakerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NewNotFoundError(fmt.Sprintf("Speaker with id %s not found", speakerID))
		}
		return err
	}
	return nil
}

func (s *SessionService) validateTagRef(db *gorm.DB, tagID uuid.UUID, category string) error {
	var tag tagModel.TagModel
	err := db.First(&tag, "tag_id = ?", tagID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err != nil || tag.TagCategory != category || !tag.TagIsActive {
		return helper.NewValidationError(fmt.Sprintf("Invalid or inactive %s tag", category))
	}
	return nil
}

// ===========================
// Lifecycle
// ===========================

func (s *SessionService) Create(req dto.CreateSessionRequest, adminID uuid.UUID) (model.SessionModel, error) {
	if err := s.validateSpeakerRef(s.DB, req.SpeakerID); err != nil {
		return model.SessionModel{}, err
	}
	if err := s.validateTagRef(s.DB, req.OrganTagID, tagModel.CategoryOrgan); err != nil {
		return model.SessionModel{}, err
	}
	if err := s.validateTagRef(s.DB, req.TypeTagID, tagModel.CategoryType); err != nil {
		return model.SessionModel{}, err
	}
	if err := s.validateTagRef(s.DB, req.LevelTagID, tagModel.CategoryLevel); err != nil {
		return model.SessionModel{}, err
	}

	session, err := req.ToModel(adminID)
	if err != nil {
		return model.SessionModel{}, helper.NewValidationError("Invalid date format")
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return model.SessionModel{}, err
	}
	return session, nil
}

// Update merges the patch field-by-field. Reference fields are re-validated
// exactly like at creation; untouched references are trusted from the prior
// state.
func (s *SessionService) Update(sessionID uuid.UUID, req dto.UpdateSessionRequest) (model.SessionModel, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return model.SessionModel{}, err
	}
	if session.SessionStatus == model.StatusCompleted {
		return model.SessionModel{}, helper.NewValidationError("Cannot update completed sessions")
	}

	if req.Title != nil {
		session.SessionTitle = *req.Title
	}
	if req.Summary != nil {
		session.SessionSummary = *req.Summary
	}
	if req.Abstract != nil {
		session.SessionAbstract = *req.Abstract
	}
	if req.Objectives != nil {
		session.SessionObjectives = datatypes.NewJSONSlice(*req.Objectives)
	}
	if req.Date != nil {
		date, err := helper.ParseDate(*req.Date)
		if err != nil {
			return model.SessionModel{}, helper.NewValidationError("Invalid date format")
		}
		session.SessionDate = date
	}
	if req.Time != nil {
		session.SessionTime = *req.Time
	}
	if req.DurationMinutes != nil {
		session.SessionDurationMinutes = *req.DurationMinutes
	}
	if req.Platform != nil {
		session.SessionPlatform = *req.Platform
	}
	if req.MeetingLink != nil {
		session.SessionMeetingLink = req.MeetingLink
	}
	if req.MeetingID != nil {
		session.SessionMeetingID = req.MeetingID
	}
	if req.MeetingPassword != nil {
		session.SessionMeetingPassword = req.MeetingPassword
	}

	if req.SpeakerID != nil {
		if err := s.validateSpeakerRef(s.DB, *req.SpeakerID); err != nil {
			return model.SessionModel{}, err
		}
		session.SessionSpeakerID = *req.SpeakerID
	}
	if req.OrganTagID != nil {
		if err := s.validateTagRef(s.DB, *req.OrganTagID, tagModel.CategoryOrgan); err != nil {
			return model.SessionModel{}, err
		}
		session.SessionOrganTagID = *req.OrganTagID
	}
	if req.TypeTagID != nil {
		if err := s.validateTagRef(s.DB, *req.TypeTagID, tagModel.CategoryType); err != nil {
			return model.SessionModel{}, err
		}
		session.SessionTypeTagID = *req.TypeTagID
	}
	if req.LevelTagID != nil {
		if err := s.validateTagRef(s.DB, *req.LevelTagID, tagModel.CategoryLevel); err != nil {
			return model.SessionModel{}, err
		}
		session.SessionLevelTagID = *req.LevelTagID
	}

	if err := s.DB.Save(&session).Error; err != nil {
		return model.SessionModel{}, err
	}
	return session, nil
}

func (s *SessionService) Get(sessionID uuid.UUID) (model.SessionModel, error) {
	var session model.SessionModel
	if err := s.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.SessionModel{}, helper.NewNotFoundError(fmt.Sprintf("Session with id %s not found", sessionID))
		}
		return model.SessionModel{}, err
	}
	return session, nil
}

// Publish requires a meeting link and a date that has not passed yet.
func (s *SessionService) Publish(sessionID uuid.UUID) (model.SessionModel, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return model.SessionModel{}, err
	}

	if session.SessionMeetingLink == nil || strings.TrimSpace(*session.SessionMeetingLink) == "" {
		return model.SessionModel{}, helper.NewValidationError("Cannot publish session without meeting link")
	}
	if time.Time(session.SessionDate).Before(s.today()) {
		return model.SessionModel{}, helper.NewValidationError("Cannot publish session with past date")
	}

	session.SessionStatus = model.StatusPublished
	if err := s.DB.Save(&session).Error; err != nil {
		return model.SessionModel{}, err
	}
	return session, nil
}

func (s *SessionService) Unpublish(sessionID uuid.UUID) (model.SessionModel, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return model.SessionModel{}, err
	}
	if session.SessionStatus == model.StatusCompleted {
		return model.SessionModel{}, helper.NewValidationError("Cannot unpublish completed sessions")
	}

	session.SessionStatus = model.StatusDraft
	if err := s.DB.Save(&session).Error; err != nil {
		return model.SessionModel{}, err
	}
	return session, nil
}

// Complete attaches a recording and marks the session completed; both happen
// in one transaction or not at all.
func (s *SessionService) Complete(sessionID uuid.UUID, req dto.CompleteSessionRequest) (model.SessionModel, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return model.SessionModel{}, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.Recordings.Add(tx, recordingDTO.CreateRecordingRequest{
			SessionID:  sessionID,
			YoutubeURL: req.YoutubeURL,
			PDFURL:     req.PDFURL,
		})
		if err != nil {
			return err
		}
		session.SessionStatus = model.StatusCompleted
		return tx.Save(&session).Error
	})
	if err != nil {
		return model.SessionModel{}, err
	}
	return session, nil
}

func (s *SessionService) Delete(sessionID uuid.UUID) error {
	session, err := s.Get(sessionID)
	if err != nil {
		return err
	}
	if session.SessionStatus != model.StatusDraft {
		return helper.NewValidationError("Can only delete draft sessions")
	}
	return s.DB.Delete(&session).Error
}

// ===========================
// Listing / search
// ===========================

func (s *SessionService) filtered(f dto.SessionFilters) *gorm.DB {
	q := s.DB.Model(&model.SessionModel{})
	if f.Status != "" {
		q = q.Where("sessions.session_status = ?", f.Status)
	}
	if f.SpeakerID != nil {
		q = q.Where("sessions.session_speaker_id = ?", *f.SpeakerID)
	}
	if f.OrganTagID != nil {
		q = q.Where("sessions.session_organ_tag_id = ?", *f.OrganTagID)
	}
	if f.TypeTagID != nil {
		q = q.Where("sessions.session_type_tag_id = ?", *f.TypeTagID)
	}
	if f.LevelTagID != nil {
		q = q.Where("sessions.session_level_tag_id = ?", *f.LevelTagID)
	}
	if strings.TrimSpace(f.Search) != "" {
		q = applySearch(q, f.Search)
	}
	return q
}

// applySearch joins the speaker and all three tag slots and matches the term
// against any joined text column. Callers must deduplicate (DISTINCT) since
// one session can match through several joined rows.
func applySearch(q *gorm.DB, term string) *gorm.DB {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	return q.
		Joins("LEFT JOIN speakers ON speakers.speaker_id = sessions.session_speaker_id").
		Joins("LEFT JOIN tags ON tags.tag_id IN (sessions.session_organ_tag_id, sessions.session_type_tag_id, sessions.session_level_tag_id)").
		Where(`LOWER(sessions.session_title) LIKE ?
			OR LOWER(sessions.session_summary) LIKE ?
			OR LOWER(sessions.session_abstract) LIKE ?
			OR LOWER(speakers.speaker_name) LIKE ?
			OR LOWER(tags.tag_label) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern)
}

func (s *SessionService) listWithTotal(q *gorm.DB, deduplicate bool, order []string, pg *helper.Paging) ([]model.SessionModel, int64, error) {
	countQ := q.Session(&gorm.Session{})
	if deduplicate {
		countQ = countQ.Distinct("sessions.session_id")
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rowsQ := q.Session(&gorm.Session{})
	if deduplicate {
		rowsQ = rowsQ.Distinct("sessions.*")
	}
	for _, o := range order {
		rowsQ = rowsQ.Order(o)
	}
	if pg != nil {
		rowsQ = rowsQ.Limit(pg.Limit).Offset(pg.Offset)
	}

	var sessions []model.SessionModel
	if err := rowsQ.Find(&sessions).Error; err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

// List is the admin view: every status, newest schedule first.
func (s *SessionService) List(f dto.SessionFilters, pg *helper.Paging) ([]model.SessionModel, int64, error) {
	q := s.filtered(f)
	order := []string{"sessions.session_date DESC", "sessions.session_time DESC"}
	return s.listWithTotal(q, strings.TrimSpace(f.Search) != "", order, pg)
}

// Upcoming lists published sessions scheduled for today or later, soonest
// first. The status filter is forced; any status in f is ignored.
func (s *SessionService) Upcoming(f dto.SessionFilters, pg *helper.Paging) ([]model.SessionModel, int64, error) {
	f.Status = ""
	q := s.filtered(f).
		Where("sessions.session_status = ?", model.StatusPublished).
		Where("sessions.session_date >= ?", s.today())
	order := []string{"sessions.session_date", "sessions.session_time"}
	return s.listWithTotal(q, strings.TrimSpace(f.Search) != "", order, pg)
}

// Past lists sessions whose date is behind the clock, most recent first.
func (s *SessionService) Past(f dto.SessionFilters, pg *helper.Paging) ([]model.SessionModel, int64, error) {
	q := s.filtered(f).Where("sessions.session_date < ?", s.today())
	order := []string{"sessions.session_date DESC", "sessions.session_time DESC"}
	return s.listWithTotal(q, strings.TrimSpace(f.Search) != "", order, pg)
}

// ===========================
// Response expansion
// ===========================

// Expand resolves speaker, tag and recording references for a page of
// sessions with batched lookups (no lazy loading).
func (s *SessionService) Expand(sessions []model.SessionModel) ([]dto.SessionResponse, error) {
	speakerIDs := make([]uuid.UUID, 0, len(sessions))
	tagIDs := make([]uuid.UUID, 0, len(sessions)*3)
	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for _, m := range sessions {
		speakerIDs = append(speakerIDs, m.SessionSpeakerID)
		tagIDs = append(tagIDs, m.SessionOrganTagID, m.SessionTypeTagID, m.SessionLevelTagID)
		sessionIDs = append(sessionIDs, m.SessionID)
	}

	speakers := make(map[uuid.UUID]speakerModel.SpeakerModel)
	if len(speakerIDs) > 0 {
		var rows []speakerModel.SpeakerModel
		if err := s.DB.Where("speaker_id IN ?", speakerIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			speakers[row.SpeakerID] = row
		}
	}

	tags := make(map[uuid.UUID]tagModel.TagModel)
	if len(tagIDs) > 0 {
		var rows []tagModel.TagModel
		if err := s.DB.Where("tag_id IN ?", tagIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			tags[row.TagID] = row
		}
	}

	recordings := make(map[uuid.UUID]recordingModel.RecordingModel)
	if len(sessionIDs) > 0 {
		var rows []recordingModel.RecordingModel
		if err := s.DB.Where("recording_session_id IN ?", sessionIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			recordings[row.RecordingSessionID] = row
		}
	}

	out := make([]dto.SessionResponse, 0, len(sessions))
	for _, m := range sessions {
		resp := dto.ToSessionResponse(m)
		if speaker, ok := speakers[m.SessionSpeakerID]; ok {
			sp := speakerDTO.ToSpeakerResponse(speaker)
			resp.Speaker = &sp
		}
		resp.OrganTag = tagResponseFor(tags, m.SessionOrganTagID)
		resp.TypeTag = tagResponseFor(tags, m.SessionTypeTagID)
		resp.LevelTag = tagResponseFor(tags, m.SessionLevelTagID)
		if recording, ok := recordings[m.SessionID]; ok {
			resp.Recording = dto.ToRecordingSummary(recording)
			resp.HasRecording = true
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *SessionService) ExpandOne(session model.SessionModel) (dto.SessionResponse, error) {
	expanded, err := s.Expand([]model.SessionModel{session})
	if err != nil {
		return dto.SessionResponse{}, err
	}
	return expanded[0], nil
}

func tagResponseFor(tags map[uuid.UUID]tagModel.TagModel, id uuid.UUID) *tagDTO.TagResponse {
	tag, ok := tags[id]
	if !ok {
		return nil
	}
	resp := tagDTO.ToTagResponse(tag)
	return &resp
}
