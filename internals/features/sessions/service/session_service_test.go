package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	recordingModel "github.com/prabhatlnct2008/digipath/internals/features/recordings/model"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerModel "github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	tagModel "github.com/prabhatlnct2008/digipath/internals/features/tags/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// The clock every test pins the today-boundary to.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type sessionFixture struct {
	db      *gorm.DB
	svc     *SessionService
	speaker speakerModel.SpeakerModel
	organ   tagModel.TagModel
	typ     tagModel.TagModel
	level   tagModel.TagModel
	admin   uuid.UUID
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&speakerModel.SpeakerModel{},
		&tagModel.TagModel{},
		&model.SessionModel{},
		&recordingModel.RecordingModel{},
	))

	f := &sessionFixture{db: db, svc: NewSessionService(db), admin: uuid.New()}
	f.svc.Now = func() time.Time { return testNow }
	f.svc.Recordings.Now = f.svc.Now

	f.speaker = speakerModel.SpeakerModel{SpeakerName: "Dr. Meera Nair", SpeakerDesignation: "Professor"}
	require.NoError(t, db.Create(&f.speaker).Error)

	f.organ = tagModel.TagModel{TagCategory: tagModel.CategoryOrgan, TagLabel: "Breast", TagIsActive: true}
	f.typ = tagModel.TagModel{TagCategory: tagModel.CategoryType, TagLabel: "Lecture", TagIsActive: true}
	f.level = tagModel.TagModel{TagCategory: tagModel.CategoryLevel, TagLabel: "Beginner", TagIsActive: true}
	for _, tag := range []*tagModel.TagModel{&f.organ, &f.typ, &f.level} {
		require.NoError(t, db.Create(tag).Error)
	}
	return f
}

func (f *sessionFixture) createRequest(date string) dto.CreateSessionRequest {
	link := "https://zoom.us/j/123456"
	return dto.CreateSessionRequest{
		Title:           "Breast core biopsy interpretation",
		Summary:         "Approach to breast core biopsies",
		Abstract:        "Systematic review of common entities",
		Objectives:      []string{"Recognize benign mimics", "Grade invasive carcinoma"},
		Date:            date,
		Time:            "14:00",
		DurationMinutes: 60,
		Platform:        "Zoom",
		MeetingLink:     &link,
		SpeakerID:       f.speaker.SpeakerID,
		OrganTagID:      f.organ.TagID,
		TypeTagID:       f.typ.TagID,
		LevelTagID:      f.level.TagID,
	}
}

func (f *sessionFixture) mustCreate(t *testing.T, date string) model.SessionModel {
	t.Helper()
	session, err := f.svc.Create(f.createRequest(date), f.admin)
	require.NoError(t, err)
	return session
}

func (f *sessionFixture) forceStatus(t *testing.T, session model.SessionModel, status string) {
	t.Helper()
	require.NoError(t, f.db.Model(&model.SessionModel{}).
		Where("session_id = ?", session.SessionID).
		Update("session_status", status).Error)
}

func assertAppErr(t *testing.T, err error, code string) *helper.AppError {
	t.Helper()
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestSessionCreateValidatesReferences(t *testing.T) {
	f := newSessionFixture(t)

	req := f.createRequest("2026-03-15")
	req.SpeakerID = uuid.New()
	_, err := f.svc.Create(req, f.admin)
	assertAppErr(t, err, "NOT_FOUND")

	// A level tag cannot sit in the organ slot.
	req = f.createRequest("2026-03-15")
	req.OrganTagID = f.level.TagID
	_, err = f.svc.Create(req, f.admin)
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Invalid or inactive organ tag", appErr.Message)

	require.NoError(t, f.db.Model(&tagModel.TagModel{}).
		Where("tag_id = ?", f.typ.TagID).
		Update("tag_is_active", false).Error)
	req = f.createRequest("2026-03-15")
	_, err = f.svc.Create(req, f.admin)
	appErr = assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Invalid or inactive type tag", appErr.Message)
}

func TestSessionCreateStartsAsDraft(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")
	assert.Equal(t, model.StatusDraft, session.SessionStatus)
	assert.Equal(t, f.admin, session.SessionCreatedBy)
	assert.Equal(t, []string{"Recognize benign mimics", "Grade invasive carcinoma"},
		[]string(session.SessionObjectives))
}

func TestSessionPublishGuards(t *testing.T) {
	f := newSessionFixture(t)

	req := f.createRequest("2026-03-15")
	req.MeetingLink = nil
	noLink, err := f.svc.Create(req, f.admin)
	require.NoError(t, err)
	_, err = f.svc.Publish(noLink.SessionID)
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Cannot publish session without meeting link", appErr.Message)

	past := f.mustCreate(t, "2026-03-09")
	_, err = f.svc.Publish(past.SessionID)
	appErr = assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Cannot publish session with past date", appErr.Message)

	// Today is still publishable.
	today := f.mustCreate(t, "2026-03-10")
	published, err := f.svc.Publish(today.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, published.SessionStatus)
}

func TestSessionUnpublish(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")
	_, err := f.svc.Publish(session.SessionID)
	require.NoError(t, err)

	back, err := f.svc.Unpublish(session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, back.SessionStatus)

	f.forceStatus(t, session, model.StatusCompleted)
	_, err = f.svc.Unpublish(session.SessionID)
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Cannot unpublish completed sessions", appErr.Message)
}

func TestSessionCompleteAttachesRecording(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-09")
	f.forceStatus(t, session, model.StatusPublished)

	completed, err := f.svc.Complete(session.SessionID, dto.CompleteSessionRequest{
		YoutubeURL: "https://www.youtube.com/watch?v=abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, completed.SessionStatus)

	var recording recordingModel.RecordingModel
	require.NoError(t, f.db.First(&recording, "recording_session_id = ?", session.SessionID).Error)
	require.NotNil(t, recording.RecordingThumbnailURL)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg", *recording.RecordingThumbnailURL)
	assert.Equal(t, "2026-03-10", helper.FormatDate(recording.RecordingRecordedDate))

	// A second completion hits the one-recording-per-session rule.
	_, err = f.svc.Complete(session.SessionID, dto.CompleteSessionRequest{
		YoutubeURL: "https://youtu.be/xyz789",
	})
	assertAppErr(t, err, "CONFLICT")
}

func TestSessionUpdateCompletedBlocked(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")
	f.forceStatus(t, session, model.StatusCompleted)

	title := "New title"
	_, err := f.svc.Update(session.SessionID, dto.UpdateSessionRequest{Title: &title})
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Cannot update completed sessions", appErr.Message)
}

func TestSessionUpdatePatchSemantics(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")

	title := "Revised: breast core biopsy interpretation"
	updated, err := f.svc.Update(session.SessionID, dto.UpdateSessionRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.SessionTitle)
	assert.Equal(t, session.SessionSummary, updated.SessionSummary)
	assert.Equal(t, "14:00", updated.SessionTime)

	// Changed references are re-validated like at creation.
	wrong := f.level.TagID
	_, err = f.svc.Update(session.SessionID, dto.UpdateSessionRequest{OrganTagID: &wrong})
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Invalid or inactive organ tag", appErr.Message)
}

func TestSessionDeleteOnlyDraft(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")
	f.forceStatus(t, session, model.StatusPublished)

	err := f.svc.Delete(session.SessionID)
	appErr := assertAppErr(t, err, "VALIDATION_ERROR")
	assert.Equal(t, "Can only delete draft sessions", appErr.Message)

	draft := f.mustCreate(t, "2026-03-16")
	require.NoError(t, f.svc.Delete(draft.SessionID))
	_, err = f.svc.Get(draft.SessionID)
	assertAppErr(t, err, "NOT_FOUND")
}

func TestSessionListPagination(t *testing.T) {
	f := newSessionFixture(t)

	for i := 0; i < 45; i++ {
		date := testNow.AddDate(0, 0, i+1).Format(helper.DateLayout)
		f.mustCreate(t, date)
	}

	paging := helper.Paging{Page: 3, PerPage: 20, Offset: 40, Limit: 20}
	sessions, total, err := f.svc.List(dto.SessionFilters{}, &paging)
	require.NoError(t, err)
	assert.Equal(t, int64(45), total)
	assert.Len(t, sessions, 5)
	assert.Equal(t, 3, helper.BuildPagination(total, 3, 20).TotalPages)

	beyond := helper.Paging{Page: 4, PerPage: 20, Offset: 60, Limit: 20}
	sessions, total, err = f.svc.List(dto.SessionFilters{}, &beyond)
	require.NoError(t, err)
	assert.Equal(t, int64(45), total)
	assert.Empty(t, sessions)
}

func TestSessionListOrdersByScheduleDesc(t *testing.T) {
	f := newSessionFixture(t)

	oldest := f.mustCreate(t, "2026-03-11")
	newest := f.mustCreate(t, "2026-03-20")
	middle := f.mustCreate(t, "2026-03-15")

	sessions, total, err := f.svc.List(dto.SessionFilters{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, sessions, 3)
	assert.Equal(t, newest.SessionID, sessions[0].SessionID)
	assert.Equal(t, middle.SessionID, sessions[1].SessionID)
	assert.Equal(t, oldest.SessionID, sessions[2].SessionID)
}

func TestSessionListStatusAndSpeakerFilters(t *testing.T) {
	f := newSessionFixture(t)

	published := f.mustCreate(t, "2026-03-15")
	f.forceStatus(t, published, model.StatusPublished)
	f.mustCreate(t, "2026-03-16")

	sessions, total, err := f.svc.List(dto.SessionFilters{Status: model.StatusPublished}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)
	assert.Equal(t, published.SessionID, sessions[0].SessionID)

	other := uuid.New()
	_, total, err = f.svc.List(dto.SessionFilters{SpeakerID: &other}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

// A term matching the title produces one joined row per tag slot; the result
// must still count and return the session once.
func TestSessionSearchDeduplicates(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-15")

	sessions, total, err := f.svc.List(dto.SessionFilters{Search: "BIOPSY"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.SessionID, sessions[0].SessionID)

	// Speaker name and tag label match through the joins too.
	_, total, err = f.svc.List(dto.SessionFilters{Search: "meera"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = f.svc.List(dto.SessionFilters{Search: "lecture"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = f.svc.List(dto.SessionFilters{Search: "nephrectomy"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSessionUpcomingAndPastBoundary(t *testing.T) {
	f := newSessionFixture(t)

	yesterday := f.mustCreate(t, "2026-03-09")
	f.forceStatus(t, yesterday, model.StatusPublished)
	today := f.mustCreate(t, "2026-03-10")
	f.forceStatus(t, today, model.StatusPublished)
	tomorrow := f.mustCreate(t, "2026-03-11")
	f.forceStatus(t, tomorrow, model.StatusPublished)
	f.mustCreate(t, "2026-03-12") // stays draft, must not surface

	upcoming, total, err := f.svc.Upcoming(dto.SessionFilters{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, upcoming, 2)
	assert.Equal(t, today.SessionID, upcoming[0].SessionID)
	assert.Equal(t, tomorrow.SessionID, upcoming[1].SessionID)

	past, total, err := f.svc.Past(dto.SessionFilters{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, past, 1)
	assert.Equal(t, yesterday.SessionID, past[0].SessionID)
}

func TestSessionExpandResolvesReferences(t *testing.T) {
	f := newSessionFixture(t)

	session := f.mustCreate(t, "2026-03-09")
	f.forceStatus(t, session, model.StatusPublished)
	_, err := f.svc.Complete(session.SessionID, dto.CompleteSessionRequest{
		YoutubeURL: "https://www.youtube.com/watch?v=abc123",
	})
	require.NoError(t, err)

	reloaded, err := f.svc.Get(session.SessionID)
	require.NoError(t, err)
	resp, err := f.svc.ExpandOne(reloaded)
	require.NoError(t, err)

	require.NotNil(t, resp.Speaker)
	assert.Equal(t, "Dr. Meera Nair", resp.Speaker.Name)
	require.NotNil(t, resp.OrganTag)
	assert.Equal(t, "Breast", resp.OrganTag.Label)
	require.NotNil(t, resp.TypeTag)
	require.NotNil(t, resp.LevelTag)
	assert.True(t, resp.HasRecording)
	require.NotNil(t, resp.Recording)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", resp.Recording.YoutubeURL)
}
