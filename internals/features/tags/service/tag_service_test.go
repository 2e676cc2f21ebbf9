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

	sessionModel "github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	"github.com/prabhatlnct2008/digipath/internals/features/tags/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/tags/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

func setupTagTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TagModel{}, &sessionModel.SessionModel{}))
	return db
}

func mustCreateTag(t *testing.T, svc *TagService, category, label string) model.TagModel {
	t.Helper()
	tag, err := svc.Create(dto.CreateTagRequest{Category: category, Label: label})
	require.NoError(t, err)
	return tag
}

func mustCreateSession(t *testing.T, db *gorm.DB, organ, typ, level uuid.UUID) sessionModel.SessionModel {
	t.Helper()
	session := sessionModel.SessionModel{
		SessionTitle:           "FNAC of thyroid lesions",
		SessionSummary:         "Cytology overview",
		SessionAbstract:        "Detailed walkthrough",
		SessionDate:            helper.DateOnly(time.Now()),
		SessionTime:            "10:00",
		SessionDurationMinutes: 60,
		SessionStatus:          sessionModel.StatusDraft,
		SessionPlatform:        "Zoom",
		SessionSpeakerID:       uuid.New(),
		SessionOrganTagID:      organ,
		SessionTypeTagID:       typ,
		SessionLevelTagID:      level,
		SessionCreatedBy:       uuid.New(),
	}
	require.NoError(t, db.Create(&session).Error)
	return session
}

func TestTagCreateDuplicateConflict(t *testing.T) {
	svc := NewTagService(setupTagTestDB(t))

	mustCreateTag(t, svc, model.CategoryOrgan, "Breast")

	_, err := svc.Create(dto.CreateTagRequest{Category: model.CategoryOrgan, Label: "Breast"})
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)

	// Same label under another category is fine.
	_, err = svc.Create(dto.CreateTagRequest{Category: model.CategoryType, Label: "Breast"})
	require.NoError(t, err)
}

func TestTagUpdateLabelCollision(t *testing.T) {
	svc := NewTagService(setupTagTestDB(t))

	mustCreateTag(t, svc, model.CategoryOrgan, "Breast")
	lung := mustCreateTag(t, svc, model.CategoryOrgan, "Lung")

	label := "Breast"
	_, err := svc.Update(lung.TagID, dto.UpdateTagRequest{Label: &label})
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestTagDeactivationDoesNotTouchSessions(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	organ := mustCreateTag(t, svc, model.CategoryOrgan, "Lung")
	session := mustCreateSession(t, db, organ.TagID, uuid.New(), uuid.New())

	inactive := false
	updated, err := svc.Update(organ.TagID, dto.UpdateTagRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.TagIsActive)

	// Existing slot references survive a deactivation.
	var reloaded sessionModel.SessionModel
	require.NoError(t, db.First(&reloaded, "session_id = ?", session.SessionID).Error)
	assert.Equal(t, organ.TagID, reloaded.SessionOrganTagID)
}

func TestTagUsageCountsEverySlotColumn(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	tag := mustCreateTag(t, svc, model.CategoryOrgan, "Kidney")
	mustCreateSession(t, db, tag.TagID, uuid.New(), uuid.New())
	mustCreateSession(t, db, tag.TagID, uuid.New(), uuid.New())
	mustCreateSession(t, db, uuid.New(), uuid.New(), uuid.New())

	usage, err := svc.Usage(tag.TagID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), usage.UsageCount)
	assert.False(t, usage.CanDelete)
}

func TestTagDeleteUnused(t *testing.T) {
	svc := NewTagService(setupTagTestDB(t))

	tag := mustCreateTag(t, svc, model.CategoryLevel, "Expert")
	require.NoError(t, svc.Delete(tag.TagID, nil))

	_, err := svc.Get(tag.TagID)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestTagDeleteInUseWithoutReplacement(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	tag := mustCreateTag(t, svc, model.CategoryOrgan, "Liver")
	mustCreateSession(t, db, tag.TagID, uuid.New(), uuid.New())

	err := svc.Delete(tag.TagID, nil)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "Cannot delete tag. Associated with 1 session(s)", appErr.Message)
}

func TestTagDeleteWithReplacementRewritesSessions(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	old := mustCreateTag(t, svc, model.CategoryOrgan, "Gastrointestinal")
	replacement := mustCreateTag(t, svc, model.CategoryOrgan, "General")
	first := mustCreateSession(t, db, old.TagID, uuid.New(), uuid.New())
	second := mustCreateSession(t, db, old.TagID, uuid.New(), uuid.New())

	require.NoError(t, svc.Delete(old.TagID, &replacement.TagID))

	for _, id := range []uuid.UUID{first.SessionID, second.SessionID} {
		var reloaded sessionModel.SessionModel
		require.NoError(t, db.First(&reloaded, "session_id = ?", id).Error)
		assert.Equal(t, replacement.TagID, reloaded.SessionOrganTagID)
	}

	_, err := svc.Get(old.TagID)
	assert.Error(t, err)
}

func TestTagDeleteReplacementMustMatchCategory(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	organ := mustCreateTag(t, svc, model.CategoryOrgan, "Skin")
	level := mustCreateTag(t, svc, model.CategoryLevel, "Beginner")
	mustCreateSession(t, db, organ.TagID, uuid.New(), uuid.New())

	err := svc.Delete(organ.TagID, &level.TagID)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	// The tag and its references are untouched after the failed delete.
	_, err = svc.Get(organ.TagID)
	require.NoError(t, err)
}

func TestTagDeleteReplacementMustBeActive(t *testing.T) {
	db := setupTagTestDB(t)
	svc := NewTagService(db)

	organ := mustCreateTag(t, svc, model.CategoryOrgan, "Bone")
	replacement := mustCreateTag(t, svc, model.CategoryOrgan, "Soft Tissue")
	inactive := false
	_, err := svc.Update(replacement.TagID, dto.UpdateTagRequest{IsActive: &inactive})
	require.NoError(t, err)
	mustCreateSession(t, db, organ.TagID, uuid.New(), uuid.New())

	err = svc.Delete(organ.TagID, &replacement.TagID)
	var appErr *helper.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestTagListGroupedAlwaysHasAllCategories(t *testing.T) {
	svc := NewTagService(setupTagTestDB(t))

	mustCreateTag(t, svc, model.CategoryOrgan, "Breast")
	inactive := mustCreateTag(t, svc, model.CategoryOrgan, "Lung")
	off := false
	_, err := svc.Update(inactive.TagID, dto.UpdateTagRequest{IsActive: &off})
	require.NoError(t, err)

	grouped, err := svc.ListGrouped()
	require.NoError(t, err)
	assert.Len(t, grouped, 3)
	assert.Len(t, grouped[model.CategoryOrgan], 1)
	assert.Empty(t, grouped[model.CategoryType])
	assert.Empty(t, grouped[model.CategoryLevel])
}
