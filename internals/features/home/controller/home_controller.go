package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordingDTO "github.com/prabhatlnct2008/digipath/internals/features/recordings/dto"
	recordingService "github.com/prabhatlnct2008/digipath/internals/features/recordings/service"
	sessionDTO "github.com/prabhatlnct2008/digipath/internals/features/sessions/dto"
	sessionService "github.com/prabhatlnct2008/digipath/internals/features/sessions/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

const homeSectionSize = 6

// HomeController aggregates the landing page: the next published sessions
// and the freshest recordings, fully expanded.
type HomeController struct {
	Sessions   *sessionService.SessionService
	Recordings *recordingService.RecordingService
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{
		Sessions:   sessionService.NewSessionService(db),
		Recordings: recordingService.NewRecordingService(db),
	}
}

func (ctl *HomeController) Home(c *fiber.Ctx) error {
	sessionPage := helper.Paging{Page: 1, PerPage: homeSectionSize, Limit: homeSectionSize}
	sessions, _, err := ctl.Sessions.Upcoming(sessionDTO.SessionFilters{}, &sessionPage)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	upcoming, err := ctl.Sessions.Expand(sessions)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	recordingPage := helper.Paging{Page: 1, PerPage: homeSectionSize, Limit: homeSectionSize}
	recordings, _, err := ctl.Recordings.List(recordingDTO.RecordingFilters{Sort: recordingDTO.SortRecent}, &recordingPage)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	recent, err := ctl.Recordings.Expand(recordings)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"upcoming_sessions": upcoming,
		"recent_recordings": recent,
	})
}
