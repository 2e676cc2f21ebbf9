package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

// PublicSessionController serves the unauthenticated site: only published
// and completed sessions are visible.
type PublicSessionController struct {
	Service *service.SessionService
}

func NewPublicSessionController(db *gorm.DB) *PublicSessionController {
	return &PublicSessionController{Service: service.NewSessionService(db)}
}

func (ctl *PublicSessionController) Upcoming(c *fiber.Ctx) error {
	filters, err := parseSessionFilters(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	paging := helper.ResolvePaging(c, configs.DefaultPageSize, configs.MaxPageSize)

	sessions, total, err := ctl.Service.Upcoming(filters, &paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	items, err := ctl.Service.Expand(sessions)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *PublicSessionController) Get(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	session, err := ctl.Service.Get(sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if session.SessionStatus == model.StatusDraft {
		return helper.JsonError(c, fiber.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Session with id %s not found", sessionID))
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Calendar streams the ICS invite; only published sessions have one.
func (ctl *PublicSessionController) Calendar(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	session, err := ctl.Service.Get(sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if session.SessionStatus != model.StatusPublished {
		return helper.JsonError(c, fiber.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("Session with id %s not found", sessionID))
	}

	ics, err := ctl.Service.CalendarICS(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="session-%s.ics"`, sessionID))
	return c.SendString(ics)
}
