package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	"github.com/prabhatlnct2008/digipath/internals/features/sessions/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
	authmw "github.com/prabhatlnct2008/digipath/internals/middlewares/auth"
)

var validate = validator.New()

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{Service: service.NewSessionService(db)}
}

func parseSessionFilters(c *fiber.Ctx) (dto.SessionFilters, error) {
	f := dto.SessionFilters{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
	}

	var err error
	if f.SpeakerID, err = helper.ParseUUIDQuery(c, "speaker_id"); err != nil {
		return f, err
	}
	if f.OrganTagID, err = helper.ParseUUIDQuery(c, "organ_tag_id"); err != nil {
		return f, err
	}
	if f.TypeTagID, err = helper.ParseUUIDQuery(c, "type_tag_id"); err != nil {
		return f, err
	}
	if f.LevelTagID, err = helper.ParseUUIDQuery(c, "level_tag_id"); err != nil {
		return f, err
	}
	return f, nil
}

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	adminID, err := authmw.AdminIDFromContext(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session, err := ctl.Service.Create(req, adminID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (ctl *SessionController) List(c *fiber.Ctx) error {
	filters, err := parseSessionFilters(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	paging := helper.ResolvePaging(c, configs.DefaultPageSize, configs.MaxPageSize)

	sessions, total, err := ctl.Service.List(filters, &paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	items, err := ctl.Service.Expand(sessions)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *SessionController) Upcoming(c *fiber.Ctx) error {
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

func (ctl *SessionController) Past(c *fiber.Ctx) error {
	filters, err := parseSessionFilters(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	paging := helper.ResolvePaging(c, configs.DefaultPageSize, configs.MaxPageSize)

	sessions, total, err := ctl.Service.Past(filters, &paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	items, err := ctl.Service.Expand(sessions)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *SessionController) Get(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	session, err := ctl.Service.Get(sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (ctl *SessionController) Update(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session, err := ctl.Service.Update(sessionID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (ctl *SessionController) Publish(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Publish)
}

func (ctl *SessionController) Unpublish(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Unpublish)
}

func (ctl *SessionController) Complete(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.CompleteSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	session, err := ctl.Service.Complete(sessionID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	if err := ctl.Service.Delete(sessionID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *SessionController) transition(c *fiber.Ctx, fn func(uuid.UUID) (model.SessionModel, error)) error {
	sessionID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	session, err := fn(sessionID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(session)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
