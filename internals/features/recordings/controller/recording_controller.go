package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/recordings/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/recordings/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

var validate = validator.New()

type RecordingController struct {
	Service *service.RecordingService
}

func NewRecordingController(db *gorm.DB) *RecordingController {
	return &RecordingController{Service: service.NewRecordingService(db)}
}

func parseRecordingFilters(c *fiber.Ctx) (dto.RecordingFilters, error) {
	f := dto.RecordingFilters{
		Search: strings.TrimSpace(c.Query("search")),
		Sort:   strings.TrimSpace(c.Query("sort", dto.SortRecent)),
	}

	var err error
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

func (ctl *RecordingController) Create(c *fiber.Ctx) error {
	var req dto.CreateRecordingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	recording, err := ctl.Service.Add(nil, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(recording)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (ctl *RecordingController) List(c *fiber.Ctx) error {
	filters, err := parseRecordingFilters(c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	paging := helper.ResolvePaging(c, configs.DefaultPageSize, configs.MaxPageSize)

	recordings, total, err := ctl.Service.List(filters, &paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	items, err := ctl.Service.Expand(recordings)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonList(c, items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctl *RecordingController) Update(c *fiber.Ctx) error {
	recordingID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpdateRecordingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	recording, err := ctl.Service.Update(recordingID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(recording)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (ctl *RecordingController) Delete(c *fiber.Ctx) error {
	recordingID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	if err := ctl.Service.Delete(recordingID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
