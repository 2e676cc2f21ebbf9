package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/configs"
	"github.com/prabhatlnct2008/digipath/internals/features/recordings/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

type PublicRecordingController struct {
	Service *service.RecordingService
}

func NewPublicRecordingController(db *gorm.DB) *PublicRecordingController {
	return &PublicRecordingController{Service: service.NewRecordingService(db)}
}

func (ctl *PublicRecordingController) List(c *fiber.Ctx) error {
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

// Get resolves by recording id or owning session id and counts the view.
func (ctl *PublicRecordingController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	recording, err := ctl.Service.GetDetail(id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	resp, err := ctl.Service.ExpandOne(recording)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
