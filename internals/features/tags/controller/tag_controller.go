package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/tags/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/tags/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

var validate = validator.New()

type TagController struct {
	Service *service.TagService
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{Service: service.NewTagService(db)}
}

func (ctl *TagController) Create(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tag, err := ctl.Service.Create(req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTagResponse(tag))
}

func (ctl *TagController) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	activeOnly := c.QueryBool("active_only", false)

	tags, err := ctl.Service.List(category, activeOnly)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToTagResponses(tags))
}

func (ctl *TagController) Get(c *fiber.Ctx) error {
	tagID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	tag, err := ctl.Service.Get(tagID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToTagResponse(tag))
}

func (ctl *TagController) Update(c *fiber.Ctx) error {
	tagID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tag, err := ctl.Service.Update(tagID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToTagResponse(tag))
}

func (ctl *TagController) Usage(c *fiber.Ctx) error {
	tagID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	usage, err := ctl.Service.Usage(tagID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(usage)
}

// Delete accepts an optional body carrying replacement_tag_id for in-use tags.
func (ctl *TagController) Delete(c *fiber.Ctx) error {
	tagID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.DeleteTagRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		}
	}

	if err := ctl.Service.Delete(tagID, req.ReplacementTagID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListGrouped is the public catalogue: active tags keyed by category.
func (ctl *TagController) ListGrouped(c *fiber.Ctx) error {
	grouped, err := ctl.Service.ListGrouped()
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	out := make(map[string][]dto.TagResponse, len(grouped))
	for category, tags := range grouped {
		out[category] = dto.ToTagResponses(tags)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
