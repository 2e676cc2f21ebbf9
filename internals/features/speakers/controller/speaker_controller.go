package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/prabhatlnct2008/digipath/internals/features/speakers/dto"
	"github.com/prabhatlnct2008/digipath/internals/features/speakers/service"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

var validate = validator.New()

type SpeakerController struct {
	Service *service.SpeakerService
}

func NewSpeakerController(db *gorm.DB) *SpeakerController {
	return &SpeakerController{Service: service.NewSpeakerService(db)}
}

func (ctl *SpeakerController) Create(c *fiber.Ctx) error {
	var req dto.CreateSpeakerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	speaker, err := ctl.Service.Create(req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSpeakerResponse(speaker))
}

func (ctl *SpeakerController) List(c *fiber.Ctx) error {
	speakers, err := ctl.Service.List()
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToSpeakerResponses(speakers))
}

func (ctl *SpeakerController) Get(c *fiber.Ctx) error {
	speakerID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	speaker, err := ctl.Service.Get(speakerID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToSpeakerResponse(speaker))
}

func (ctl *SpeakerController) Update(c *fiber.Ctx) error {
	speakerID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.UpdateSpeakerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	speaker, err := ctl.Service.Update(speakerID, req)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToSpeakerResponse(speaker))
}

func (ctl *SpeakerController) Usage(c *fiber.Ctx) error {
	speakerID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	count, err := ctl.Service.Usage(speakerID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"speaker_id":  speakerID,
		"usage_count": count,
		"can_delete":  count == 0,
	})
}

func (ctl *SpeakerController) Delete(c *fiber.Ctx) error {
	speakerID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	if err := ctl.Service.Delete(speakerID); err != nil {
		return helper.JsonAppError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
