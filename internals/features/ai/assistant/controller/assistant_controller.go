package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"edusuite_backend/internals/features/ai/assistant/dto"
	"edusuite_backend/internals/features/ai/assistant/service"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/reporter"
)

type AssistantController struct {
	svc *service.AssistantService
}

func NewAssistantController(svc *service.AssistantService) *AssistantController {
	return &AssistantController{svc: svc}
}

// POST /api/ai/assistant answers with the bare AI JSON object.
func (ctl *AssistantController) Ask(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	out, err := ctl.svc.Ask(helper.ReqCtx(c), scope, req)
	if err != nil {
		var aiErr *service.AIError
		if errors.As(err, &aiErr) {
			log.Error().Err(aiErr.Err).Interface("request_id", c.Locals("reqid")).Msg("assistant: provider failed")
			reporter.Error(aiErr.Err, map[string]interface{}{"path": c.Path()})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal AI Error",
				"error":   aiErr.Error(),
			})
		}
		return helper.FromServiceError(c, err)
	}
	return c.JSON(out)
}

func (ctl *AssistantController) ListDocs(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	p := helper.DefaultPaging(c)
	rows, total, err := ctl.svc.ListDocs(helper.ReqCtx(c), scope, p)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDocs(rows), p.Build(total))
}

func (ctl *AssistantController) CreateDoc(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	var req dto.CreateDocRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	m, err := ctl.svc.CreateDoc(helper.ReqCtx(c), scope, req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "Document created", dto.FromDoc(m))
}

func (ctl *AssistantController) DeleteDoc(c *fiber.Ctx) error {
	scope, err := helperAuth.GetScope(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if err := ctl.svc.DeleteDoc(helper.ReqCtx(c), scope, id); err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonDeleted(c)
}
