package details

import (
	"github.com/gofiber/fiber/v2"

	assistantRoute "edusuite_backend/internals/features/ai/assistant/route"
	assistantService "edusuite_backend/internals/features/ai/assistant/service"
)

func AIRoutes(api fiber.Router, svc *assistantService.AssistantService, guards ...fiber.Handler) {
	assistantRoute.AssistantRoutes(api, svc, guards...)
}
