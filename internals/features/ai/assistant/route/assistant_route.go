package route

import (
	"github.com/gofiber/fiber/v2"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/ai/assistant/controller"
	"edusuite_backend/internals/features/ai/assistant/service"
	authMiddleware "edusuite_backend/internals/middlewares/auth"
)

// AssistantRoutes mounts /ai. The service is shared so shutdown can flush its cache writes.
func AssistantRoutes(api fiber.Router, svc *service.AssistantService, guards ...fiber.Handler) {
	ctl := controller.NewAssistantController(svc)
	g := api.Group("/ai", guards...)

	g.Post("/assistant", authMiddleware.Require(constants.OpAIAsk), ctl.Ask)
	g.Get("/docs", authMiddleware.Require(constants.OpDocsRead), ctl.ListDocs)
	g.Post("/docs", authMiddleware.Require(constants.OpDocsWrite), ctl.CreateDoc)
	g.Delete("/docs/:id", authMiddleware.Require(constants.OpDocsWrite), ctl.DeleteDoc)
}
