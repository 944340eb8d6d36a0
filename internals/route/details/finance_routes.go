package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "edusuite_backend/internals/features/finance/fees/route"
)

func FinanceRoutes(api fiber.Router, db *gorm.DB, guards ...fiber.Handler) {
	feeRoute.FeeRoutes(api, db, guards...)
}
