package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donasiController "pesantrenku_backend/internals/features/donasi/controller"
)

func DonasiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := donasiController.NewDonasiController(db)

	donasi := api.Group("/donasi")
	donasi.Post("/", ctrl.CreateDonasi)
	// webhook Midtrans; path ini dilewatkan auth middleware
	donasi.Post("/notification", ctrl.HandleMidtransNotification)
	donasi.Get("/", ctrl.GetAllDonasi)
	donasi.Get("/statistik", ctrl.GetStatistikDonasi)
}
