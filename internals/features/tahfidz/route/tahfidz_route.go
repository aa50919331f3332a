package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tahfidzController "pesantrenku_backend/internals/features/tahfidz/controller"
)

func TahfidzRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := tahfidzController.NewTahfidzController(db)

	tahfidz := api.Group("/tahfidz")
	tahfidz.Post("/", ctrl.CreateTahfidz)
	tahfidz.Get("/", ctrl.GetAllTahfidz)
	tahfidz.Get("/terbaru", ctrl.GetTahfidzTerbaru)
	tahfidz.Get("/statistik", ctrl.GetStatistikTahfidz)
	tahfidz.Put("/:id", ctrl.UpdateTahfidz)
	tahfidz.Delete("/:id", ctrl.DeleteTahfidz)
}
