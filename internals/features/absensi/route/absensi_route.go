package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absensiController "pesantrenku_backend/internals/features/absensi/controller"
)

func AbsensiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := absensiController.NewAbsensiController(db)

	absensi := api.Group("/absensi")
	absensi.Post("/", ctrl.CreateAbsensi)
	absensi.Get("/", ctrl.GetAllAbsensi)
	absensi.Get("/terbaru", ctrl.GetAbsensiTerbaru)
	absensi.Get("/statistik", ctrl.GetStatistikAbsensi)
	absensi.Get("/trend", ctrl.GetTrendAbsensi)
	absensi.Put("/:id", ctrl.UpdateAbsensi)
	absensi.Delete("/:id", ctrl.DeleteAbsensi)
}
