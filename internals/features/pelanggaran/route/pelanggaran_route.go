package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pelanggaran/controller"
)

func PelanggaranRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPelanggaranController(db)

	pelanggaran := api.Group("/pelanggaran")
	pelanggaran.Post("/", ctrl.CreatePelanggaran)
	pelanggaran.Get("/", ctrl.GetAllPelanggaran)
	pelanggaran.Get("/terbaru", ctrl.GetPelanggaranTerbaru)
	pelanggaran.Get("/statistik", ctrl.GetStatistikPelanggaran)
	pelanggaran.Get("/ranking", ctrl.GetRankingPelanggaran)
	pelanggaran.Put("/:id", ctrl.UpdatePelanggaran)
	pelanggaran.Delete("/:id", ctrl.DeletePelanggaran)
}
