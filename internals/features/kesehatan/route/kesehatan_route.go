package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kesehatanController "pesantrenku_backend/internals/features/kesehatan/controller"
)

func KesehatanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := kesehatanController.NewKesehatanController(db)

	kesehatan := api.Group("/kesehatan")
	kesehatan.Post("/", ctrl.CreateKesehatan)
	kesehatan.Get("/", ctrl.GetAllKesehatan)
	kesehatan.Get("/terbaru", ctrl.GetKesehatanTerbaru)
	kesehatan.Get("/statistik", ctrl.GetStatistikKesehatan)
	kesehatan.Get("/ranking", ctrl.GetRankingKesehatan)
	kesehatan.Put("/:id", ctrl.UpdateKesehatan)
	kesehatan.Delete("/:id", ctrl.DeleteKesehatan)
}
