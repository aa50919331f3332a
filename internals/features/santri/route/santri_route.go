package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	santriController "pesantrenku_backend/internals/features/santri/controller"
)

func SantriRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := santriController.NewSantriController(db)

	santri := api.Group("/santri")
	santri.Post("/", ctrl.CreateSantri)
	santri.Get("/", ctrl.GetAllSantri)
	santri.Get("/terbaru", ctrl.GetSantriTerbaru)
	santri.Get("/statistik", ctrl.GetStatistikSantri)
	santri.Get("/:id", ctrl.GetSantriByID)
	santri.Put("/:id", ctrl.UpdateSantri)
	santri.Delete("/:id", ctrl.DeleteSantri)
}
