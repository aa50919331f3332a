package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ustadzController "pesantrenku_backend/internals/features/ustadz/controller"
)

func UstadzRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := ustadzController.NewUstadzController(db)

	ustadz := api.Group("/ustadz")
	ustadz.Post("/", ctrl.CreateUstadz)
	ustadz.Get("/", ctrl.GetAllUstadz)

	waliKelas := ustadz.Group("/wali-kelas")
	waliKelas.Post("/", ctrl.AssignWaliKelas)
	waliKelas.Get("/", ctrl.GetAllWaliKelas)
	waliKelas.Delete("/:id", ctrl.DeleteWaliKelas)

	ustadz.Put("/:id", ctrl.UpdateUstadz)
	ustadz.Delete("/:id", ctrl.DeleteUstadz)
}
