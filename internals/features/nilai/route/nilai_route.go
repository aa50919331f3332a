package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	nilaiController "pesantrenku_backend/internals/features/nilai/controller"
)

func NilaiRoutes(api fiber.Router, db *gorm.DB) {
	mapelCtrl := nilaiController.NewMapelController(db)
	nilaiCtrl := nilaiController.NewNilaiController(db)

	mapel := api.Group("/mapel")
	mapel.Post("/", mapelCtrl.CreateMapel)
	mapel.Get("/", mapelCtrl.GetAllMapel)
	mapel.Delete("/:id", mapelCtrl.DeleteMapel)

	ekskul := api.Group("/ekskul")
	ekskul.Post("/", mapelCtrl.CreateEkskul)
	ekskul.Get("/", mapelCtrl.GetAllEkskul)

	nilai := api.Group("/nilai")
	nilai.Post("/", nilaiCtrl.UpsertNilai)
	nilai.Post("/ekskul", nilaiCtrl.UpsertNilaiEkskul)
	nilai.Get("/", nilaiCtrl.GetAllNilai)
	nilai.Get("/terbaru", nilaiCtrl.GetNilaiTerbaru)
	nilai.Get("/statistik", nilaiCtrl.GetStatistikNilai)
	nilai.Delete("/:id", nilaiCtrl.DeleteNilai)
}
