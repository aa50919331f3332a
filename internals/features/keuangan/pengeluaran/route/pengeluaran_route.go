package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pengeluaranController "pesantrenku_backend/internals/features/keuangan/pengeluaran/controller"
)

func PengeluaranRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pengeluaranController.NewPengeluaranController(db)

	pengeluaran := api.Group("/pengeluaran")
	pengeluaran.Post("/", ctrl.CreatePengeluaran)
	pengeluaran.Get("/", ctrl.GetAllPengeluaran)
	pengeluaran.Get("/terbaru", ctrl.GetPengeluaranTerbaru)
	pengeluaran.Get("/statistik", ctrl.GetStatistikPengeluaran)
	pengeluaran.Put("/:id", ctrl.UpdatePengeluaran)
	pengeluaran.Delete("/:id", ctrl.DeletePengeluaran)
}
