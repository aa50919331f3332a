package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pembayaranController "pesantrenku_backend/internals/features/keuangan/pembayaran/controller"
)

func PembayaranRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := pembayaranController.NewPembayaranController(db)

	pembayaran := api.Group("/pembayaran")
	pembayaran.Post("/", ctrl.CreatePembayaran)
	pembayaran.Get("/", ctrl.GetAllPembayaran)
	pembayaran.Get("/terbaru", ctrl.GetPembayaranTerbaru)
	pembayaran.Get("/statistik", ctrl.GetStatistikPembayaran)
	pembayaran.Get("/trend", ctrl.GetTrendPembayaran)
	pembayaran.Put("/:id", ctrl.UpdatePembayaran)
	pembayaran.Delete("/:id", ctrl.DeletePembayaran)
}
