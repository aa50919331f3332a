package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	koperasiController "pesantrenku_backend/internals/features/koperasi/controller"
)

func KoperasiRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := koperasiController.NewKoperasiController(db)

	koperasi := api.Group("/koperasi")
	koperasi.Get("/statistik", ctrl.GetStatistikKoperasi)

	anggota := koperasi.Group("/anggota")
	anggota.Post("/", ctrl.CreateAnggota)
	anggota.Get("/", ctrl.GetAllAnggota)
	anggota.Delete("/:id", ctrl.DeleteAnggota)

	pemasukan := koperasi.Group("/pemasukan")
	pemasukan.Post("/", ctrl.CreatePemasukan)
	pemasukan.Get("/", ctrl.GetAllPemasukan)
	pemasukan.Delete("/:id", ctrl.DeletePemasukan)

	pengeluaran := koperasi.Group("/pengeluaran")
	pengeluaran.Post("/", ctrl.CreatePengeluaran)
	pengeluaran.Get("/", ctrl.GetAllPengeluaran)
	pengeluaran.Delete("/:id", ctrl.DeletePengeluaran)
}
