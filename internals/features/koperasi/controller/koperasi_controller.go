// 📁 controller/koperasi_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/koperasi/dto"
	"pesantrenku_backend/internals/features/koperasi/model"
	"pesantrenku_backend/internals/features/koperasi/service"
	helper "pesantrenku_backend/internals/helpers"
)

type KoperasiController struct {
	DB *gorm.DB
}

func NewKoperasiController(db *gorm.DB) *KoperasiController {
	return &KoperasiController{DB: db}
}

// =======================
// Anggota
// =======================

// 🟢 POST /api/koperasi/anggota
func (ctrl *KoperasiController) CreateAnggota(c *fiber.Ctx) error {
	var req dto.CreateAnggotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	anggota := req.ToModel()
	if err := ctrl.DB.Create(anggota).Error; err != nil {
		log.Printf("[ERROR] create anggota koperasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil didaftarkan", anggota)
}

// 🔵 GET /api/koperasi/anggota
func (ctrl *KoperasiController) GetAllAnggota(c *fiber.Ctx) error {
	var rows []model.KoperasiAnggota
	if err := ctrl.DB.Order("anggota_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔴 DELETE /api/koperasi/anggota/:id
func (ctrl *KoperasiController) DeleteAnggota(c *fiber.Ctx) error {
	var anggota model.KoperasiAnggota
	if err := ctrl.DB.Where("anggota_id = ?", c.Params("id")).First(&anggota).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&anggota).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"anggota_id": anggota.AnggotaID})
}

// =======================
// Pemasukan
// =======================

// 🟢 POST /api/koperasi/pemasukan — anggota wajib ada
func (ctrl *KoperasiController) CreatePemasukan(c *fiber.Ctx) error {
	var req dto.CreatePemasukanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var anggota model.KoperasiAnggota
	if err := ctrl.DB.Where("anggota_id = ?", req.AnggotaID).First(&anggota).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa anggota")
	}

	pemasukan := req.ToModel()
	if err := ctrl.DB.Create(pemasukan).Error; err != nil {
		log.Printf("[ERROR] create pemasukan koperasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pemasukan")
	}
	return helper.JsonCreated(c, "Pemasukan berhasil dicatat", pemasukan)
}

// 🔵 GET /api/koperasi/pemasukan
func (ctrl *KoperasiController) GetAllPemasukan(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.KoperasiPemasukan{})
	if anggotaID := c.Query("anggota_id"); anggotaID != "" {
		q = q.Where("pemasukan_anggota_id = ?", anggotaID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.KoperasiPemasukan
	if err := q.Order("pemasukan_tanggal DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pemasukan")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil pemasukan", rows, &p)
}

// 🔴 DELETE /api/koperasi/pemasukan/:id
func (ctrl *KoperasiController) DeletePemasukan(c *fiber.Ctx) error {
	var pemasukan model.KoperasiPemasukan
	if err := ctrl.DB.Where("pemasukan_id = ?", c.Params("id")).First(&pemasukan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pemasukan tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&pemasukan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pemasukan")
	}
	return helper.JsonDeleted(c, "Pemasukan berhasil dihapus", fiber.Map{"pemasukan_id": pemasukan.PemasukanID})
}

// =======================
// Pengeluaran
// =======================

// 🟢 POST /api/koperasi/pengeluaran
func (ctrl *KoperasiController) CreatePengeluaran(c *fiber.Ctx) error {
	var req dto.CreatePengeluaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	pengeluaran := req.ToModel()
	if err := ctrl.DB.Create(pengeluaran).Error; err != nil {
		log.Printf("[ERROR] create pengeluaran koperasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", pengeluaran)
}

// 🔵 GET /api/koperasi/pengeluaran
func (ctrl *KoperasiController) GetAllPengeluaran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.KoperasiPengeluaran{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.KoperasiPengeluaran
	if err := q.Order("pengeluaran_tanggal DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil pengeluaran", rows, &p)
}

// 🔴 DELETE /api/koperasi/pengeluaran/:id
func (ctrl *KoperasiController) DeletePengeluaran(c *fiber.Ctx) error {
	var pengeluaran model.KoperasiPengeluaran
	if err := ctrl.DB.Where("pengeluaran_id = ?", c.Params("id")).First(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}
	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"pengeluaran_id": pengeluaran.PengeluaranID})
}

// =======================
// Statistik
// =======================

// 🔵 GET /api/koperasi/statistik — saldo = pemasukan − pengeluaran
func (ctrl *KoperasiController) GetStatistikKoperasi(c *fiber.Ctx) error {
	stats, err := service.StatistikKoperasi(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik koperasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}
