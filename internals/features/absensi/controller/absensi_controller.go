// 📁 controller/absensi_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/absensi/dto"
	"pesantrenku_backend/internals/features/absensi/model"
	"pesantrenku_backend/internals/features/absensi/service"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AbsensiController struct {
	DB *gorm.DB
}

func NewAbsensiController(db *gorm.DB) *AbsensiController {
	return &AbsensiController{DB: db}
}

// 🟢 POST /api/absensi
func (ctrl *AbsensiController) CreateAbsensi(c *fiber.Ctx) error {
	var req dto.CreateAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	// Pastikan santri induknya ada
	var santri santriModel.Santri
	if err := ctrl.DB.Where("santri_id = ?", req.SantriID).First(&santri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}

	absensi := req.ToModel()
	if err := ctrl.DB.Create(absensi).Error; err != nil {
		log.Printf("[ERROR] create absensi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonCreated(c, "Absensi berhasil dicatat", absensi)
}

// 🔵 GET /api/absensi — filter santri_id, tanggal, status + pagination
func (ctrl *AbsensiController) GetAllAbsensi(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Absensi{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("absensi_santri_id = ?", santriID)
	}
	if tanggal := c.Query("tanggal"); tanggal != "" {
		q = q.Where("absensi_tanggal = ?", tanggal)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("absensi_status = ?", status)
	}
	if jenis := c.Query("jenis"); jenis != "" {
		q = q.Where("absensi_jenis = ?", jenis)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Absensi
	if err := q.Order("absensi_tanggal DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil absensi", rows, &p)
}

// 🔵 GET /api/absensi/terbaru?limit=
func (ctrl *AbsensiController) GetAbsensiTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Absensi
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/absensi/statistik?year=&month=
func (ctrl *AbsensiController) GetStatistikAbsensi(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := service.StatistikAbsensi(ctrl.DB, periode)
	if err != nil {
		log.Printf("[ERROR] statistik absensi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"period": periode.Label(),
		"stats":  stats,
	})
}

// 🔵 GET /api/absensi/trend?year=&month= — satu entri per hari kalender
func (ctrl *AbsensiController) GetTrendAbsensi(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if periode.Month == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "parameter month wajib untuk trend harian")
	}

	trend, err := service.TrendAbsensiHarian(ctrl.DB, periode.Year, periode.Month)
	if err != nil {
		log.Printf("[ERROR] trend absensi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung trend")
	}
	return helper.JsonOK(c, "ok", trend)
}

// 🟡 PUT /api/absensi/:id
func (ctrl *AbsensiController) UpdateAbsensi(c *fiber.Ctx) error {
	var absensi model.Absensi
	if err := ctrl.DB.Where("absensi_id = ?", c.Params("id")).First(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}

	var req dto.UpdateAbsensiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Status != nil {
		absensi.AbsensiStatus = *req.Status
	}
	if req.Catatan != nil {
		absensi.AbsensiCatatan = req.Catatan
	}
	if err := ctrl.DB.Save(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui absensi")
	}
	return helper.JsonUpdated(c, "Absensi berhasil diperbarui", absensi)
}

// 🔴 DELETE /api/absensi/:id
func (ctrl *AbsensiController) DeleteAbsensi(c *fiber.Ctx) error {
	var absensi model.Absensi
	if err := ctrl.DB.Where("absensi_id = ?", c.Params("id")).First(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&absensi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"absensi_id": absensi.AbsensiID})
}
