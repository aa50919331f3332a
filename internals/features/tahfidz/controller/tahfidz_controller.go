// 📁 controller/tahfidz_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	santriModel "pesantrenku_backend/internals/features/santri/model"
	"pesantrenku_backend/internals/features/tahfidz/dto"
	"pesantrenku_backend/internals/features/tahfidz/model"
	"pesantrenku_backend/internals/features/tahfidz/service"
	helper "pesantrenku_backend/internals/helpers"
)

type TahfidzController struct {
	DB *gorm.DB
}

func NewTahfidzController(db *gorm.DB) *TahfidzController {
	return &TahfidzController{DB: db}
}

// 🟢 POST /api/tahfidz
func (ctrl *TahfidzController) CreateTahfidz(c *fiber.Ctx) error {
	var req dto.CreateTahfidzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var santri santriModel.Santri
	if err := ctrl.DB.Where("santri_id = ?", req.SantriID).First(&santri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}

	tahfidz := req.ToModel()
	if err := ctrl.DB.Create(tahfidz).Error; err != nil {
		log.Printf("[ERROR] create tahfidz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran")
	}
	return helper.JsonCreated(c, "Setoran berhasil dicatat", tahfidz)
}

// 🔵 GET /api/tahfidz?santri_id=&surah=
func (ctrl *TahfidzController) GetAllTahfidz(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Tahfidz{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("tahfidz_santri_id = ?", santriID)
	}
	if surah := c.QueryInt("surah", 0); surah >= 1 && surah <= 114 {
		q = q.Where("tahfidz_surah = ?", surah)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Tahfidz
	if err := q.Order("tahfidz_tanggal DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil setoran", rows, &p)
}

// 🔵 GET /api/tahfidz/terbaru?limit=
func (ctrl *TahfidzController) GetTahfidzTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Tahfidz
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/tahfidz/statistik
func (ctrl *TahfidzController) GetStatistikTahfidz(c *fiber.Ctx) error {
	stats, err := service.StatistikTahfidz(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik tahfidz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// 🟡 PUT /api/tahfidz/:id
func (ctrl *TahfidzController) UpdateTahfidz(c *fiber.Ctx) error {
	var tahfidz model.Tahfidz
	if err := ctrl.DB.Where("tahfidz_id = ?", c.Params("id")).First(&tahfidz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}

	var req dto.UpdateTahfidzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Surah != nil {
		tahfidz.TahfidzSurah = *req.Surah
	}
	if req.Nilai != nil {
		tahfidz.TahfidzNilai = req.Nilai
	}
	if req.Tanggal != nil {
		if t, err := time.Parse("2006-01-02", *req.Tanggal); err == nil {
			tahfidz.TahfidzTanggal = datatypes.Date(t)
		}
	}

	if err := ctrl.DB.Save(&tahfidz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui setoran")
	}
	return helper.JsonUpdated(c, "Setoran berhasil diperbarui", tahfidz)
}

// 🔴 DELETE /api/tahfidz/:id
func (ctrl *TahfidzController) DeleteTahfidz(c *fiber.Ctx) error {
	var tahfidz model.Tahfidz
	if err := ctrl.DB.Where("tahfidz_id = ?", c.Params("id")).First(&tahfidz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&tahfidz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	return helper.JsonDeleted(c, "Setoran berhasil dihapus", fiber.Map{"tahfidz_id": tahfidz.TahfidzID})
}
