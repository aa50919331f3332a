// 📁 controller/kesehatan_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/kesehatan/dto"
	"pesantrenku_backend/internals/features/kesehatan/model"
	"pesantrenku_backend/internals/features/kesehatan/service"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type KesehatanController struct {
	DB *gorm.DB
}

func NewKesehatanController(db *gorm.DB) *KesehatanController {
	return &KesehatanController{DB: db}
}

// 🟢 POST /api/kesehatan
func (ctrl *KesehatanController) CreateKesehatan(c *fiber.Ctx) error {
	var req dto.CreateKesehatanRequest
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

	kesehatan := req.ToModel()
	if err := ctrl.DB.Create(kesehatan).Error; err != nil {
		log.Printf("[ERROR] create kesehatan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data kesehatan")
	}
	return helper.JsonCreated(c, "Data kesehatan berhasil disimpan", kesehatan)
}

// 🔵 GET /api/kesehatan
func (ctrl *KesehatanController) GetAllKesehatan(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Kesehatan{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("kesehatan_santri_id = ?", santriID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Kesehatan
	if err := q.Order("kesehatan_tanggal_periksa DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kesehatan")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil data kesehatan", rows, &p)
}

// 🔵 GET /api/kesehatan/terbaru?limit=
func (ctrl *KesehatanController) GetKesehatanTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Kesehatan
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kesehatan")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/kesehatan/statistik
func (ctrl *KesehatanController) GetStatistikKesehatan(c *fiber.Ctx) error {
	stats, err := service.StatistikKesehatan(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik kesehatan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// 🔵 GET /api/kesehatan/ranking — santri dengan riwayat periksa terbanyak
func (ctrl *KesehatanController) GetRankingKesehatan(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	rows, pagination, err := helper.RankSantriByChildCount(ctrl.DB, "kesehatans", "kesehatan_santri_id", paging)
	if err != nil {
		log.Printf("[ERROR] ranking kesehatan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ranking")
	}
	return helper.JsonList(c, "ok", rows, &pagination)
}

// 🟡 PUT /api/kesehatan/:id
func (ctrl *KesehatanController) UpdateKesehatan(c *fiber.Ctx) error {
	var kesehatan model.Kesehatan
	if err := ctrl.DB.Where("kesehatan_id = ?", c.Params("id")).First(&kesehatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data kesehatan tidak ditemukan")
	}

	var req dto.UpdateKesehatanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.JenisAsuransi != nil {
		kesehatan.KesehatanJenisAsuransi = req.JenisAsuransi
	}
	if req.NomorAsuransi != nil {
		kesehatan.KesehatanNomorAsuransi = req.NomorAsuransi
	}
	if req.RiwayatSakit != nil {
		kesehatan.KesehatanRiwayatSakit = *req.RiwayatSakit
	}
	if req.TanggalPeriksa != nil {
		if t, err := time.Parse("2006-01-02", *req.TanggalPeriksa); err == nil {
			kesehatan.KesehatanTanggalPeriksa = datatypes.Date(t)
		}
	}

	if err := ctrl.DB.Save(&kesehatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data kesehatan")
	}
	return helper.JsonUpdated(c, "Data kesehatan berhasil diperbarui", kesehatan)
}

// 🔴 DELETE /api/kesehatan/:id
func (ctrl *KesehatanController) DeleteKesehatan(c *fiber.Ctx) error {
	var kesehatan model.Kesehatan
	if err := ctrl.DB.Where("kesehatan_id = ?", c.Params("id")).First(&kesehatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Data kesehatan tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&kesehatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data kesehatan")
	}
	return helper.JsonDeleted(c, "Data kesehatan berhasil dihapus", fiber.Map{"kesehatan_id": kesehatan.KesehatanID})
}
