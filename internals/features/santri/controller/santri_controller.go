// 📁 controller/santri_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/santri/dto"
	"pesantrenku_backend/internals/features/santri/model"
	"pesantrenku_backend/internals/features/santri/service"
	helper "pesantrenku_backend/internals/helpers"
)

type SantriController struct {
	DB *gorm.DB
}

func NewSantriController(db *gorm.DB) *SantriController {
	return &SantriController{DB: db}
}

// 🟢 POST /api/santri
func (ctrl *SantriController) CreateSantri(c *fiber.Ctx) error {
	var req dto.CreateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if !constants.ValidKelas(req.Kelas) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode kelas tidak dikenal")
	}

	// NIS harus unik
	var dup int64
	ctrl.DB.Model(&model.Santri{}).Where("santri_nis = ?", req.NIS).Count(&dup)
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
	}

	santri := req.ToModel()
	if err := ctrl.DB.Create(santri).Error; err != nil {
		log.Printf("[ERROR] create santri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data santri")
	}

	return helper.JsonCreated(c, "Santri berhasil ditambahkan", santri)
}

// 🔵 GET /api/santri — list dengan filter & pagination
func (ctrl *SantriController) GetAllSantri(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Santri{})
	if kelas := c.Query("kelas"); kelas != "" {
		q = q.Where("santri_kelas = ?", kelas)
	}
	if tingkatan := c.Query("tingkatan"); tingkatan != "" {
		q = q.Where("santri_tingkatan = ?", tingkatan)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("santri_status = ?", status)
	}
	if jk := c.Query("jenis_kelamin"); jk != "" {
		q = q.Where("santri_jenis_kelamin = ?", jk)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("santri_nama ILIKE ? OR santri_nis ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Santri
	if err := q.Order("santri_tingkatan ASC, santri_kelas ASC, santri_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil data santri", rows, &p)
}

// 🔵 GET /api/santri/terbaru?limit=
func (ctrl *SantriController) GetSantriTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}

	var rows []model.Santri
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/santri/statistik
func (ctrl *SantriController) GetStatistikSantri(c *fiber.Ctx) error {
	stats, err := service.StatistikSantri(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik santri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// 🔵 GET /api/santri/:id
func (ctrl *SantriController) GetSantriByID(c *fiber.Ctx) error {
	var santri model.Santri
	if err := ctrl.DB.Where("santri_id = ?", c.Params("id")).First(&santri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonOK(c, "ok", santri)
}

// 🟡 PUT /api/santri/:id
func (ctrl *SantriController) UpdateSantri(c *fiber.Ctx) error {
	var santri model.Santri
	if err := ctrl.DB.Where("santri_id = ?", c.Params("id")).First(&santri).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var req dto.UpdateSantriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if req.Kelas != nil && !constants.ValidKelas(*req.Kelas) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode kelas tidak dikenal")
	}

	req.ApplyTo(&santri)
	if err := ctrl.DB.Save(&santri).Error; err != nil {
		log.Printf("[ERROR] update santri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data santri")
	}

	return helper.JsonUpdated(c, "Data santri berhasil diperbarui", santri)
}

// 🔴 DELETE /api/santri/:id
func (ctrl *SantriController) DeleteSantri(c *fiber.Ctx) error {
	var santri model.Santri
	if err := ctrl.DB.Where("santri_id = ?", c.Params("id")).First(&santri).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&santri).Error; err != nil {
		log.Printf("[ERROR] delete santri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data santri")
	}

	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"santri_id": santri.SantriID})
}
