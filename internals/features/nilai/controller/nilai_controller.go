// 📁 controller/nilai_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/features/nilai/dto"
	"pesantrenku_backend/internals/features/nilai/model"
	"pesantrenku_backend/internals/features/nilai/service"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
)

type NilaiController struct {
	DB *gorm.DB
}

func NewNilaiController(db *gorm.DB) *NilaiController {
	return &NilaiController{DB: db}
}

func (ctrl *NilaiController) santriExists(id string) (bool, error) {
	var santri santriModel.Santri
	if err := ctrl.DB.Where("santri_id = ?", id).First(&santri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// 🟢 POST /api/nilai — upsert per (santri, mapel, semester, tahun ajaran)
func (ctrl *NilaiController) UpsertNilai(c *fiber.Ctx) error {
	var req dto.UpsertNilaiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	ok, err := ctrl.santriExists(req.SantriID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var mapel model.Mapel
	if err := ctrl.DB.Where("mapel_id = ?", req.MapelID).First(&mapel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}

	nilai := req.ToModel()
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "nilai_santri_id"},
			{Name: "nilai_mapel_id"},
			{Name: "nilai_semester"},
			{Name: "nilai_tahun_ajaran"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"nilai_nilai", "updated_at"}),
	}).Create(nilai).Error; err != nil {
		log.Printf("[ERROR] upsert nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Nilai berhasil disimpan", nilai)
}

// 🟢 POST /api/nilai/ekskul — upsert per (santri, ekskul, semester, tahun ajaran)
func (ctrl *NilaiController) UpsertNilaiEkskul(c *fiber.Ctx) error {
	var req dto.UpsertNilaiEkskulRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	ok, err := ctrl.santriExists(req.SantriID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}

	var ekskul model.Ekskul
	if err := ctrl.DB.Where("ekskul_id = ?", req.EkskulID).First(&ekskul).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ekskul tidak ditemukan")
	}

	nilai := req.ToModel()
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "nilai_ekskul_santri_id"},
			{Name: "nilai_ekskul_ekskul_id"},
			{Name: "nilai_ekskul_semester"},
			{Name: "nilai_ekskul_tahun_ajaran"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"nilai_ekskul_nilai", "updated_at"}),
	}).Create(nilai).Error; err != nil {
		log.Printf("[ERROR] upsert nilai ekskul: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai ekskul")
	}
	return helper.JsonCreated(c, "Nilai ekskul berhasil disimpan", nilai)
}

// 🔵 GET /api/nilai?santri_id=&semester=&tahun_ajaran=
func (ctrl *NilaiController) GetAllNilai(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Nilai{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("nilai_santri_id = ?", santriID)
	}
	if semester := c.Query("semester"); semester != "" {
		q = q.Where("nilai_semester = ?", semester)
	}
	if tahun := c.Query("tahun_ajaran"); tahun != "" {
		q = q.Where("nilai_tahun_ajaran = ?", tahun)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Nilai
	if err := q.Order("updated_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil nilai", rows, &p)
}

// 🔵 GET /api/nilai/terbaru?limit=
func (ctrl *NilaiController) GetNilaiTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Nilai
	if err := ctrl.DB.Order("updated_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/nilai/statistik — rata-rata keseluruhan + per kelas
func (ctrl *NilaiController) GetStatistikNilai(c *fiber.Ctx) error {
	stats, err := service.StatistikNilai(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik nilai: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// 🔴 DELETE /api/nilai/:id
func (ctrl *NilaiController) DeleteNilai(c *fiber.Ctx) error {
	var nilai model.Nilai
	if err := ctrl.DB.Where("nilai_id = ?", c.Params("id")).First(&nilai).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&nilai).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"nilai_id": nilai.NilaiID})
}
