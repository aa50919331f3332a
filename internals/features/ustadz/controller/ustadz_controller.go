// 📁 controller/ustadz_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/ustadz/dto"
	"pesantrenku_backend/internals/features/ustadz/model"
	helper "pesantrenku_backend/internals/helpers"
)

type UstadzController struct {
	DB *gorm.DB
}

func NewUstadzController(db *gorm.DB) *UstadzController {
	return &UstadzController{DB: db}
}

// 🟢 POST /api/ustadz
func (ctrl *UstadzController) CreateUstadz(c *fiber.Ctx) error {
	var req dto.CreateUstadzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.NIK != nil {
		var existing int64
		if err := ctrl.DB.Model(&model.Ustadz{}).
			Where("ustadz_nik = ?", *req.NIK).
			Count(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa NIK")
		}
		if existing > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "NIK sudah terdaftar")
		}
	}

	ustadz := req.ToModel()
	if err := ctrl.DB.Create(ustadz).Error; err != nil {
		log.Printf("[ERROR] create ustadz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ustadz")
	}
	return helper.JsonCreated(c, "Ustadz berhasil didaftarkan", ustadz)
}

// 🔵 GET /api/ustadz?search=
func (ctrl *UstadzController) GetAllUstadz(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Ustadz{})
	if search := c.Query("search"); search != "" {
		q = q.Where("ustadz_nama ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Ustadz
	if err := q.Order("ustadz_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ustadz")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil ustadz", rows, &p)
}

// 🟡 PUT /api/ustadz/:id
func (ctrl *UstadzController) UpdateUstadz(c *fiber.Ctx) error {
	var ustadz model.Ustadz
	if err := ctrl.DB.Where("ustadz_id = ?", c.Params("id")).First(&ustadz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ustadz tidak ditemukan")
	}

	var req dto.UpdateUstadzRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Nama != nil {
		ustadz.UstadzNama = *req.Nama
	}
	if req.NoHP != nil {
		ustadz.UstadzNoHP = req.NoHP
	}
	if req.Alamat != nil {
		ustadz.UstadzAlamat = req.Alamat
	}

	if err := ctrl.DB.Save(&ustadz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ustadz")
	}
	return helper.JsonUpdated(c, "Ustadz berhasil diperbarui", ustadz)
}

// 🔴 DELETE /api/ustadz/:id
func (ctrl *UstadzController) DeleteUstadz(c *fiber.Ctx) error {
	var ustadz model.Ustadz
	if err := ctrl.DB.Where("ustadz_id = ?", c.Params("id")).First(&ustadz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Ustadz tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&ustadz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ustadz")
	}
	return helper.JsonDeleted(c, "Ustadz berhasil dihapus", fiber.Map{"ustadz_id": ustadz.UstadzID})
}

// =======================
// Wali kelas
// =======================

// 🟢 POST /api/ustadz/wali-kelas — satu kelas satu wali per tahun ajaran
func (ctrl *UstadzController) AssignWaliKelas(c *fiber.Ctx) error {
	var req dto.AssignWaliKelasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if !constants.ValidKelas(req.Kelas) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak dikenal")
	}

	var ustadz model.Ustadz
	if err := ctrl.DB.Where("ustadz_id = ?", req.UstadzID).First(&ustadz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ustadz tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa ustadz")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.WaliKelas{}).
		Where("wali_kelas_kelas = ? AND wali_kelas_tahun_ajaran = ?", req.Kelas, req.TahunAjaran).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa wali kelas")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas sudah punya wali untuk tahun ajaran ini")
	}

	wali := req.ToModel()
	if err := ctrl.DB.Create(wali).Error; err != nil {
		log.Printf("[ERROR] assign wali kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan wali kelas")
	}
	return helper.JsonCreated(c, "Wali kelas berhasil ditetapkan", wali)
}

// 🔵 GET /api/ustadz/wali-kelas?tahun_ajaran=
func (ctrl *UstadzController) GetAllWaliKelas(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.WaliKelas{})
	if tahun := c.Query("tahun_ajaran"); tahun != "" {
		q = q.Where("wali_kelas_tahun_ajaran = ?", tahun)
	}
	var rows []model.WaliKelas
	if err := q.Order("wali_kelas_kelas ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wali kelas")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔴 DELETE /api/ustadz/wali-kelas/:id
func (ctrl *UstadzController) DeleteWaliKelas(c *fiber.Ctx) error {
	var wali model.WaliKelas
	if err := ctrl.DB.Where("wali_kelas_id = ?", c.Params("id")).First(&wali).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Wali kelas tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&wali).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus wali kelas")
	}
	return helper.JsonDeleted(c, "Wali kelas berhasil dihapus", fiber.Map{"wali_kelas_id": wali.WaliKelasID})
}
