// 📁 controller/mapel_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/nilai/dto"
	"pesantrenku_backend/internals/features/nilai/model"
	helper "pesantrenku_backend/internals/helpers"
)

type MapelController struct {
	DB *gorm.DB
}

func NewMapelController(db *gorm.DB) *MapelController {
	return &MapelController{DB: db}
}

// 🟢 POST /api/mapel — nama harus unik dalam kelasnya
func (ctrl *MapelController) CreateMapel(c *fiber.Ctx) error {
	var req dto.CreateMapelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if !constants.ValidKelas(req.Kelas) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak dikenal")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.Mapel{}).
		Where("mapel_nama = ? AND mapel_kelas = ?", req.Nama, req.Kelas).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa mapel")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Mapel dengan nama tersebut sudah ada di kelas ini")
	}

	mapel := &model.Mapel{MapelNama: req.Nama, MapelKelas: req.Kelas}
	if err := ctrl.DB.Create(mapel).Error; err != nil {
		log.Printf("[ERROR] create mapel: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", mapel)
}

// 🔵 GET /api/mapel?kelas=
func (ctrl *MapelController) GetAllMapel(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Mapel{})
	if kelas := c.Query("kelas"); kelas != "" {
		q = q.Where("mapel_kelas = ?", kelas)
	}
	var rows []model.Mapel
	if err := q.Order("mapel_kelas ASC, mapel_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil mapel")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔴 DELETE /api/mapel/:id
func (ctrl *MapelController) DeleteMapel(c *fiber.Ctx) error {
	var mapel model.Mapel
	if err := ctrl.DB.Where("mapel_id = ?", c.Params("id")).First(&mapel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&mapel).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	return helper.JsonDeleted(c, "Mapel berhasil dihapus", fiber.Map{"mapel_id": mapel.MapelID})
}

// 🟢 POST /api/ekskul
func (ctrl *MapelController) CreateEkskul(c *fiber.Ctx) error {
	var req dto.CreateEkskulRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var existing int64
	if err := ctrl.DB.Model(&model.Ekskul{}).
		Where("ekskul_nama = ?", req.Nama).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa ekskul")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Ekskul dengan nama tersebut sudah ada")
	}

	ekskul := &model.Ekskul{EkskulNama: req.Nama}
	if err := ctrl.DB.Create(ekskul).Error; err != nil {
		log.Printf("[ERROR] create ekskul: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ekskul")
	}
	return helper.JsonCreated(c, "Ekskul berhasil dibuat", ekskul)
}

// 🔵 GET /api/ekskul
func (ctrl *MapelController) GetAllEkskul(c *fiber.Ctx) error {
	var rows []model.Ekskul
	if err := ctrl.DB.Order("ekskul_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ekskul")
	}
	return helper.JsonOK(c, "ok", rows)
}
