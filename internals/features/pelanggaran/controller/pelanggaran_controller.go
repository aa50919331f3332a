// 📁 controller/pelanggaran_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pelanggaran/dto"
	"pesantrenku_backend/internals/features/pelanggaran/model"
	"pesantrenku_backend/internals/features/pelanggaran/service"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
	ossHelper "pesantrenku_backend/internals/helpers/oss"
)

type PelanggaranController struct {
	DB *gorm.DB
}

func NewPelanggaranController(db *gorm.DB) *PelanggaranController {
	return &PelanggaranController{DB: db}
}

// 🟢 POST /api/pelanggaran — multipart, field bukti opsional
func (ctrl *PelanggaranController) CreatePelanggaran(c *fiber.Ctx) error {
	var req dto.CreatePelanggaranRequest
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

	pelanggaran := req.ToModel()

	if fh, err := ossHelper.GetImageFile(c); err == nil && fh != nil {
		svc, err := ossHelper.NewOSSServiceFromEnv("bukti")
		if err != nil {
			log.Printf("[ERROR] oss init: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Storage bukti tidak tersedia")
		}
		url, err := svc.UploadBuktiImage(c.UserContext(), "pelanggaran", fh)
		if err != nil {
			log.Printf("[ERROR] upload bukti pelanggaran: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah bukti")
		}
		pelanggaran.PelanggaranBuktiURL = &url
	}

	if err := ctrl.DB.Create(pelanggaran).Error; err != nil {
		log.Printf("[ERROR] create pelanggaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pelanggaran")
	}
	return helper.JsonCreated(c, "Pelanggaran berhasil dicatat", pelanggaran)
}

// 🔵 GET /api/pelanggaran
func (ctrl *PelanggaranController) GetAllPelanggaran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Pelanggaran{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("pelanggaran_santri_id = ?", santriID)
	}
	if sanksi := c.Query("sanksi"); sanksi != "" {
		q = q.Where("pelanggaran_sanksi = ?", sanksi)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Pelanggaran
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pelanggaran")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil pelanggaran", rows, &p)
}

// 🔵 GET /api/pelanggaran/terbaru?limit=
func (ctrl *PelanggaranController) GetPelanggaranTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Pelanggaran
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pelanggaran")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/pelanggaran/statistik
func (ctrl *PelanggaranController) GetStatistikPelanggaran(c *fiber.Ctx) error {
	stats, err := service.StatistikPelanggaran(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] statistik pelanggaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", stats)
}

// 🔵 GET /api/pelanggaran/ranking — santri dengan pelanggaran terbanyak.
// Pagination dihitung atas jumlah santri distinct, bukan jumlah record.
func (ctrl *PelanggaranController) GetRankingPelanggaran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	rows, pagination, err := helper.RankSantriByChildCount(ctrl.DB, "pelanggarans", "pelanggaran_santri_id", paging)
	if err != nil {
		log.Printf("[ERROR] ranking pelanggaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ranking")
	}
	return helper.JsonList(c, "ok", rows, &pagination)
}

// 🟡 PUT /api/pelanggaran/:id
func (ctrl *PelanggaranController) UpdatePelanggaran(c *fiber.Ctx) error {
	var pelanggaran model.Pelanggaran
	if err := ctrl.DB.Where("pelanggaran_id = ?", c.Params("id")).First(&pelanggaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
	}

	var req dto.UpdatePelanggaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Sanksi != nil {
		pelanggaran.PelanggaranSanksi = *req.Sanksi
	}
	if req.Deskripsi != nil {
		pelanggaran.PelanggaranDeskripsi = *req.Deskripsi
	}

	if err := ctrl.DB.Save(&pelanggaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pelanggaran")
	}
	return helper.JsonUpdated(c, "Pelanggaran berhasil diperbarui", pelanggaran)
}

// 🔴 DELETE /api/pelanggaran/:id — bukti dihapus best-effort
func (ctrl *PelanggaranController) DeletePelanggaran(c *fiber.Ctx) error {
	var pelanggaran model.Pelanggaran
	if err := ctrl.DB.Where("pelanggaran_id = ?", c.Params("id")).First(&pelanggaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggaran tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&pelanggaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pelanggaran")
	}

	if pelanggaran.PelanggaranBuktiURL != nil {
		if err := ossHelper.DeleteByPublicURLENV(*pelanggaran.PelanggaranBuktiURL, 10*time.Second); err != nil {
			log.Printf("[WARN] gagal hapus bukti pelanggaran %s: %v", pelanggaran.PelanggaranID, err)
		}
	}

	return helper.JsonDeleted(c, "Pelanggaran berhasil dihapus", fiber.Map{"pelanggaran_id": pelanggaran.PelanggaranID})
}
