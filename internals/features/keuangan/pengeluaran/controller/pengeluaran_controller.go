// 📁 controller/pengeluaran_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/keuangan/pengeluaran/dto"
	"pesantrenku_backend/internals/features/keuangan/pengeluaran/model"
	"pesantrenku_backend/internals/features/keuangan/pengeluaran/service"
	helper "pesantrenku_backend/internals/helpers"
	ossHelper "pesantrenku_backend/internals/helpers/oss"
)

type PengeluaranController struct {
	DB *gorm.DB
}

func NewPengeluaranController(db *gorm.DB) *PengeluaranController {
	return &PengeluaranController{DB: db}
}

// 🟢 POST /api/pengeluaran
func (ctrl *PengeluaranController) CreatePengeluaran(c *fiber.Ctx) error {
	var req dto.CreatePengeluaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	pengeluaran := req.ToModel()

	if fh, err := ossHelper.GetImageFile(c); err == nil && fh != nil {
		svc, err := ossHelper.NewOSSServiceFromEnv("bukti")
		if err != nil {
			log.Printf("[ERROR] oss init: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Storage bukti tidak tersedia")
		}
		url, err := svc.UploadBuktiImage(c.UserContext(), "pengeluaran", fh)
		if err != nil {
			log.Printf("[ERROR] upload bukti pengeluaran: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah bukti")
		}
		pengeluaran.PengeluaranBuktiURL = &url
	}

	if err := ctrl.DB.Create(pengeluaran).Error; err != nil {
		log.Printf("[ERROR] create pengeluaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", pengeluaran)
}

// 🔵 GET /api/pengeluaran
func (ctrl *PengeluaranController) GetAllPengeluaran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Pengeluaran{})
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("pengeluaran_kategori = ?", kategori)
	}
	if c.Query("year") != "" {
		periode, err := helper.ResolvePeriode(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("pengeluaran_tanggal BETWEEN ? AND ?", periode.Start, periode.End)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Pengeluaran
	if err := q.Order("pengeluaran_tanggal DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil pengeluaran", rows, &p)
}

// 🔵 GET /api/pengeluaran/terbaru?limit=
func (ctrl *PengeluaranController) GetPengeluaranTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Pengeluaran
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengeluaran")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/pengeluaran/statistik?year=&month=
func (ctrl *PengeluaranController) GetStatistikPengeluaran(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := service.StatistikPengeluaran(ctrl.DB, periode)
	if err != nil {
		log.Printf("[ERROR] statistik pengeluaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"period": periode.Label(),
		"stats":  stats,
	})
}

// 🟡 PUT /api/pengeluaran/:id
func (ctrl *PengeluaranController) UpdatePengeluaran(c *fiber.Ctx) error {
	var pengeluaran model.Pengeluaran
	if err := ctrl.DB.Where("pengeluaran_id = ?", c.Params("id")).First(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}

	var req dto.UpdatePengeluaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Nama != nil {
		pengeluaran.PengeluaranNama = *req.Nama
	}
	if req.Kategori != nil {
		pengeluaran.PengeluaranKategori = *req.Kategori
	}
	if req.Jumlah != nil {
		pengeluaran.PengeluaranJumlah = *req.Jumlah
	}
	if req.Tanggal != nil {
		if t, err := time.Parse("2006-01-02", *req.Tanggal); err == nil {
			pengeluaran.PengeluaranTanggal = datatypes.Date(t)
		}
	}

	if err := ctrl.DB.Save(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
	}
	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", pengeluaran)
}

// 🔴 DELETE /api/pengeluaran/:id
func (ctrl *PengeluaranController) DeletePengeluaran(c *fiber.Ctx) error {
	var pengeluaran model.Pengeluaran
	if err := ctrl.DB.Where("pengeluaran_id = ?", c.Params("id")).First(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&pengeluaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}

	// best-effort, record sudah terhapus
	if pengeluaran.PengeluaranBuktiURL != nil {
		if err := ossHelper.DeleteByPublicURLENV(*pengeluaran.PengeluaranBuktiURL, 10*time.Second); err != nil {
			log.Printf("[WARN] gagal hapus bukti pengeluaran %s: %v", pengeluaran.PengeluaranID, err)
		}
	}

	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"pengeluaran_id": pengeluaran.PengeluaranID})
}
