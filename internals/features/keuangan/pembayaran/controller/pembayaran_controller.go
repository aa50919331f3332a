// 📁 controller/pembayaran_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/keuangan/pembayaran/dto"
	"pesantrenku_backend/internals/features/keuangan/pembayaran/model"
	"pesantrenku_backend/internals/features/keuangan/pembayaran/service"
	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"
	ossHelper "pesantrenku_backend/internals/helpers/oss"
)

type PembayaranController struct {
	DB *gorm.DB
}

func NewPembayaranController(db *gorm.DB) *PembayaranController {
	return &PembayaranController{DB: db}
}

// 🟢 POST /api/pembayaran — multipart (field bukti opsional) atau JSON
func (ctrl *PembayaranController) CreatePembayaran(c *fiber.Ctx) error {
	var req dto.CreatePembayaranRequest
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

	pembayaran := req.ToModel()

	// 📎 Upload bukti kalau ada di form (field bukti/file/image)
	if fh, err := ossHelper.GetImageFile(c); err == nil && fh != nil {
		svc, err := ossHelper.NewOSSServiceFromEnv("bukti")
		if err != nil {
			log.Printf("[ERROR] oss init: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Storage bukti tidak tersedia")
		}
		url, err := svc.UploadBuktiImage(c.UserContext(), "pembayaran", fh)
		if err != nil {
			log.Printf("[ERROR] upload bukti pembayaran: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah bukti")
		}
		pembayaran.PembayaranBuktiURL = &url
	}

	if err := ctrl.DB.Create(pembayaran).Error; err != nil {
		log.Printf("[ERROR] create pembayaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", pembayaran)
}

// 🔵 GET /api/pembayaran
func (ctrl *PembayaranController) GetAllPembayaran(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Pembayaran{})
	if santriID := c.Query("santri_id"); santriID != "" {
		q = q.Where("pembayaran_santri_id = ?", santriID)
	}
	if periode, err := helper.ResolvePeriode(c); err == nil && c.Query("year") != "" {
		q = q.Where("pembayaran_tanggal BETWEEN ? AND ?", periode.Start, periode.End)
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Pembayaran
	if err := q.Order("pembayaran_tanggal DESC, created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil pembayaran", rows, &p)
}

// 🔵 GET /api/pembayaran/terbaru?limit=
func (ctrl *PembayaranController) GetPembayaranTerbaru(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 50 {
		limit = 5
	}
	var rows []model.Pembayaran
	if err := ctrl.DB.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}
	return helper.JsonOK(c, "ok", rows)
}

// 🔵 GET /api/pembayaran/statistik?year=&month=
func (ctrl *PembayaranController) GetStatistikPembayaran(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := service.StatistikPembayaran(ctrl.DB, periode)
	if err != nil {
		log.Printf("[ERROR] statistik pembayaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"period": periode.Label(),
		"stats":  stats,
	})
}

// 🔵 GET /api/pembayaran/trend?year= — tepat 12 entri
func (ctrl *PembayaranController) GetTrendPembayaran(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// tanpa year → trend tahun berjalan
	year := periode.Year
	if periode.All {
		year = time.Now().Year()
	}

	trend, err := service.TrendPembayaranBulanan(ctrl.DB, year)
	if err != nil {
		log.Printf("[ERROR] trend pembayaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung trend")
	}
	return helper.JsonOK(c, "ok", trend)
}

// 🟡 PUT /api/pembayaran/:id
func (ctrl *PembayaranController) UpdatePembayaran(c *fiber.Ctx) error {
	var pembayaran model.Pembayaran
	if err := ctrl.DB.Where("pembayaran_id = ?", c.Params("id")).First(&pembayaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	var req dto.UpdatePembayaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.Tanggal != nil {
		if t, err := time.Parse("2006-01-02", *req.Tanggal); err == nil {
			pembayaran.PembayaranTanggal = datatypes.Date(t)
		}
	}
	if req.Infaq != nil {
		pembayaran.PembayaranInfaq = *req.Infaq
	}
	if req.Laundry != nil {
		pembayaran.PembayaranLaundry = *req.Laundry
	}

	if err := ctrl.DB.Save(&pembayaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pembayaran")
	}
	return helper.JsonUpdated(c, "Pembayaran berhasil diperbarui", pembayaran)
}

// 🔴 DELETE /api/pembayaran/:id — bukti dihapus best-effort
func (ctrl *PembayaranController) DeletePembayaran(c *fiber.Ctx) error {
	var pembayaran model.Pembayaran
	if err := ctrl.DB.Where("pembayaran_id = ?", c.Params("id")).First(&pembayaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&pembayaran).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pembayaran")
	}

	// Gagal hapus bukti tidak membatalkan delete record (file jadi orphan,
	// tradeoff yang diterima).
	if pembayaran.PembayaranBuktiURL != nil {
		if err := ossHelper.DeleteByPublicURLENV(*pembayaran.PembayaranBuktiURL, 10*time.Second); err != nil {
			log.Printf("[WARN] gagal hapus bukti pembayaran %s: %v", pembayaran.PembayaranID, err)
		}
	}

	return helper.JsonDeleted(c, "Pembayaran berhasil dihapus", fiber.Map{"pembayaran_id": pembayaran.PembayaranID})
}
