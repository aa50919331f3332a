// 📁 controller/backup_controller.go
package controller

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	"pesantrenku_backend/internals/features/backup/service"
	helper "pesantrenku_backend/internals/helpers"
	excelHelper "pesantrenku_backend/internals/helpers/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BackupController struct {
	DB *gorm.DB
}

func NewBackupController(db *gorm.DB) *BackupController {
	return &BackupController{DB: db}
}

// filterDescriptor menggabungkan bagian filter aktif jadi satu
// descriptor nama file; bagian kosong dilewati.
func filterDescriptor(parts ...string) string {
	active := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			active = append(active, p)
		}
	}
	return strings.Join(active, " ")
}

func sendWorkbook(c *fiber.Ctx, sheets []excelHelper.Sheet, prefix, filter string) error {
	f, err := excelHelper.BuildWorkbook(sheets)
	if err != nil {
		log.Printf("[ERROR] build workbook %s: %v", prefix, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[ERROR] tulis workbook %s: %v", prefix, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis file Excel")
	}

	filename := excelHelper.Filename(prefix, filter, time.Now())
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%s`, filename))
	return c.Send(buf.Bytes())
}

// 🔵 GET /api/backup/:domain
func (ctrl *BackupController) BackupDomain(c *fiber.Ctx) error {
	domain := c.Params("domain")

	builders := map[string]func(*gorm.DB) (excelHelper.Sheet, error){
		"santri":     func(db *gorm.DB) (excelHelper.Sheet, error) { return service.SantriSheet(db, "", "") },
		"ustadz":     service.UstadzSheet,
		"absensi":    service.AbsensiSheet,
		"pembayaran": service.PembayaranSheet,
		"pengeluaran": func(db *gorm.DB) (excelHelper.Sheet, error) {
			return service.PengeluaranSheet(db, "", helper.Periode{All: true})
		},
		"pelanggaran": func(db *gorm.DB) (excelHelper.Sheet, error) { return service.PelanggaranSheet(db, "") },
		"kesehatan":   service.KesehatanSheet,
		"tahfidz":     service.TahfidzSheet,
		"nilai":       service.NilaiSheet,
		"donasi":      service.DonasiSheet,
	}

	build, ok := builders[domain]
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Domain backup tidak dikenal")
	}

	sheet, err := build(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] backup %s: %v", domain, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data backup")
	}
	return sendWorkbook(c, []excelHelper.Sheet{sheet}, "Backup_"+sheet.Name, "")
}

// 🔵 GET /api/backup/all — satu workbook multi-sheet, urutan tetap
func (ctrl *BackupController) BackupAll(c *fiber.Ctx) error {
	sheets, err := service.AllSheets(ctrl.DB)
	if err != nil {
		log.Printf("[ERROR] backup all: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data backup")
	}
	return sendWorkbook(c, sheets, "Backup_Pesantren", "")
}

// 🔵 GET /api/santri/export?kelas=&tingkatan=
func (ctrl *BackupController) ExportSantri(c *fiber.Ctx) error {
	kelas := c.Query("kelas")
	if kelas != "" && !constants.ValidKelas(kelas) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak dikenal")
	}
	tingkatan := c.Query("tingkatan")
	if tingkatan != "" && !constants.ValidTingkatan(tingkatan) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tingkatan tidak dikenal")
	}

	sheet, err := service.SantriSheet(ctrl.DB, kelas, tingkatan)
	if err != nil {
		log.Printf("[ERROR] export santri: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	var kelasLabel, tingkatanLabel string
	if kelas != "" {
		kelasLabel = constants.Label(constants.KelasLabels, kelas)
	}
	if tingkatan != "" {
		tingkatanLabel = constants.Label(constants.TingkatanLabels, tingkatan)
	}
	return sendWorkbook(c, []excelHelper.Sheet{sheet}, "Data_Santri",
		filterDescriptor(kelasLabel, tingkatanLabel))
}

// 🔵 GET /api/pelanggaran/export?santri_id=
// Nama file memakai nama santri; kalau santri tidak ketemu,
// export tetap jalan dengan descriptor generik.
func (ctrl *BackupController) ExportPelanggaran(c *fiber.Ctx) error {
	santriID := c.Query("santri_id")

	sheet, err := service.PelanggaranSheet(ctrl.DB, santriID)
	if err != nil {
		log.Printf("[ERROR] export pelanggaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pelanggaran")
	}

	filter := ""
	if santriID != "" {
		var nama string
		if err := ctrl.DB.Table("santris").
			Select("santri_nama").
			Where("santri_id = ?", santriID).
			Scan(&nama).Error; err != nil || nama == "" {
			log.Printf("[WARN] nama santri %s tidak ketemu untuk nama file export", santriID)
			filter = "Santri"
		} else {
			filter = nama
		}
	}
	return sendWorkbook(c, []excelHelper.Sheet{sheet}, "Data_Pelanggaran", filter)
}

// 🔵 GET /api/pengeluaran/export?kategori=&year=&month=
func (ctrl *BackupController) ExportPengeluaran(c *fiber.Ctx) error {
	kategori := c.Query("kategori")
	if kategori != "" && !constants.ValidKategoriPengeluaran(kategori) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
	}
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sheet, err := service.PengeluaranSheet(ctrl.DB, kategori, periode)
	if err != nil {
		log.Printf("[ERROR] export pengeluaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	var kategoriLabel, periodeLabel string
	if kategori != "" {
		kategoriLabel = constants.Label(constants.KategoriPengeluaranLabels, kategori)
	}
	if !periode.All {
		periodeLabel = periode.Label()
	}
	return sendWorkbook(c, []excelHelper.Sheet{sheet}, "Data_Pengeluaran",
		filterDescriptor(kategoriLabel, periodeLabel))
}
