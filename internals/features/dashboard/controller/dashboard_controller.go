// 📁 controller/dashboard_controller.go
//
// Dashboard menggabungkan statistik semua domain untuk satu periode.
// Tiap sub-laporan independen, jadi dihitung paralel lewat errgroup;
// satu sub-laporan gagal berarti seluruh dashboard gagal.
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	absensiService "pesantrenku_backend/internals/features/absensi/service"
	donasiService "pesantrenku_backend/internals/features/donasi/service"
	kesehatanService "pesantrenku_backend/internals/features/kesehatan/service"
	pembayaranService "pesantrenku_backend/internals/features/keuangan/pembayaran/service"
	pengeluaranService "pesantrenku_backend/internals/features/keuangan/pengeluaran/service"
	koperasiService "pesantrenku_backend/internals/features/koperasi/service"
	nilaiService "pesantrenku_backend/internals/features/nilai/service"
	pelanggaranService "pesantrenku_backend/internals/features/pelanggaran/service"
	santriService "pesantrenku_backend/internals/features/santri/service"
	tahfidzService "pesantrenku_backend/internals/features/tahfidz/service"
	helper "pesantrenku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// 🔵 GET /api/dashboard?year=&month=
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// grafik butuh tahun & bulan konkret; periode "sepanjang masa"
	// atau tanpa bulan jatuh ke tahun/bulan berjalan
	chartYear := periode.Year
	if chartYear == 0 {
		chartYear = time.Now().Year()
	}
	chartMonth := periode.Month
	if chartMonth == 0 {
		chartMonth = int(time.Now().Month())
	}

	var (
		siswa          santriService.SantriStats
		pembayaran     pembayaranService.PembayaranStats
		absensi        absensiService.AbsensiStats
		kesehatan      *kesehatanService.KesehatanStats
		pelanggaran    pelanggaranService.PelanggaranStats
		nilai          *nilaiService.NilaiStats
		tahfidz        *tahfidzService.TahfidzStats
		koperasi       *koperasiService.KoperasiStats
		donasi         *donasiService.DonasiStats
		pengeluaran    pengeluaranService.PengeluaranStats
		pembayaranTren []pembayaranService.TrendBulananEntry
		absensiTren    []absensiService.TrendHarianEntry
	)

	g, _ := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		siswa, err = santriService.StatistikSantri(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		pembayaran, err = pembayaranService.StatistikPembayaran(ctrl.DB, periode)
		return
	})
	g.Go(func() (err error) {
		absensi, err = absensiService.StatistikAbsensi(ctrl.DB, periode)
		return
	})
	g.Go(func() (err error) {
		kesehatan, err = kesehatanService.StatistikKesehatan(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		pelanggaran, err = pelanggaranService.StatistikPelanggaran(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		nilai, err = nilaiService.StatistikNilai(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		tahfidz, err = tahfidzService.StatistikTahfidz(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		koperasi, err = koperasiService.StatistikKoperasi(ctrl.DB)
		return
	})
	g.Go(func() (err error) {
		donasi, err = donasiService.StatistikDonasi(ctrl.DB, periode)
		return
	})
	g.Go(func() (err error) {
		pengeluaran, err = pengeluaranService.StatistikPengeluaran(ctrl.DB, periode)
		return
	})
	g.Go(func() (err error) {
		pembayaranTren, err = pembayaranService.TrendPembayaranBulanan(ctrl.DB, chartYear)
		return
	})
	g.Go(func() (err error) {
		absensiTren, err = absensiService.TrendAbsensiHarian(ctrl.DB, chartYear, chartMonth)
		return
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] dashboard: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun dashboard")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"period":      periode.Label(),
		"siswa":       siswa,
		"pembayaran":  pembayaran,
		"absensi":     absensi,
		"kesehatan":   kesehatan,
		"pelanggaran": pelanggaran,
		"nilai":       nilai,
		"tahfidz":     tahfidz,
		"koperasi":    koperasi,
		"donasi":      donasi,
		"pengeluaran": pengeluaran,
		"charts": fiber.Map{
			"pembayaranTrend": pembayaranTren,
			"absensiTrend":    absensiTren,
		},
	})
}
