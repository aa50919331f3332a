// 📁 internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	absensiRoute "pesantrenku_backend/internals/features/absensi/route"
	backupRoute "pesantrenku_backend/internals/features/backup/route"
	dashboardRoute "pesantrenku_backend/internals/features/dashboard/route"
	donasiRoute "pesantrenku_backend/internals/features/donasi/route"
	kesehatanRoute "pesantrenku_backend/internals/features/kesehatan/route"
	pembayaranRoute "pesantrenku_backend/internals/features/keuangan/pembayaran/route"
	pengeluaranRoute "pesantrenku_backend/internals/features/keuangan/pengeluaran/route"
	koperasiRoute "pesantrenku_backend/internals/features/koperasi/route"
	nilaiRoute "pesantrenku_backend/internals/features/nilai/route"
	pelanggaranRoute "pesantrenku_backend/internals/features/pelanggaran/route"
	santriRoute "pesantrenku_backend/internals/features/santri/route"
	tahfidzRoute "pesantrenku_backend/internals/features/tahfidz/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
	ustadzRoute "pesantrenku_backend/internals/features/ustadz/route"
	"pesantrenku_backend/internals/middlewares"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route fitur di bawah /api.
// Selain login dan webhook Midtrans, semuanya butuh JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	protected := api.Group("/", authMiddleware.AuthMiddleware(db))

	// export/backup lebih berat; rate limit tersendiri.
	// Harus terdaftar sebelum route :id supaya "/export" tidak
	// tertangkap sebagai parameter.
	export := protected.Group("/", middlewares.ExportRateLimiter())
	backupRoute.BackupRoutes(export, db)

	dashboardRoute.DashboardRoutes(protected, db)
	santriRoute.SantriRoutes(protected, db)
	pelanggaranRoute.PelanggaranRoutes(protected, db)
	kesehatanRoute.KesehatanRoutes(protected, db)
	ustadzRoute.UstadzRoutes(protected, db)

	// fitur akademik: admin & ustadz
	akademik := protected.Group("/", authMiddleware.OnlyRoles(
		"Khusus admin dan ustadz",
		constants.RoleAdmin, constants.RoleUstadz,
	))
	absensiRoute.AbsensiRoutes(akademik, db)
	nilaiRoute.NilaiRoutes(akademik, db)
	tahfidzRoute.TahfidzRoutes(akademik, db)

	// fitur keuangan: admin & bendahara
	keuangan := protected.Group("/", authMiddleware.OnlyRoles(
		"Khusus admin dan bendahara",
		constants.RoleAdmin, constants.RoleBendahara,
	))
	pembayaranRoute.PembayaranRoutes(keuangan, db)
	pengeluaranRoute.PengeluaranRoutes(keuangan, db)
	koperasiRoute.KoperasiRoutes(keuangan, db)

	// donasi: create & webhook publik, sisanya tetap kena auth
	// lewat skip-path di AuthMiddleware
	donasiRoute.DonasiRoutes(protected, db)
}
