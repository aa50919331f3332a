package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	backupController "pesantrenku_backend/internals/features/backup/controller"
)

func BackupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := backupController.NewBackupController(db)

	// export per-domain dengan filter
	api.Get("/santri/export", ctrl.ExportSantri)
	api.Get("/pelanggaran/export", ctrl.ExportPelanggaran)
	api.Get("/pengeluaran/export", ctrl.ExportPengeluaran)

	backup := api.Group("/backup")
	backup.Get("/all", ctrl.BackupAll)
	backup.Get("/:domain", ctrl.BackupDomain)
}
