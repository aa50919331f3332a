// 📁 scheduler/scheduler.go
//
// Backup otomatis: tiap malam jam 02:00 seluruh data di-render ke satu
// workbook lalu diunggah ke OSS. Kegagalan hanya dicatat; backup malam
// berikutnya mencoba lagi.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/backup/service"
	excelHelper "pesantrenku_backend/internals/helpers/excel"
	ossHelper "pesantrenku_backend/internals/helpers/oss"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func StartAutoBackupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 2 * * *", func() {
		if err := runBackup(db); err != nil {
			log.Printf("[ERROR] backup otomatis gagal: %v", err)
		}
	}); err != nil {
		log.Printf("[ERROR] daftar jadwal backup: %v", err)
		return c
	}

	c.Start()
	log.Println("[INFO] ⏱ backup otomatis terjadwal tiap 02:00")
	return c
}

func runBackup(db *gorm.DB) error {
	started := time.Now()

	sheets, err := service.AllSheets(db)
	if err != nil {
		return err
	}
	f, err := excelHelper.BuildWorkbook(sheets)
	if err != nil {
		return err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	oss, err := ossHelper.NewOSSServiceFromEnv("backup")
	if err != nil {
		// OSS belum dikonfigurasi; jangan matikan scheduler
		log.Printf("[WARN] backup otomatis dilewati, OSS tidak tersedia: %v", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	filename := excelHelper.Filename("Backup_Pesantren", "Otomatis", started)
	url, err := oss.UploadBytes(ctx, "backup", filename, xlsxContentType, buf.Bytes())
	if err != nil {
		return err
	}

	log.Printf("[INFO] ✅ backup otomatis terunggah (%s) dalam %s", url, time.Since(started).Round(time.Millisecond))
	return nil
}
