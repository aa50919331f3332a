package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/donasi/model"
	helper "pesantrenku_backend/internals/helpers"
)

type DonasiStats struct {
	TotalNominal   int64 `json:"totalNominal"`
	TotalTransaksi int64 `json:"totalTransaksi"`
}

// StatistikDonasi menjumlahkan donasi berstatus completed dalam periode.
// Donasi pending/failed tidak masuk hitungan.
func StatistikDonasi(db *gorm.DB, p helper.Periode) (*DonasiStats, error) {
	base := func() *gorm.DB {
		q := db.Model(&model.Donasi{}).Where("donasi_status = ?", "completed")
		if !p.All {
			q = q.Where("donasi_paid_at BETWEEN ? AND ?", p.Start, p.End)
		}
		return q
	}

	var stats DonasiStats
	if err := base().Count(&stats.TotalTransaksi).Error; err != nil {
		return nil, err
	}
	if err := base().Select("COALESCE(SUM(donasi_nominal), 0)").
		Scan(&stats.TotalNominal).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
