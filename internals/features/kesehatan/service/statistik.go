package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/kesehatan/model"
)

type KesehatanStats struct {
	Total         int64 `json:"total"`
	SantriTerdata int64 `json:"santriTerdata"`
}

// StatistikKesehatan menghitung total record pemeriksaan dan jumlah
// santri distinct yang punya minimal satu record.
func StatistikKesehatan(db *gorm.DB) (*KesehatanStats, error) {
	var stats KesehatanStats

	if err := db.Model(&model.Kesehatan{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Kesehatan{}).
		Distinct("kesehatan_santri_id").
		Count(&stats.SantriTerdata).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
