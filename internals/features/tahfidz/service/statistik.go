package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/tahfidz/model"
)

type ModalSurah struct {
	Surah  int   `json:"surah"`
	Jumlah int64 `json:"jumlah"`
}

type TahfidzStats struct {
	Total         int64       `json:"total"`
	SantriSetoran int64       `json:"santriSetoran"`
	ModalSurah    *ModalSurah `json:"modalSurah"` // nil bila belum ada setoran
}

// HitungModalSurah mencari surah yang paling sering disetor.
// Seri jumlah dipecah deterministik: ambil nomor surah terkecil.
func HitungModalSurah(surahs []int) *ModalSurah {
	if len(surahs) == 0 {
		return nil
	}
	counts := map[int]int64{}
	for _, s := range surahs {
		counts[s]++
	}
	best := ModalSurah{Surah: 0, Jumlah: 0}
	for surah, jumlah := range counts {
		if jumlah > best.Jumlah || (jumlah == best.Jumlah && surah < best.Surah) {
			best = ModalSurah{Surah: surah, Jumlah: jumlah}
		}
	}
	return &best
}

func StatistikTahfidz(db *gorm.DB) (*TahfidzStats, error) {
	var stats TahfidzStats

	if err := db.Model(&model.Tahfidz{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Tahfidz{}).
		Distinct("tahfidz_santri_id").
		Count(&stats.SantriSetoran).Error; err != nil {
		return nil, err
	}

	var surahs []int
	if err := db.Model(&model.Tahfidz{}).
		Pluck("tahfidz_surah", &surahs).Error; err != nil {
		return nil, err
	}
	stats.ModalSurah = HitungModalSurah(surahs)

	return &stats, nil
}
