package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/koperasi/model"
)

type KoperasiStats struct {
	TotalAnggota     int64   `json:"totalAnggota"`
	TotalPemasukan   float64 `json:"totalPemasukan"`
	TotalPengeluaran float64 `json:"totalPengeluaran"`
	Saldo            float64 `json:"saldo"`
}

// HitungSaldoKoperasi: saldo = pemasukan − pengeluaran. Disengaja boleh
// negatif; buku kas yang minus tetap dilaporkan apa adanya.
func HitungSaldoKoperasi(pemasukan, pengeluaran float64) float64 {
	return pemasukan - pengeluaran
}

func StatistikKoperasi(db *gorm.DB) (*KoperasiStats, error) {
	var stats KoperasiStats

	if err := db.Model(&model.KoperasiAnggota{}).Count(&stats.TotalAnggota).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.KoperasiPemasukan{}).
		Select("COALESCE(SUM(pemasukan_nominal), 0)").
		Scan(&stats.TotalPemasukan).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.KoperasiPengeluaran{}).
		Select("COALESCE(SUM(pengeluaran_nominal), 0)").
		Scan(&stats.TotalPengeluaran).Error; err != nil {
		return nil, err
	}
	stats.Saldo = HitungSaldoKoperasi(stats.TotalPemasukan, stats.TotalPengeluaran)

	return &stats, nil
}
