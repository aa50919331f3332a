// file: internals/features/keuangan/pengeluaran/service/statistik.go
package service

import (
	"time"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
)

type PengeluaranRow struct {
	Kategori string
	Jumlah   float64
	Tanggal  time.Time
}

type PengeluaranStats struct {
	Total      float64            `json:"total"`
	Transaksi  int64              `json:"transaksi"`
	ByKategori map[string]float64 `json:"byKategori"` // semua kategori selalu ada, 0 jika kosong
}

// HitungStatistikPengeluaran: jumlah per kategori, in-memory, murni.
// Setiap kategori yang dikenal selalu muncul di map (0 jika tanpa data).
func HitungStatistikPengeluaran(rows []PengeluaranRow) PengeluaranStats {
	s := PengeluaranStats{ByKategori: make(map[string]float64, len(constants.KategoriPengeluaranList))}
	for _, k := range constants.KategoriPengeluaranList {
		s.ByKategori[k] = 0
	}
	for _, r := range rows {
		s.Transaksi++
		s.Total += r.Jumlah
		s.ByKategori[r.Kategori] += r.Jumlah
	}
	return s
}

// StatistikPengeluaran untuk satu periode.
func StatistikPengeluaran(db *gorm.DB, p helper.Periode) (PengeluaranStats, error) {
	q := db.Table("pengeluarans").
		Select("pengeluaran_kategori AS kategori, pengeluaran_jumlah AS jumlah, pengeluaran_tanggal AS tanggal").
		Where("deleted_at IS NULL")
	if !p.All {
		q = q.Where("pengeluaran_tanggal BETWEEN ? AND ?", p.Start, p.End)
	}
	var rows []PengeluaranRow
	if err := q.Scan(&rows).Error; err != nil {
		return PengeluaranStats{}, err
	}
	return HitungStatistikPengeluaran(rows), nil
}
