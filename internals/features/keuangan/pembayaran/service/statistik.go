// file: internals/features/keuangan/pembayaran/service/statistik.go
//
// Penjumlahan pembayaran dikerjakan in-memory atas baris proyeksi
// (bukan agregat sisi DB): hasil tidak tergantung urutan baris dan
// himpunan kosong menjumlah ke 0.
package service

import (
	"time"

	"gorm.io/gorm"

	helper "pesantrenku_backend/internals/helpers"
)

type PembayaranRow struct {
	Infaq   float64
	Laundry float64
	Tanggal time.Time
}

type PembayaranStats struct {
	TotalNominal   float64 `json:"totalNominal"`
	TotalTransaksi int64   `json:"totalTransaksi"`
	ByJenis        struct {
		Infaq   float64 `json:"infaq"`
		Laundry float64 `json:"laundry"`
	} `json:"byJenis"`
}

// HitungStatistikPembayaran menjumlah nominal per jenis. Murni.
func HitungStatistikPembayaran(rows []PembayaranRow) PembayaranStats {
	var s PembayaranStats
	for _, r := range rows {
		s.TotalTransaksi++
		s.ByJenis.Infaq += r.Infaq
		s.ByJenis.Laundry += r.Laundry
	}
	s.TotalNominal = s.ByJenis.Infaq + s.ByJenis.Laundry
	return s
}

type TrendBulananEntry struct {
	Bulan     int     `json:"bulan"`
	Total     float64 `json:"total"`
	Transaksi int64   `json:"transaksi"`
}

// HitungTrendBulanan menghasilkan tepat 12 entri (bulan 1..12) untuk
// satu tahun — bulan tanpa transaksi tetap muncul dengan nilai 0.
func HitungTrendBulanan(year int, rows []PembayaranRow) []TrendBulananEntry {
	out := make([]TrendBulananEntry, 12)
	for i := range out {
		out[i].Bulan = i + 1
	}
	for _, r := range rows {
		if r.Tanggal.Year() != year {
			continue
		}
		e := &out[int(r.Tanggal.Month())-1]
		e.Total += r.Infaq + r.Laundry
		e.Transaksi++
	}
	return out
}

func fetchRows(db *gorm.DB, p helper.Periode) ([]PembayaranRow, error) {
	q := db.Table("pembayarans").
		Select("pembayaran_infaq AS infaq, pembayaran_laundry AS laundry, pembayaran_tanggal AS tanggal").
		Where("deleted_at IS NULL")
	if !p.All {
		q = q.Where("pembayaran_tanggal BETWEEN ? AND ?", p.Start, p.End)
	}
	var rows []PembayaranRow
	return rows, q.Scan(&rows).Error
}

// StatistikPembayaran: total nominal + transaksi + rincian jenis untuk
// satu periode.
func StatistikPembayaran(db *gorm.DB, p helper.Periode) (PembayaranStats, error) {
	rows, err := fetchRows(db, p)
	if err != nil {
		return PembayaranStats{}, err
	}
	return HitungStatistikPembayaran(rows), nil
}

// TrendPembayaranBulanan: 12 entri untuk satu tahun.
func TrendPembayaranBulanan(db *gorm.DB, year int) ([]TrendBulananEntry, error) {
	rows, err := fetchRows(db, helper.NewPeriode(year, 0))
	if err != nil {
		return nil, err
	}
	return HitungTrendBulanan(year, rows), nil
}
