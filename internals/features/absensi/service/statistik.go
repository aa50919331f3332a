// file: internals/features/absensi/service/statistik.go
//
// Reduksi statistik absensi: dikerjakan in-memory atas proyeksi baris
// (status, tanggal) supaya murni dan bisa dites tanpa database.
package service

import (
	"time"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
)

type StatusTanggalRow struct {
	Status  string
	Tanggal time.Time
}

type AbsensiStats struct {
	Total     int64 `json:"total"`
	Hadir     int64 `json:"hadir"`
	Izin      int64 `json:"izin"`
	Sakit     int64 `json:"sakit"`
	Alpha     int64 `json:"alpha"`
	HadirRate int   `json:"hadirRate"` // round(hadir/total*100), 0 jika total 0
}

// HitungStatistikAbsensi mereduksi baris menjadi hitungan per status +
// persentase kehadiran (half-up). Kosong → semua 0.
func HitungStatistikAbsensi(rows []StatusTanggalRow) AbsensiStats {
	var s AbsensiStats
	for _, r := range rows {
		s.Total++
		switch r.Status {
		case constants.AbsensiHadir:
			s.Hadir++
		case constants.AbsensiIzin:
			s.Izin++
		case constants.AbsensiSakit:
			s.Sakit++
		case constants.AbsensiAlpha:
			s.Alpha++
		}
	}
	s.HadirRate = helper.RatioPercent(s.Hadir, s.Total)
	return s
}

type TrendHarianEntry struct {
	Tanggal int   `json:"tanggal"`
	Hadir   int64 `json:"hadir"`
	Izin    int64 `json:"izin"`
	Sakit   int64 `json:"sakit"`
	Alpha   int64 `json:"alpha"`
}

// HitungTrendHarian menghasilkan tepat daysInMonth entri (1..N) untuk
// (year, month) — hari tanpa data tetap muncul dengan nilai 0.
func HitungTrendHarian(year, month int, rows []StatusTanggalRow) []TrendHarianEntry {
	days := helper.DaysInMonth(year, month)
	out := make([]TrendHarianEntry, days)
	for i := range out {
		out[i].Tanggal = i + 1
	}
	for _, r := range rows {
		if r.Tanggal.Year() != year || int(r.Tanggal.Month()) != month {
			continue
		}
		e := &out[r.Tanggal.Day()-1]
		switch r.Status {
		case constants.AbsensiHadir:
			e.Hadir++
		case constants.AbsensiIzin:
			e.Izin++
		case constants.AbsensiSakit:
			e.Sakit++
		case constants.AbsensiAlpha:
			e.Alpha++
		}
	}
	return out
}

func fetchRows(db *gorm.DB, p helper.Periode) ([]StatusTanggalRow, error) {
	q := db.Table("absensis").
		Select("absensi_status AS status, absensi_tanggal AS tanggal").
		Where("deleted_at IS NULL")
	if !p.All {
		q = q.Where("absensi_tanggal BETWEEN ? AND ?", p.Start, p.End)
	}
	var rows []StatusTanggalRow
	return rows, q.Scan(&rows).Error
}

// StatistikAbsensi: hitungan per status + hadirRate untuk satu periode.
func StatistikAbsensi(db *gorm.DB, p helper.Periode) (AbsensiStats, error) {
	rows, err := fetchRows(db, p)
	if err != nil {
		return AbsensiStats{}, err
	}
	return HitungStatistikAbsensi(rows), nil
}

// TrendAbsensiHarian: satu entri per hari kalender bulan tsb.
func TrendAbsensiHarian(db *gorm.DB, year, month int) ([]TrendHarianEntry, error) {
	rows, err := fetchRows(db, helper.NewPeriode(year, month))
	if err != nil {
		return nil, err
	}
	return HitungTrendHarian(year, month, rows), nil
}
