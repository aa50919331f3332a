// file: internals/features/santri/service/statistik.go
package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
)

// GenderStatusRow adalah proyeksi minimal satu santri untuk statistik.
type GenderStatusRow struct {
	JenisKelamin string
	Status       string
}

type StatusBreakdown struct {
	Aktif      int64 `json:"aktif"`
	TidakAktif int64 `json:"tidakAktif"`
	Lulus      int64 `json:"lulus"`
}

func (b *StatusBreakdown) add(status string) {
	switch status {
	case constants.StatusSantriAktif:
		b.Aktif++
	case constants.StatusSantriTidakAktif:
		b.TidakAktif++
	case constants.StatusSantriLulus:
		b.Lulus++
	}
}

// SantriStats: total, per-gender, dan cross-tab (status × gender).
// Invarian: breakdown.total.* menjumlah ke total; santri.* ke putra;
// santriwati.* ke putri.
type SantriStats struct {
	Total     int64 `json:"total"`
	Putra     int64 `json:"putra"`
	Putri     int64 `json:"putri"`
	Breakdown struct {
		Total      StatusBreakdown `json:"total"`
		Santri     StatusBreakdown `json:"santri"`
		Santriwati StatusBreakdown `json:"santriwati"`
	} `json:"breakdown"`
}

// HitungBreakdownSantri mereduksi baris proyeksi menjadi statistik.
// Murni in-memory: bisa dites tanpa database.
func HitungBreakdownSantri(rows []GenderStatusRow) SantriStats {
	var stats SantriStats
	for _, r := range rows {
		stats.Total++
		stats.Breakdown.Total.add(r.Status)
		switch r.JenisKelamin {
		case constants.JenisKelaminPutra:
			stats.Putra++
			stats.Breakdown.Santri.add(r.Status)
		case constants.JenisKelaminPutri:
			stats.Putri++
			stats.Breakdown.Santriwati.add(r.Status)
		}
	}
	return stats
}

// StatistikSantri mengambil proyeksi (jenis kelamin, status) lalu
// mereduksinya. Tanpa baris → semua angka 0, bukan error.
func StatistikSantri(db *gorm.DB) (SantriStats, error) {
	var rows []GenderStatusRow
	err := db.Table("santris").
		Select("santri_jenis_kelamin AS jenis_kelamin, santri_status AS status").
		Where("deleted_at IS NULL").
		Scan(&rows).Error
	if err != nil {
		return SantriStats{}, err
	}
	return HitungBreakdownSantri(rows), nil
}
