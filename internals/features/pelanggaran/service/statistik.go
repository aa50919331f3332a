// file: internals/features/pelanggaran/service/statistik.go
package service

import (
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
)

type PelanggaranStats struct {
	Stats map[string]int64 `json:"stats"` // semua 6 sanksi selalu ada
	Total int64            `json:"total"`
}

// HitungStatistikPelanggaran mereduksi daftar sanksi menjadi hitungan
// per tingkat. Murni; semua kunci sanksi selalu muncul (0 jika kosong).
func HitungStatistikPelanggaran(sanksis []string) PelanggaranStats {
	s := PelanggaranStats{Stats: make(map[string]int64, len(constants.SanksiList))}
	for _, k := range constants.SanksiList {
		s.Stats[k] = 0
	}
	for _, sanksi := range sanksis {
		if _, ok := s.Stats[sanksi]; ok {
			s.Stats[sanksi]++
			s.Total++
		}
	}
	return s
}

// StatistikPelanggaran mengambil kolom sanksi lalu mereduksi in-memory.
func StatistikPelanggaran(db *gorm.DB) (PelanggaranStats, error) {
	var sanksis []string
	err := db.Table("pelanggarans").
		Where("deleted_at IS NULL").
		Pluck("pelanggaran_sanksi", &sanksis).Error
	if err != nil {
		return PelanggaranStats{}, err
	}
	return HitungStatistikPelanggaran(sanksis), nil
}
