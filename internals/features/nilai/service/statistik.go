package service

import (
	"math"
	"sort"

	"gorm.io/gorm"
)

// Proyeksi baris nilai + kelas santrinya; cukup untuk
// menghitung rata-rata tanpa membawa kolom lain.
type KelasNilaiRow struct {
	Kelas string
	Nilai float64
}

type KelasRataRata struct {
	Kelas    string  `json:"kelas"`
	Jumlah   int64   `json:"jumlah"`
	RataRata float64 `json:"rataRata"`
}

type NilaiStats struct {
	Total    int64           `json:"total"`
	RataRata float64         `json:"rataRata"`
	PerKelas []KelasRataRata `json:"perKelas"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HitungRataRataNilai mereduksi baris nilai menjadi rata-rata keseluruhan
// dan rata-rata per kelas. Tanpa data: total 0, rataRata 0, perKelas kosong.
func HitungRataRataNilai(rows []KelasNilaiRow) *NilaiStats {
	stats := &NilaiStats{PerKelas: []KelasRataRata{}}
	if len(rows) == 0 {
		return stats
	}

	var sum float64
	sumPerKelas := map[string]float64{}
	countPerKelas := map[string]int64{}
	for _, r := range rows {
		sum += r.Nilai
		sumPerKelas[r.Kelas] += r.Nilai
		countPerKelas[r.Kelas]++
	}

	stats.Total = int64(len(rows))
	stats.RataRata = round2(sum / float64(len(rows)))

	kelasList := make([]string, 0, len(sumPerKelas))
	for kelas := range sumPerKelas {
		kelasList = append(kelasList, kelas)
	}
	sort.Strings(kelasList)
	for _, kelas := range kelasList {
		stats.PerKelas = append(stats.PerKelas, KelasRataRata{
			Kelas:    kelas,
			Jumlah:   countPerKelas[kelas],
			RataRata: round2(sumPerKelas[kelas] / float64(countPerKelas[kelas])),
		})
	}
	return stats
}

// StatistikNilai memproyeksikan (kelas, nilai) via join ke santris
// lalu mereduksi di memori.
func StatistikNilai(db *gorm.DB) (*NilaiStats, error) {
	var rows []KelasNilaiRow
	if err := db.Table("nilais").
		Select("santris.santri_kelas AS kelas, nilais.nilai_nilai AS nilai").
		Joins("JOIN santris ON santris.santri_id = nilais.nilai_santri_id").
		Where("nilais.deleted_at IS NULL").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return HitungRataRataNilai(rows), nil
}
