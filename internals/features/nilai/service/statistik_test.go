package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitungRataRataNilai(t *testing.T) {
	rows := []KelasNilaiRow{
		{Kelas: "KELAS_7A", Nilai: 80},
		{Kelas: "KELAS_7A", Nilai: 90},
		{Kelas: "KELAS_8B", Nilai: 70},
	}

	s := HitungRataRataNilai(rows)

	assert.Equal(t, int64(3), s.Total)
	assert.Equal(t, 80.0, s.RataRata)

	// per kelas terurut alfabetis, deterministik
	assert.Len(t, s.PerKelas, 2)
	assert.Equal(t, "KELAS_7A", s.PerKelas[0].Kelas)
	assert.Equal(t, 85.0, s.PerKelas[0].RataRata)
	assert.Equal(t, int64(2), s.PerKelas[0].Jumlah)
	assert.Equal(t, "KELAS_8B", s.PerKelas[1].Kelas)
	assert.Equal(t, 70.0, s.PerKelas[1].RataRata)
}

func TestHitungRataRataNilaiPembulatan(t *testing.T) {
	rows := []KelasNilaiRow{
		{Kelas: "KELAS_7A", Nilai: 80},
		{Kelas: "KELAS_7A", Nilai: 85},
		{Kelas: "KELAS_7A", Nilai: 92},
	}

	s := HitungRataRataNilai(rows)
	assert.Equal(t, 85.67, s.RataRata) // 85.666... → 2 desimal
}

func TestHitungRataRataNilaiKosong(t *testing.T) {
	s := HitungRataRataNilai(nil)

	assert.Equal(t, int64(0), s.Total)
	assert.Equal(t, 0.0, s.RataRata)
	assert.Empty(t, s.PerKelas)
	assert.NotNil(t, s.PerKelas) // JSON: [] bukan null
}
