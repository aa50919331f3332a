package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/constants"
)

func tgl(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestHitungStatistikAbsensi(t *testing.T) {
	rows := []StatusTanggalRow{
		{constants.AbsensiHadir, tgl(2025, 3, 1)},
		{constants.AbsensiHadir, tgl(2025, 3, 2)},
		{constants.AbsensiHadir, tgl(2025, 3, 3)},
		{constants.AbsensiIzin, tgl(2025, 3, 3)},
		{constants.AbsensiSakit, tgl(2025, 3, 4)},
		{constants.AbsensiAlpha, tgl(2025, 3, 5)},
		{constants.AbsensiAlpha, tgl(2025, 3, 6)},
	}

	s := HitungStatistikAbsensi(rows)

	assert.Equal(t, int64(7), s.Total)
	assert.Equal(t, int64(3), s.Hadir)
	assert.Equal(t, int64(1), s.Izin)
	assert.Equal(t, int64(1), s.Sakit)
	assert.Equal(t, int64(2), s.Alpha)
	assert.Equal(t, 43, s.HadirRate) // 3/7 = 42.86 → half-up 43
}

func TestHitungStatistikAbsensiKosong(t *testing.T) {
	s := HitungStatistikAbsensi(nil)

	assert.Equal(t, int64(0), s.Total)
	assert.Equal(t, 0, s.HadirRate)
}

func TestHitungTrendHarianLengkap(t *testing.T) {
	rows := []StatusTanggalRow{
		{constants.AbsensiHadir, tgl(2025, 2, 1)},
		{constants.AbsensiHadir, tgl(2025, 2, 1)},
		{constants.AbsensiIzin, tgl(2025, 2, 14)},
		{constants.AbsensiAlpha, tgl(2025, 2, 28)},
		// luar periode, harus diabaikan
		{constants.AbsensiHadir, tgl(2025, 3, 1)},
		{constants.AbsensiHadir, tgl(2024, 2, 1)},
	}

	trend := HitungTrendHarian(2025, 2, rows)

	// Februari 2025 bukan kabisat → tepat 28 entri, tanggal 1..28
	assert.Len(t, trend, 28)
	for i, e := range trend {
		assert.Equal(t, i+1, e.Tanggal)
	}

	assert.Equal(t, int64(2), trend[0].Hadir)
	assert.Equal(t, int64(1), trend[13].Izin)
	assert.Equal(t, int64(1), trend[27].Alpha)
	// hari tanpa data tetap muncul dengan nilai 0
	assert.Equal(t, int64(0), trend[9].Hadir)
}

func TestHitungTrendHarianKabisat(t *testing.T) {
	trend := HitungTrendHarian(2024, 2, nil)
	assert.Len(t, trend, 29)
	assert.Equal(t, 29, trend[28].Tanggal)
}
