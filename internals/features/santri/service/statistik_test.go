package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/constants"
)

func TestHitungBreakdownSantri(t *testing.T) {
	rows := []GenderStatusRow{
		{constants.JenisKelaminPutra, constants.StatusSantriAktif},
		{constants.JenisKelaminPutra, constants.StatusSantriAktif},
		{constants.JenisKelaminPutra, constants.StatusSantriLulus},
		{constants.JenisKelaminPutri, constants.StatusSantriAktif},
		{constants.JenisKelaminPutri, constants.StatusSantriTidakAktif},
	}

	stats := HitungBreakdownSantri(rows)

	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(3), stats.Putra)
	assert.Equal(t, int64(2), stats.Putri)

	assert.Equal(t, int64(3), stats.Breakdown.Total.Aktif)
	assert.Equal(t, int64(1), stats.Breakdown.Total.TidakAktif)
	assert.Equal(t, int64(1), stats.Breakdown.Total.Lulus)

	assert.Equal(t, int64(2), stats.Breakdown.Santri.Aktif)
	assert.Equal(t, int64(1), stats.Breakdown.Santri.Lulus)
	assert.Equal(t, int64(1), stats.Breakdown.Santriwati.Aktif)
	assert.Equal(t, int64(1), stats.Breakdown.Santriwati.TidakAktif)
}

// breakdown harus konsisten: sel-sel menjumlah kembali ke totalnya
func TestBreakdownKonsisten(t *testing.T) {
	rows := []GenderStatusRow{
		{constants.JenisKelaminPutra, constants.StatusSantriAktif},
		{constants.JenisKelaminPutri, constants.StatusSantriLulus},
		{constants.JenisKelaminPutra, constants.StatusSantriTidakAktif},
		{constants.JenisKelaminPutri, constants.StatusSantriAktif},
		{constants.JenisKelaminPutri, constants.StatusSantriAktif},
	}

	stats := HitungBreakdownSantri(rows)

	sum := func(b StatusBreakdown) int64 { return b.Aktif + b.TidakAktif + b.Lulus }
	assert.Equal(t, stats.Total, sum(stats.Breakdown.Total))
	assert.Equal(t, stats.Putra, sum(stats.Breakdown.Santri))
	assert.Equal(t, stats.Putri, sum(stats.Breakdown.Santriwati))
	assert.Equal(t, stats.Total, stats.Putra+stats.Putri)
}

func TestBreakdownTanpaData(t *testing.T) {
	stats := HitungBreakdownSantri(nil)

	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Putra)
	assert.Equal(t, int64(0), stats.Putri)
	assert.Equal(t, int64(0), stats.Breakdown.Total.Aktif)
}
