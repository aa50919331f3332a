package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/constants"
)

func TestHitungStatistikPengeluaran(t *testing.T) {
	now := time.Now()
	rows := []PengeluaranRow{
		{Kategori: constants.PengeluaranKonsumsi, Jumlah: 250000, Tanggal: now},
		{Kategori: constants.PengeluaranKonsumsi, Jumlah: 150000, Tanggal: now},
		{Kategori: constants.PengeluaranGaji, Jumlah: 2000000, Tanggal: now},
	}

	s := HitungStatistikPengeluaran(rows)

	assert.Equal(t, float64(2400000), s.Total)
	assert.Equal(t, int64(3), s.Transaksi)
	assert.Equal(t, float64(400000), s.ByKategori[constants.PengeluaranKonsumsi])
	assert.Equal(t, float64(2000000), s.ByKategori[constants.PengeluaranGaji])

	// kategori tanpa transaksi tetap muncul dengan 0
	assert.Equal(t, float64(0), s.ByKategori[constants.PengeluaranOperasional])
	assert.Len(t, s.ByKategori, len(constants.KategoriPengeluaranList))
}

func TestHitungStatistikPengeluaranKosong(t *testing.T) {
	s := HitungStatistikPengeluaran(nil)

	assert.Equal(t, float64(0), s.Total)
	assert.Len(t, s.ByKategori, len(constants.KategoriPengeluaranList))
	for _, k := range constants.KategoriPengeluaranList {
		assert.Equal(t, float64(0), s.ByKategori[k])
	}
}
