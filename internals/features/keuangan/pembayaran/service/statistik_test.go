package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tgl(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestHitungStatistikPembayaran(t *testing.T) {
	rows := []PembayaranRow{
		{Infaq: 50000, Laundry: 15000, Tanggal: tgl(2025, 3, 3)},
		{Infaq: 30000, Laundry: 5000, Tanggal: tgl(2025, 3, 20)},
	}

	s := HitungStatistikPembayaran(rows)

	assert.Equal(t, float64(100000), s.TotalNominal)
	assert.Equal(t, int64(2), s.TotalTransaksi)
	assert.Equal(t, float64(80000), s.ByJenis.Infaq)
	assert.Equal(t, float64(20000), s.ByJenis.Laundry)
}

func TestHitungStatistikPembayaranKosong(t *testing.T) {
	s := HitungStatistikPembayaran(nil)

	assert.Equal(t, float64(0), s.TotalNominal)
	assert.Equal(t, int64(0), s.TotalTransaksi)
}

func TestHitungTrendBulanan(t *testing.T) {
	rows := []PembayaranRow{
		{Infaq: 50000, Laundry: 0, Tanggal: tgl(2025, 1, 10)},
		{Infaq: 25000, Laundry: 5000, Tanggal: tgl(2025, 1, 20)},
		{Infaq: 10000, Laundry: 0, Tanggal: tgl(2025, 12, 31)},
		// tahun lain, harus diabaikan
		{Infaq: 99999, Laundry: 0, Tanggal: tgl(2024, 6, 1)},
	}

	trend := HitungTrendBulanan(2025, rows)

	// selalu tepat 12 entri, bulan 1..12
	assert.Len(t, trend, 12)
	for i, e := range trend {
		assert.Equal(t, i+1, e.Bulan)
	}

	assert.Equal(t, float64(80000), trend[0].Total)
	assert.Equal(t, int64(2), trend[0].Transaksi)
	assert.Equal(t, float64(10000), trend[11].Total)
	// bulan tanpa transaksi tetap muncul dengan nilai 0
	assert.Equal(t, float64(0), trend[5].Total)
	assert.Equal(t, int64(0), trend[5].Transaksi)
}
