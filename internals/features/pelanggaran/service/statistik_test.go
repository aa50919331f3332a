package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pesantrenku_backend/internals/constants"
)

func TestHitungStatistikPelanggaran(t *testing.T) {
	s := HitungStatistikPelanggaran([]string{
		constants.SanksiRingan,
		constants.SanksiRingan,
		constants.SanksiBerat,
	})

	assert.Equal(t, int64(3), s.Total)
	assert.Equal(t, int64(2), s.Stats[constants.SanksiRingan])
	assert.Equal(t, int64(1), s.Stats[constants.SanksiBerat])

	// semua 6 tingkat sanksi selalu ada di map
	assert.Len(t, s.Stats, len(constants.SanksiList))
	assert.Equal(t, int64(0), s.Stats[constants.SanksiSedang])
	assert.Equal(t, int64(0), s.Stats[constants.SanksiSP1])
	assert.Equal(t, int64(0), s.Stats[constants.SanksiSP2])
	assert.Equal(t, int64(0), s.Stats[constants.SanksiSP3])
}

func TestHitungStatistikPelanggaranKosong(t *testing.T) {
	s := HitungStatistikPelanggaran(nil)

	assert.Equal(t, int64(0), s.Total)
	assert.Len(t, s.Stats, 6)
}

func TestSanksiTakDikenalDiabaikan(t *testing.T) {
	s := HitungStatistikPelanggaran([]string{"NGACO", constants.SanksiRingan})

	assert.Equal(t, int64(1), s.Total)
	assert.Len(t, s.Stats, 6)
}
