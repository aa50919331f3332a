package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitungModalSurahKosong(t *testing.T) {
	assert.Nil(t, HitungModalSurah(nil))
	assert.Nil(t, HitungModalSurah([]int{}))
}

func TestHitungModalSurah(t *testing.T) {
	m := HitungModalSurah([]int{78, 1, 78, 36, 78, 1})

	assert.Equal(t, 78, m.Surah)
	assert.Equal(t, int64(3), m.Jumlah)
}

// seri jumlah → nomor surah terkecil menang, deterministik
func TestHitungModalSurahSeri(t *testing.T) {
	m := HitungModalSurah([]int{114, 1, 114, 1})

	assert.Equal(t, 1, m.Surah)
	assert.Equal(t, int64(2), m.Jumlah)
}

func TestHitungModalSurahSatuSetoran(t *testing.T) {
	m := HitungModalSurah([]int{67})

	assert.Equal(t, 67, m.Surah)
	assert.Equal(t, int64(1), m.Jumlah)
}
