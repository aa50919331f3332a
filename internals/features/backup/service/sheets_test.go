package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	excelHelper "pesantrenku_backend/internals/helpers/excel"
)

func namedBuilder(name string) func(*gorm.DB) (excelHelper.Sheet, error) {
	return func(*gorm.DB) (excelHelper.Sheet, error) {
		return excelHelper.Sheet{Name: name}, nil
	}
}

// Builder jalan paralel, tapi urutan sheet hasil harus tetap mengikuti
// urutan daftar builder.
func TestBuildSheetsConcurrentlyUrutanTetap(t *testing.T) {
	builders := []func(*gorm.DB) (excelHelper.Sheet, error){
		namedBuilder("Santri"),
		namedBuilder("Ustadz"),
		namedBuilder("Absensi"),
		namedBuilder("Pembayaran"),
	}

	sheets, err := buildSheetsConcurrently(nil, builders)
	require.NoError(t, err)
	require.Len(t, sheets, 4)
	assert.Equal(t, "Santri", sheets[0].Name)
	assert.Equal(t, "Ustadz", sheets[1].Name)
	assert.Equal(t, "Absensi", sheets[2].Name)
	assert.Equal(t, "Pembayaran", sheets[3].Name)
}

func TestBuildSheetsConcurrentlyPropagasiError(t *testing.T) {
	boom := errors.New("query gagal")
	builders := []func(*gorm.DB) (excelHelper.Sheet, error){
		namedBuilder("Santri"),
		func(*gorm.DB) (excelHelper.Sheet, error) { return excelHelper.Sheet{}, boom },
		namedBuilder("Absensi"),
	}

	sheets, err := buildSheetsConcurrently(nil, builders)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, sheets)
}
