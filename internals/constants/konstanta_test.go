package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaftarKodeLengkap(t *testing.T) {
	// 9 jenjang × 3 rombel
	assert.Len(t, KelasList, 27)
	assert.Len(t, KelasLabels, 27)
	for _, k := range KelasList {
		assert.Contains(t, KelasLabels, k)
	}

	assert.Len(t, SanksiList, 6)
	assert.Len(t, StatusAbsensiList, 4)
	assert.Len(t, KategoriPengeluaranList, 5)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Kelas 7A", Label(KelasLabels, "KELAS_7A"))
	assert.Equal(t, "Surat Peringatan 1", Label(SanksiLabels, "SP1"))

	// kode tak dikenal dikembalikan apa adanya, bukan error
	assert.Equal(t, "KODE_ASING", Label(KelasLabels, "KODE_ASING"))
	// kosong → placeholder
	assert.Equal(t, "-", Label(KelasLabels, ""))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidKelas("KELAS_1A"))
	assert.False(t, ValidKelas("KELAS_10A"))

	assert.True(t, ValidSanksi("SP3"))
	assert.False(t, ValidSanksi("sp3"))

	assert.True(t, ValidStatusAbsensi("HADIR"))
	assert.False(t, ValidStatusAbsensi("BOLOS"))

	assert.True(t, ValidKategoriPengeluaran("KONSUMSI"))
	assert.False(t, ValidKategoriPengeluaran("JAJAN"))
}
