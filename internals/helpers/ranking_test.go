package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMergeRankedSantri(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	idHilang := uuid.New()

	groups := []rankedGroup{
		{SantriID: idA, Jumlah: 5},
		{SantriID: idHilang, Jumlah: 3},
		{SantriID: idB, Jumlah: 1},
	}
	idents := []santriIdent{
		{SantriID: idB, NIS: "2023002", Nama: "Budi", Kelas: "8A"},
		{SantriID: idA, NIS: "2023001", Nama: "Ahmad", Kelas: "7A"},
	}

	out := mergeRankedSantri(groups, idents)
	assert.Len(t, out, 3)

	// urutan group dipertahankan, identitas nempel di baris yang benar
	assert.Equal(t, "Ahmad", out[0].Nama)
	assert.Equal(t, "2023001", out[0].NIS)
	assert.Equal(t, "7A", out[0].Kelas)
	assert.Equal(t, int64(5), out[0].Jumlah)

	// santri induk hilang → nama generik, count tetap tampil
	assert.Equal(t, "(santri tidak ditemukan)", out[1].Nama)
	assert.Equal(t, "", out[1].NIS)
	assert.Equal(t, int64(3), out[1].Jumlah)

	assert.Equal(t, "Budi", out[2].Nama)
	assert.Equal(t, int64(1), out[2].Jumlah)
}

func TestMergeRankedSantriKosong(t *testing.T) {
	out := mergeRankedSantri(nil, nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Total & totalPages ranking dihitung dari jumlah santri distinct yang
// punya record, bukan dari jumlah record mentah: 5 santri @ limit 2 → 3
// halaman, berapa pun jumlah record anaknya.
func TestRankingPaginationPerSantri(t *testing.T) {
	p := BuildPaginationFromPage(5, 1, 2)
	assert.Equal(t, int64(5), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(5, 3, 2)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
