package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	// 5 induk, 2 per halaman → 3 halaman (pagination atas grup, bukan record mentah)
	p := BuildPaginationFromPage(5, 1, 2)
	assert.Equal(t, int64(5), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(5, 3, 2)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// kosong → tetap 1 halaman
	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)

	// input ngaco dinormalisasi
	p = BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
