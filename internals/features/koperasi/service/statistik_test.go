package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitungSaldoKoperasi(t *testing.T) {
	assert.Equal(t, 150000.0, HitungSaldoKoperasi(500000, 350000))
	assert.Equal(t, 0.0, HitungSaldoKoperasi(0, 0))
	// buku kas minus dilaporkan apa adanya
	assert.Equal(t, -50000.0, HitungSaldoKoperasi(100000, 150000))
}
