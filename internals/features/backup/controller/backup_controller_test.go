package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterDescriptor(t *testing.T) {
	assert.Equal(t, "", filterDescriptor())
	assert.Equal(t, "", filterDescriptor("", ""))
	assert.Equal(t, "Kelas 7A", filterDescriptor("Kelas 7A", ""))
	assert.Equal(t, "Madrasah Aliyah", filterDescriptor("", "Madrasah Aliyah"))
	assert.Equal(t, "Kelas 7A Madrasah Tsanawiyah",
		filterDescriptor("Kelas 7A", "Madrasah Tsanawiyah"))
	assert.Equal(t, "Gaji Maret 2025", filterDescriptor("Gaji", "Maret 2025"))
}
