package helper

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // kabisat
	assert.Equal(t, 30, DaysInMonth(2025, 4))
	assert.Equal(t, 28, DaysInMonth(2100, 2)) // abad non-kabisat
}

func TestNewPeriodeBulan(t *testing.T) {
	p := NewPeriode(2025, 3)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC), p.End)
	assert.False(t, p.All)
	assert.Equal(t, "Maret 2025", p.Label())
}

func TestNewPeriodeSetahun(t *testing.T) {
	p := NewPeriode(2025, 0)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), p.End)
	assert.Equal(t, "2025", p.Label())
}

func TestPeriodeLabelSemua(t *testing.T) {
	assert.Equal(t, "Semua", Periode{All: true}.Label())
}

func resolveVia(t *testing.T, target string) (Periode, error) {
	t.Helper()

	app := fiber.New()
	var got Periode
	var gotErr error
	app.Get("/t", func(c *fiber.Ctx) error {
		got, gotErr = ResolvePeriode(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	return got, gotErr
}

func TestResolvePeriode(t *testing.T) {
	p, err := resolveVia(t, "/t?year=2025&month=3")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, 3, p.Month)

	// tanpa year & month → sepanjang masa, bukan tahun berjalan
	p, err = resolveVia(t, "/t")
	require.NoError(t, err)
	assert.True(t, p.All)
	assert.True(t, p.Start.IsZero())
	assert.True(t, p.End.IsZero())
	assert.Equal(t, "Semua", p.Label())

	// year saja → satu tahun penuh
	p, err = resolveVia(t, "/t?year=2025")
	require.NoError(t, err)
	assert.False(t, p.All)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), p.End)

	// month saja → bulan tsb di tahun berjalan
	p, err = resolveVia(t, "/t?month=2")
	require.NoError(t, err)
	assert.False(t, p.All)
	assert.Equal(t, time.Now().Year(), p.Year)
	assert.Equal(t, 2, p.Month)

	// month di luar 1..12 ditolak, bukan di-clamp
	_, err = resolveVia(t, "/t?year=2025&month=13")
	assert.Error(t, err)
	_, err = resolveVia(t, "/t?year=2025&month=0")
	assert.Error(t, err)
	_, err = resolveVia(t, "/t?year=abc")
	assert.Error(t, err)
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "17-08-2025", FormatTanggal(time.Date(2025, 8, 17, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", FormatTanggal(time.Time{}))
}

func TestRatioPercent(t *testing.T) {
	assert.Equal(t, 0, RatioPercent(0, 0))
	assert.Equal(t, 0, RatioPercent(5, 0))
	assert.Equal(t, 100, RatioPercent(7, 7))
	assert.Equal(t, 43, RatioPercent(3, 7)) // 42.857 → half-up 43
	assert.Equal(t, 50, RatioPercent(1, 2))
	assert.Equal(t, 33, RatioPercent(1, 3))
}

func TestNamaBulan(t *testing.T) {
	assert.Equal(t, "Januari", NamaBulan(1))
	assert.Equal(t, "Desember", NamaBulan(12))
	assert.Equal(t, "-", NamaBulan(0))
	assert.Equal(t, "-", NamaBulan(13))
}
