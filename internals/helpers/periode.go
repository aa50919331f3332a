// file: internals/helpers/periode.go
package helper

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Periode adalah rentang waktu inklusif untuk statistik & laporan.
// Month == 0 artinya satu tahun penuh / sepanjang masa (lihat ResolvePeriode).
type Periode struct {
	Year  int
	Month int // 0 = tanpa filter bulan
	Start time.Time
	End   time.Time
	All   bool // true = tanpa filter waktu sama sekali
}

var namaBulan = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// NamaBulan mengembalikan nama bulan Indonesia (1..12); di luar itu "-".
func NamaBulan(m int) string {
	if m < 1 || m > 12 {
		return "-"
	}
	return namaBulan[m]
}

// DaysInMonth menghitung jumlah hari kalender bulan tsb (leap-year aware).
func DaysInMonth(year, month int) int {
	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewPeriode membangun rentang [awal bulan, akhir bulan 23:59:59].
// month == 0 → satu tahun penuh [1 Jan, 31 Des 23:59:59].
func NewPeriode(year, month int) Periode {
	if month == 0 {
		return Periode{
			Year:  year,
			Start: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC),
		}
	}
	last := DaysInMonth(year, month)
	return Periode{
		Year:  year,
		Month: month,
		Start: time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.Month(month), last, 23, 59, 59, 0, time.UTC),
	}
}

// Label deskripsi periode untuk response & nama file, mis. "Maret 2025",
// "2025", atau "Semua".
func (p Periode) Label() string {
	if p.All {
		return "Semua"
	}
	if p.Month > 0 {
		return fmt.Sprintf("%s %d", NamaBulan(p.Month), p.Year)
	}
	return strconv.Itoa(p.Year)
}

// ResolvePeriode membaca ?year= & ?month= dari query.
// - year & month kosong → sepanjang masa (All=true, tanpa filter waktu)
// - year saja → satu tahun penuh
// - month saja → bulan tsb di tahun berjalan
// - month di luar 1..12 → error validasi (ditolak, bukan di-clamp)
func ResolvePeriode(c *fiber.Ctx) (Periode, error) {
	rawYear := c.Query("year")
	rawMonth := c.Query("month")

	if rawYear == "" && rawMonth == "" {
		return Periode{All: true}, nil
	}

	year := time.Now().Year()
	if rawYear != "" {
		y, err := strconv.Atoi(rawYear)
		if err != nil || y < 2000 || y > 2100 {
			return Periode{}, fmt.Errorf("parameter year tidak valid: %q", rawYear)
		}
		year = y
	}

	month := 0
	if rawMonth != "" {
		m, err := strconv.Atoi(rawMonth)
		if err != nil || m < 1 || m > 12 {
			return Periode{}, fmt.Errorf("parameter month harus 1-12: %q", rawMonth)
		}
		month = m
	}

	return NewPeriode(year, month), nil
}

// FormatTanggal memformat tanggal gaya Indonesia: dd-mm-yyyy.
func FormatTanggal(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02-01-2006")
}

// RatioPercent menghitung round(part/total*100) half-up; total 0 → 0.
func RatioPercent(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
