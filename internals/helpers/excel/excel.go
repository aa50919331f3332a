// file: internals/helpers/excel/excel.go
//
// Helper pembentuk workbook Excel untuk export & backup.
// Semua sheet mengikuti kontrak yang sama: baris 1 header (bold, putih,
// fill warna brand, center), semua sel berborder tipis, baris data
// vertical-center + wrap, kolom pertama nomor urut 1-based.
package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// warna brand hijau pesantren
const headerFillColor = "1F7A4D"

// format rupiah: presentasi saja, nilai sel tetap angka mentah
const currencyNumFmt = `"Rp"#,##0`

// Column mendeklarasikan satu kolom sheet: label header, lebar, dan
// apakah dirender sebagai rupiah (rata kanan + format ribuan).
type Column struct {
	Header   string
	Width    float64
	Currency bool
}

// Sheet adalah satu lembar siap render: skema kolom + baris nilai.
// Kolom nomor ditambahkan otomatis saat render, jangan ikut di Columns.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

type styleSet struct {
	header   int
	data     int
	currency int
}

func buildStyles(f *excelize.File) (styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return styleSet{}, err
	}

	data, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return styleSet{}, err
	}

	currency, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:       border,
		CustomNumFmt: func() *string { s := currencyNumFmt; return &s }(),
	})
	if err != nil {
		return styleSet{}, err
	}

	return styleSet{header: header, data: data, currency: currency}, nil
}

// WriteSheet merender satu Sheet ke workbook. Sheet harus sudah dibuat
// (f.NewSheet) oleh pemanggil.
func WriteSheet(f *excelize.File, s Sheet) error {
	styles, err := buildStyles(f)
	if err != nil {
		return err
	}

	// kolom "No" + skema deklaratif
	cols := append([]Column{{Header: "No", Width: 6}}, s.Columns...)

	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.Name, name, name, col.Width); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.Name, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, cell, cell, styles.header); err != nil {
			return err
		}
	}

	for rowIdx, row := range s.Rows {
		// nomor urut render-time, bukan id database
		values := append([]any{rowIdx + 1}, row...)
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if v == nil {
				v = "-"
			} else if sv, ok := v.(string); ok && strings.TrimSpace(sv) == "" {
				v = "-"
			}
			if err := f.SetCellValue(s.Name, cell, v); err != nil {
				return err
			}
			style := styles.data
			if colIdx > 0 && cols[colIdx].Currency {
				style = styles.currency
			}
			if err := f.SetCellStyle(s.Name, cell, cell, style); err != nil {
				return err
			}
		}
	}

	return nil
}

// BuildWorkbook membuat workbook baru berisi sheet-sheet yang diberikan,
// urutan sheet mengikuti urutan slice (bukan auto-discovery).
func BuildWorkbook(sheets []Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook tanpa sheet")
	}
	f := excelize.NewFile()

	for i, s := range sheets {
		if i == 0 {
			// pakai sheet default bawaan excelize
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(s.Name); err != nil {
				return nil, err
			}
		}
		if err := WriteSheet(f, s); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Filename membangun nama file `<Prefix>_<Filter>_<Timestamp>.xlsx`
// dengan tanda baca dinormalisasi agar aman untuk filesystem.
func Filename(prefix, filter string, at time.Time) string {
	if strings.TrimSpace(filter) == "" {
		filter = "Semua"
	}
	ts := at.Format("2006-01-02_15-04-05")
	return sanitize(prefix) + "_" + sanitize(filter) + "_" + ts + ".xlsx"
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(
		" ", "-",
		"/", "-",
		"\\", "-",
		":", "-",
		",", "",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	return replacer.Replace(s)
}
