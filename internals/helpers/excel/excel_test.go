package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSample(t *testing.T) *excelize.File {
	t.Helper()

	sheet := Sheet{
		Name: "Pembayaran",
		Columns: []Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Santri", Width: 28},
			{Header: "Infaq", Width: 16, Currency: true},
		},
		Rows: [][]any{
			{"01-03-2025", "Ahmad Fauzi", 1500000.0},
			{"02-03-2025", nil, 80000.0},
			{"03-03-2025", "  ", 20000.0},
		},
	}

	f, err := BuildWorkbook([]Sheet{sheet})
	require.NoError(t, err)
	return f
}

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return out
}

func TestWorkbookRoundTrip(t *testing.T) {
	f := reopen(t, buildSample(t))

	// header baris 1 = "No" + skema kolom
	for i, want := range []string{"No", "Tanggal", "Nama Santri", "Infaq"} {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		got, err := f.GetCellValue("Pembayaran", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// jumlah baris data = 3 (plus header)
	rows, err := f.GetRows("Pembayaran")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	// nomor urut 1-based saat render
	for i := 0; i < 3; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		got, err := f.GetCellValue("Pembayaran", cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}[i], got)
	}

	// nilai kosong (nil / string spasi) dirender "-"
	v, err := f.GetCellValue("Pembayaran", "C3")
	require.NoError(t, err)
	assert.Equal(t, "-", v)
	v, err = f.GetCellValue("Pembayaran", "C4")
	require.NoError(t, err)
	assert.Equal(t, "-", v)

	// format rupiah hanya presentasi: nilai mentah tetap angka
	raw, err := f.GetCellValue("Pembayaran", "D2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1500000", raw)
}

func TestBuildWorkbookMultiSheetOrder(t *testing.T) {
	a := Sheet{Name: "Santri", Columns: []Column{{Header: "Nama", Width: 20}}}
	b := Sheet{Name: "Absensi", Columns: []Column{{Header: "Status", Width: 12}}}

	f := reopen(t, func() *excelize.File {
		built, err := BuildWorkbook([]Sheet{a, b})
		require.NoError(t, err)
		return built
	}())

	assert.Equal(t, []string{"Santri", "Absensi"}, f.GetSheetList())
}

func TestBuildWorkbookTanpaSheet(t *testing.T) {
	_, err := BuildWorkbook(nil)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 17, 14, 5, 9, 0, time.UTC)

	assert.Equal(t, "Data_Santri_Kelas-7A_2025-03-17_14-05-09.xlsx",
		Filename("Data_Santri", "Kelas 7A", at))

	// filter kosong → "Semua"
	assert.Equal(t, "Backup_Pesantren_Semua_2025-03-17_14-05-09.xlsx",
		Filename("Backup_Pesantren", "", at))

	// karakter tak aman dibuang/diganti
	assert.Equal(t, "Data_Pengeluaran_Gaji-Bonus_2025-03-17_14-05-09.xlsx",
		Filename("Data_Pengeluaran", "Gaji/Bonus?", at))
}
