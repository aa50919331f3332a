// 📁 service/sheets.go
//
// Pembentuk sheet per domain untuk export & backup. Semua builder
// memproyeksikan kolom yang dibutuhkan saja (join nama santri bila
// perlu) lalu memetakan kode enum ke label tampilan.
package service

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
	excelHelper "pesantrenku_backend/internals/helpers/excel"
)

func SantriSheet(db *gorm.DB, kelas, tingkatan string) (excelHelper.Sheet, error) {
	type row struct {
		NIS          string
		Nama         string
		JenisKelamin string
		Kelas        string
		Tingkatan    string
		Status       string
		TempatLahir  *string
		TanggalLahir *time.Time
		NamaWali     *string
		NoHPWali     *string
		TahunMasuk   int
	}

	q := db.Table("santris").
		Select(`santri_nis AS nis, santri_nama AS nama,
			santri_jenis_kelamin AS jenis_kelamin, santri_kelas AS kelas,
			santri_tingkatan AS tingkatan, santri_status AS status,
			santri_tempat_lahir AS tempat_lahir, santri_tanggal_lahir AS tanggal_lahir,
			santri_nama_wali AS nama_wali, santri_no_hp_wali AS no_hp_wali,
			santri_tahun_masuk AS tahun_masuk`).
		Where("deleted_at IS NULL")
	if kelas != "" {
		q = q.Where("santri_kelas = ?", kelas)
	}
	if tingkatan != "" {
		q = q.Where("santri_tingkatan = ?", tingkatan)
	}

	var rows []row
	if err := q.Order("santri_tingkatan ASC, santri_kelas ASC, santri_nama ASC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Santri",
		Columns: []excelHelper.Column{
			{Header: "NIS", Width: 14},
			{Header: "Nama", Width: 28},
			{Header: "Jenis Kelamin", Width: 14},
			{Header: "Kelas", Width: 12},
			{Header: "Tingkatan", Width: 22},
			{Header: "Status", Width: 12},
			{Header: "Tempat Lahir", Width: 16},
			{Header: "Tanggal Lahir", Width: 14},
			{Header: "Nama Wali", Width: 24},
			{Header: "No HP Wali", Width: 16},
			{Header: "Tahun Masuk", Width: 12},
		},
	}
	for _, r := range rows {
		tglLahir := any(nil)
		if r.TanggalLahir != nil {
			tglLahir = helper.FormatTanggal(*r.TanggalLahir)
		}
		sheet.Rows = append(sheet.Rows, []any{
			r.NIS,
			r.Nama,
			constants.Label(constants.JenisKelaminLabels, r.JenisKelamin),
			constants.Label(constants.KelasLabels, r.Kelas),
			constants.Label(constants.TingkatanLabels, r.Tingkatan),
			constants.Label(constants.StatusSantriLabels, r.Status),
			r.TempatLahir,
			tglLahir,
			r.NamaWali,
			r.NoHPWali,
			r.TahunMasuk,
		})
	}
	return sheet, nil
}

func AbsensiSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal time.Time
		Nama    string
		Kelas   string
		Jenis   string
		Status  string
		Catatan *string
	}

	var rows []row
	if err := db.Table("absensis").
		Select(`absensis.absensi_tanggal AS tanggal,
			COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			absensis.absensi_jenis AS jenis,
			absensis.absensi_status AS status,
			absensis.absensi_catatan AS catatan`).
		Joins("LEFT JOIN santris ON santris.santri_id = absensis.absensi_santri_id").
		Where("absensis.deleted_at IS NULL").
		Order("absensis.absensi_tanggal DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Absensi",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Jenis", Width: 12},
			{Header: "Status", Width: 12},
			{Header: "Catatan", Width: 30},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			r.Jenis,
			constants.Label(constants.StatusAbsensiLabels, r.Status),
			r.Catatan,
		})
	}
	return sheet, nil
}

func PembayaranSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal time.Time
		Nama    string
		Kelas   string
		Infaq   float64
		Laundry float64
	}

	var rows []row
	if err := db.Table("pembayarans").
		Select(`pembayarans.pembayaran_tanggal AS tanggal,
			COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			pembayarans.pembayaran_infaq AS infaq,
			pembayarans.pembayaran_laundry AS laundry`).
		Joins("LEFT JOIN santris ON santris.santri_id = pembayarans.pembayaran_santri_id").
		Where("pembayarans.deleted_at IS NULL").
		Order("pembayarans.pembayaran_tanggal DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Pembayaran",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Infaq", Width: 16, Currency: true},
			{Header: "Laundry", Width: 16, Currency: true},
			{Header: "Total", Width: 16, Currency: true},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			r.Infaq,
			r.Laundry,
			r.Infaq + r.Laundry,
		})
	}
	return sheet, nil
}

func PengeluaranSheet(db *gorm.DB, kategori string, p helper.Periode) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal  time.Time
		Nama     string
		Kategori string
		Jumlah   float64
	}

	q := db.Table("pengeluarans").
		Select(`pengeluaran_tanggal AS tanggal, pengeluaran_nama AS nama,
			pengeluaran_kategori AS kategori, pengeluaran_jumlah AS jumlah`).
		Where("deleted_at IS NULL")
	if kategori != "" {
		q = q.Where("pengeluaran_kategori = ?", kategori)
	}
	if !p.All {
		q = q.Where("pengeluaran_tanggal BETWEEN ? AND ?", p.Start, p.End)
	}

	var rows []row
	if err := q.Order("pengeluaran_tanggal DESC").Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Pengeluaran",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Pengeluaran", Width: 30},
			{Header: "Kategori", Width: 16},
			{Header: "Jumlah", Width: 16, Currency: true},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			constants.Label(constants.KategoriPengeluaranLabels, r.Kategori),
			r.Jumlah,
		})
	}
	return sheet, nil
}

func PelanggaranSheet(db *gorm.DB, santriID string) (excelHelper.Sheet, error) {
	type row struct {
		CreatedAt time.Time
		Nama      string
		Kelas     string
		Sanksi    string
		Deskripsi string
	}

	q := db.Table("pelanggarans").
		Select(`pelanggarans.created_at,
			COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			pelanggarans.pelanggaran_sanksi AS sanksi,
			pelanggarans.pelanggaran_deskripsi AS deskripsi`).
		Joins("LEFT JOIN santris ON santris.santri_id = pelanggarans.pelanggaran_santri_id").
		Where("pelanggarans.deleted_at IS NULL")
	if santriID != "" {
		q = q.Where("pelanggarans.pelanggaran_santri_id = ?", santriID)
	}

	var rows []row
	if err := q.Order("pelanggarans.created_at DESC").Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Pelanggaran",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Sanksi", Width: 20},
			{Header: "Deskripsi", Width: 40},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.CreatedAt),
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			constants.Label(constants.SanksiLabels, r.Sanksi),
			r.Deskripsi,
		})
	}
	return sheet, nil
}

func KesehatanSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal       time.Time
		Nama          string
		Kelas         string
		JenisAsuransi *string
		NomorAsuransi *string
		RiwayatSakit  string
	}

	var rows []row
	if err := db.Table("kesehatans").
		Select(`kesehatans.kesehatan_tanggal_periksa AS tanggal,
			COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			kesehatans.kesehatan_jenis_asuransi AS jenis_asuransi,
			kesehatans.kesehatan_nomor_asuransi AS nomor_asuransi,
			kesehatans.kesehatan_riwayat_sakit AS riwayat_sakit`).
		Joins("LEFT JOIN santris ON santris.santri_id = kesehatans.kesehatan_santri_id").
		Where("kesehatans.deleted_at IS NULL").
		Order("kesehatans.kesehatan_tanggal_periksa DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Kesehatan",
		Columns: []excelHelper.Column{
			{Header: "Tanggal Periksa", Width: 16},
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Jenis Asuransi", Width: 16},
			{Header: "Nomor Asuransi", Width: 18},
			{Header: "Riwayat Sakit", Width: 40},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			r.JenisAsuransi,
			r.NomorAsuransi,
			r.RiwayatSakit,
		})
	}
	return sheet, nil
}

func TahfidzSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal time.Time
		Nama    string
		Kelas   string
		Surah   int
		Nilai   *float64
	}

	var rows []row
	if err := db.Table("tahfidzs").
		Select(`tahfidzs.tahfidz_tanggal AS tanggal,
			COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			tahfidzs.tahfidz_surah AS surah,
			tahfidzs.tahfidz_nilai AS nilai`).
		Joins("LEFT JOIN santris ON santris.santri_id = tahfidzs.tahfidz_santri_id").
		Where("tahfidzs.deleted_at IS NULL").
		Order("tahfidzs.tahfidz_tanggal DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Tahfidz",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Surah", Width: 10},
			{Header: "Nilai", Width: 10},
		},
	}
	for _, r := range rows {
		nilai := any(nil)
		if r.Nilai != nil {
			nilai = *r.Nilai
		}
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			r.Surah,
			nilai,
		})
	}
	return sheet, nil
}

func NilaiSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Nama        string
		Kelas       string
		Mapel       string
		Semester    string
		TahunAjaran string
		Nilai       float64
	}

	var rows []row
	if err := db.Table("nilais").
		Select(`COALESCE(santris.santri_nama, '') AS nama,
			COALESCE(santris.santri_kelas, '') AS kelas,
			COALESCE(mapels.mapel_nama, '') AS mapel,
			nilais.nilai_semester AS semester,
			nilais.nilai_tahun_ajaran AS tahun_ajaran,
			nilais.nilai_nilai AS nilai`).
		Joins("LEFT JOIN santris ON santris.santri_id = nilais.nilai_santri_id").
		Joins("LEFT JOIN mapels ON mapels.mapel_id = nilais.nilai_mapel_id").
		Where("nilais.deleted_at IS NULL").
		Order("nilais.nilai_tahun_ajaran DESC, nilais.nilai_semester ASC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Nilai",
		Columns: []excelHelper.Column{
			{Header: "Nama Santri", Width: 28},
			{Header: "Kelas", Width: 12},
			{Header: "Mapel", Width: 24},
			{Header: "Semester", Width: 12},
			{Header: "Tahun Ajaran", Width: 14},
			{Header: "Nilai", Width: 10},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			r.Nama,
			constants.Label(constants.KelasLabels, r.Kelas),
			r.Mapel,
			r.Semester,
			r.TahunAjaran,
			r.Nilai,
		})
	}
	return sheet, nil
}

func KoperasiPemasukanSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal    time.Time
		Anggota    string
		Nominal    float64
		Keterangan *string
	}

	var rows []row
	if err := db.Table("koperasi_pemasukans").
		Select(`koperasi_pemasukans.pemasukan_tanggal AS tanggal,
			COALESCE(koperasi_anggotas.anggota_nama, '') AS anggota,
			koperasi_pemasukans.pemasukan_nominal AS nominal,
			koperasi_pemasukans.pemasukan_keterangan AS keterangan`).
		Joins("LEFT JOIN koperasi_anggotas ON koperasi_anggotas.anggota_id = koperasi_pemasukans.pemasukan_anggota_id").
		Where("koperasi_pemasukans.deleted_at IS NULL").
		Order("koperasi_pemasukans.pemasukan_tanggal DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Koperasi Pemasukan",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Anggota", Width: 28},
			{Header: "Nominal", Width: 16, Currency: true},
			{Header: "Keterangan", Width: 34},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Anggota,
			r.Nominal,
			r.Keterangan,
		})
	}
	return sheet, nil
}

func KoperasiPengeluaranSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Tanggal    time.Time
		Nama       string
		Nominal    float64
		Keterangan *string
	}

	var rows []row
	if err := db.Table("koperasi_pengeluarans").
		Select(`pengeluaran_tanggal AS tanggal, pengeluaran_nama AS nama,
			pengeluaran_nominal AS nominal, pengeluaran_keterangan AS keterangan`).
		Where("deleted_at IS NULL").
		Order("pengeluaran_tanggal DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Koperasi Pengeluaran",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama", Width: 30},
			{Header: "Nominal", Width: 16, Currency: true},
			{Header: "Keterangan", Width: 34},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.Tanggal),
			r.Nama,
			r.Nominal,
			r.Keterangan,
		})
	}
	return sheet, nil
}

func DonasiSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		CreatedAt time.Time
		Nama      string
		Nominal   int
		Status    string
		OrderID   string
	}

	var rows []row
	if err := db.Table("donasis").
		Select(`created_at, donasi_nama AS nama, donasi_nominal AS nominal,
			donasi_status AS status, donasi_order_id AS order_id`).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Donasi",
		Columns: []excelHelper.Column{
			{Header: "Tanggal", Width: 14},
			{Header: "Nama Donatur", Width: 28},
			{Header: "Nominal", Width: 16, Currency: true},
			{Header: "Status", Width: 12},
			{Header: "Order ID", Width: 28},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			helper.FormatTanggal(r.CreatedAt),
			r.Nama,
			r.Nominal,
			r.Status,
			r.OrderID,
		})
	}
	return sheet, nil
}

func UstadzSheet(db *gorm.DB) (excelHelper.Sheet, error) {
	type row struct {
		Nama   string
		NIK    *string
		NoHP   *string
		Alamat *string
	}

	var rows []row
	if err := db.Table("ustadzs").
		Select(`ustadz_nama AS nama, ustadz_nik AS nik,
			ustadz_no_hp AS no_hp, ustadz_alamat AS alamat`).
		Where("deleted_at IS NULL").
		Order("ustadz_nama ASC").
		Scan(&rows).Error; err != nil {
		return excelHelper.Sheet{}, err
	}

	sheet := excelHelper.Sheet{
		Name: "Ustadz",
		Columns: []excelHelper.Column{
			{Header: "Nama", Width: 28},
			{Header: "NIK", Width: 20},
			{Header: "No HP", Width: 16},
			{Header: "Alamat", Width: 40},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{r.Nama, r.NIK, r.NoHP, r.Alamat})
	}
	return sheet, nil
}

// AllSheets membangun seluruh sheet backup dalam urutan tetap.
// Tiap domain dibaca independen, jadi builder dijalankan paralel.
func AllSheets(db *gorm.DB) ([]excelHelper.Sheet, error) {
	builders := []func(*gorm.DB) (excelHelper.Sheet, error){
		func(db *gorm.DB) (excelHelper.Sheet, error) { return SantriSheet(db, "", "") },
		UstadzSheet,
		AbsensiSheet,
		PembayaranSheet,
		func(db *gorm.DB) (excelHelper.Sheet, error) {
			return PengeluaranSheet(db, "", helper.Periode{All: true})
		},
		func(db *gorm.DB) (excelHelper.Sheet, error) { return PelanggaranSheet(db, "") },
		KesehatanSheet,
		TahfidzSheet,
		NilaiSheet,
		KoperasiPemasukanSheet,
		KoperasiPengeluaranSheet,
		DonasiSheet,
	}
	return buildSheetsConcurrently(db, builders)
}

// buildSheetsConcurrently menjalankan builder lewat errgroup dan menulis
// hasil ke slot indeks masing-masing supaya urutan sheet tetap.
func buildSheetsConcurrently(db *gorm.DB, builders []func(*gorm.DB) (excelHelper.Sheet, error)) ([]excelHelper.Sheet, error) {
	sheets := make([]excelHelper.Sheet, len(builders))
	var g errgroup.Group
	for i, build := range builders {
		i, build := i, build
		g.Go(func() error {
			s, err := build(db)
			if err != nil {
				return err
			}
			sheets[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sheets, nil
}
