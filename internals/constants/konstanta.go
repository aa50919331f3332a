// file: internals/constants/konstanta.go
package constants

// =======================
// Jenis kelamin santri
// =======================
const (
	JenisKelaminPutra = "PUTRA"
	JenisKelaminPutri = "PUTRI"
)

// =======================
// Status santri
// =======================
const (
	StatusSantriAktif      = "AKTIF"
	StatusSantriTidakAktif = "TIDAK_AKTIF"
	StatusSantriLulus      = "LULUS"
)

var StatusSantriList = []string{StatusSantriAktif, StatusSantriTidakAktif, StatusSantriLulus}

var JenisKelaminLabels = map[string]string{
	JenisKelaminPutra: "Putra",
	JenisKelaminPutri: "Putri",
}

var StatusSantriLabels = map[string]string{
	StatusSantriAktif:      "Aktif",
	StatusSantriTidakAktif: "Tidak Aktif",
	StatusSantriLulus:      "Lulus",
}

// =======================
// Tingkatan pendidikan
// =======================
const (
	TingkatanMI  = "MI"  // ibtidaiyah
	TingkatanMTS = "MTS" // tsanawiyah
	TingkatanMA  = "MA"  // aliyah
)

var TingkatanList = []string{TingkatanMI, TingkatanMTS, TingkatanMA}

var TingkatanLabels = map[string]string{
	TingkatanMI:  "Madrasah Ibtidaiyah",
	TingkatanMTS: "Madrasah Tsanawiyah",
	TingkatanMA:  "Madrasah Aliyah",
}

// =======================
// Kelas: 9 jenjang × 3 rombel = 27 kode
// =======================
var KelasList = []string{
	"KELAS_1A", "KELAS_1B", "KELAS_1C",
	"KELAS_2A", "KELAS_2B", "KELAS_2C",
	"KELAS_3A", "KELAS_3B", "KELAS_3C",
	"KELAS_4A", "KELAS_4B", "KELAS_4C",
	"KELAS_5A", "KELAS_5B", "KELAS_5C",
	"KELAS_6A", "KELAS_6B", "KELAS_6C",
	"KELAS_7A", "KELAS_7B", "KELAS_7C",
	"KELAS_8A", "KELAS_8B", "KELAS_8C",
	"KELAS_9A", "KELAS_9B", "KELAS_9C",
}

var KelasLabels = map[string]string{
	"KELAS_1A": "Kelas 1A", "KELAS_1B": "Kelas 1B", "KELAS_1C": "Kelas 1C",
	"KELAS_2A": "Kelas 2A", "KELAS_2B": "Kelas 2B", "KELAS_2C": "Kelas 2C",
	"KELAS_3A": "Kelas 3A", "KELAS_3B": "Kelas 3B", "KELAS_3C": "Kelas 3C",
	"KELAS_4A": "Kelas 4A", "KELAS_4B": "Kelas 4B", "KELAS_4C": "Kelas 4C",
	"KELAS_5A": "Kelas 5A", "KELAS_5B": "Kelas 5B", "KELAS_5C": "Kelas 5C",
	"KELAS_6A": "Kelas 6A", "KELAS_6B": "Kelas 6B", "KELAS_6C": "Kelas 6C",
	"KELAS_7A": "Kelas 7A", "KELAS_7B": "Kelas 7B", "KELAS_7C": "Kelas 7C",
	"KELAS_8A": "Kelas 8A", "KELAS_8B": "Kelas 8B", "KELAS_8C": "Kelas 8C",
	"KELAS_9A": "Kelas 9A", "KELAS_9B": "Kelas 9B", "KELAS_9C": "Kelas 9C",
}

// =======================
// Status absensi harian
// =======================
const (
	AbsensiHadir = "HADIR"
	AbsensiIzin  = "IZIN"
	AbsensiSakit = "SAKIT"
	AbsensiAlpha = "ALPHA"
)

var StatusAbsensiList = []string{AbsensiHadir, AbsensiIzin, AbsensiSakit, AbsensiAlpha}

var StatusAbsensiLabels = map[string]string{
	AbsensiHadir: "Hadir",
	AbsensiIzin:  "Izin",
	AbsensiSakit: "Sakit",
	AbsensiAlpha: "Alpha",
}

// =======================
// Jenis absensi (sesi)
// =======================
const (
	JenisAbsensiSekolah = "SEKOLAH"
	JenisAbsensiMengaji = "MENGAJI"
)

// =======================
// Sanksi pelanggaran, 6 tingkat
// =======================
const (
	SanksiRingan = "RINGAN"
	SanksiSedang = "SEDANG"
	SanksiBerat  = "BERAT"
	SanksiSP1    = "SP1"
	SanksiSP2    = "SP2"
	SanksiSP3    = "SP3"
)

// urutan tetap, dipakai statistik & export
var SanksiList = []string{SanksiRingan, SanksiSedang, SanksiBerat, SanksiSP1, SanksiSP2, SanksiSP3}

var SanksiLabels = map[string]string{
	SanksiRingan: "Ringan",
	SanksiSedang: "Sedang",
	SanksiBerat:  "Berat",
	SanksiSP1:    "Surat Peringatan 1",
	SanksiSP2:    "Surat Peringatan 2",
	SanksiSP3:    "Surat Peringatan 3",
}

// =======================
// Kategori pengeluaran
// =======================
const (
	PengeluaranOperasional  = "OPERASIONAL"
	PengeluaranKonsumsi     = "KONSUMSI"
	PengeluaranPemeliharaan = "PEMELIHARAAN"
	PengeluaranGaji         = "GAJI"
	PengeluaranLainnya      = "LAINNYA"
)

var KategoriPengeluaranList = []string{
	PengeluaranOperasional, PengeluaranKonsumsi, PengeluaranPemeliharaan,
	PengeluaranGaji, PengeluaranLainnya,
}

var KategoriPengeluaranLabels = map[string]string{
	PengeluaranOperasional:  "Operasional",
	PengeluaranKonsumsi:     "Konsumsi",
	PengeluaranPemeliharaan: "Pemeliharaan",
	PengeluaranGaji:         "Gaji",
	PengeluaranLainnya:      "Lainnya",
}

// =======================
// Roles
// =======================
const (
	RoleAdmin     = "admin"
	RoleUstadz    = "ustadz"
	RoleBendahara = "bendahara"
)

// Label mengembalikan label dari tabel; kode tak dikenal dikembalikan
// apa adanya (bukan error) agar export tidak pernah gagal karena label.
func Label(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	if code == "" {
		return "-"
	}
	return code
}

func ValidKelas(code string) bool {
	_, ok := KelasLabels[code]
	return ok
}

func ValidTingkatan(code string) bool {
	_, ok := TingkatanLabels[code]
	return ok
}

func ValidSanksi(code string) bool {
	_, ok := SanksiLabels[code]
	return ok
}

func ValidStatusAbsensi(code string) bool {
	_, ok := StatusAbsensiLabels[code]
	return ok
}

func ValidKategoriPengeluaran(code string) bool {
	_, ok := KategoriPengeluaranLabels[code]
	return ok
}
