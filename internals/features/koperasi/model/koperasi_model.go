package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KoperasiAnggota struct {
	AnggotaID   uuid.UUID `gorm:"column:anggota_id;type:uuid;default:gen_random_uuid();primaryKey" json:"anggota_id"`
	AnggotaNama string    `gorm:"column:anggota_nama;type:varchar(100);not null" json:"anggota_nama"`
	AnggotaNoHP *string   `gorm:"column:anggota_no_hp;type:varchar(20)" json:"anggota_no_hp,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (KoperasiAnggota) TableName() string {
	return "koperasi_anggotas"
}

// Buku kas masuk. Setiap entri terikat ke anggota yang harus ada.
type KoperasiPemasukan struct {
	PemasukanID uuid.UUID `gorm:"column:pemasukan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pemasukan_id"`

	PemasukanAnggotaID  uuid.UUID      `gorm:"column:pemasukan_anggota_id;type:uuid;not null;index" json:"pemasukan_anggota_id"`
	PemasukanNominal    float64        `gorm:"column:pemasukan_nominal;type:numeric(12,2);not null" json:"pemasukan_nominal"`
	PemasukanTanggal    datatypes.Date `gorm:"column:pemasukan_tanggal;not null;index" json:"pemasukan_tanggal"`
	PemasukanKeterangan *string        `gorm:"column:pemasukan_keterangan;type:text" json:"pemasukan_keterangan,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (KoperasiPemasukan) TableName() string {
	return "koperasi_pemasukans"
}

// Buku kas keluar. Tidak terikat anggota; belanja operasional koperasi.
type KoperasiPengeluaran struct {
	PengeluaranID uuid.UUID `gorm:"column:pengeluaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pengeluaran_id"`

	PengeluaranNama       string         `gorm:"column:pengeluaran_nama;type:varchar(150);not null" json:"pengeluaran_nama"`
	PengeluaranNominal    float64        `gorm:"column:pengeluaran_nominal;type:numeric(12,2);not null" json:"pengeluaran_nominal"`
	PengeluaranTanggal    datatypes.Date `gorm:"column:pengeluaran_tanggal;not null;index" json:"pengeluaran_tanggal"`
	PengeluaranKeterangan *string        `gorm:"column:pengeluaran_keterangan;type:text" json:"pengeluaran_keterangan,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (KoperasiPengeluaran) TableName() string {
	return "koperasi_pengeluarans"
}
