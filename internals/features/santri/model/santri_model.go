package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Santri struct {
	SantriID uuid.UUID `gorm:"column:santri_id;type:uuid;default:gen_random_uuid();primaryKey" json:"santri_id"`

	SantriNIS  string `gorm:"column:santri_nis;type:varchar(20);not null;unique" json:"santri_nis"`
	SantriNama string `gorm:"column:santri_nama;type:varchar(100);not null" json:"santri_nama"`

	SantriJenisKelamin string `gorm:"column:santri_jenis_kelamin;type:varchar(10);not null" json:"santri_jenis_kelamin"` // PUTRA | PUTRI
	SantriKelas        string `gorm:"column:santri_kelas;type:varchar(20);not null;index" json:"santri_kelas"`
	SantriTingkatan    string `gorm:"column:santri_tingkatan;type:varchar(10);not null;index" json:"santri_tingkatan"`
	SantriStatus       string `gorm:"column:santri_status;type:varchar(15);default:'AKTIF';index" json:"santri_status"`

	SantriTempatLahir  *string         `gorm:"column:santri_tempat_lahir;type:varchar(60)" json:"santri_tempat_lahir,omitempty"`
	SantriTanggalLahir *datatypes.Date `gorm:"column:santri_tanggal_lahir" json:"santri_tanggal_lahir,omitempty"`
	SantriAlamat       *string         `gorm:"column:santri_alamat;type:text" json:"santri_alamat,omitempty"`
	SantriNamaWali     *string         `gorm:"column:santri_nama_wali;type:varchar(100)" json:"santri_nama_wali,omitempty"`
	SantriNoHPWali     *string         `gorm:"column:santri_no_hp_wali;type:varchar(20)" json:"santri_no_hp_wali,omitempty"`
	SantriTahunMasuk   int             `gorm:"column:santri_tahun_masuk" json:"santri_tahun_masuk"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Santri) TableName() string {
	return "santris"
}
