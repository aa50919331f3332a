package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Riwayat pemeriksaan kesehatan santri. Data asuransi opsional
// karena tidak semua santri ter-cover.
type Kesehatan struct {
	KesehatanID uuid.UUID `gorm:"column:kesehatan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kesehatan_id"`

	KesehatanSantriID       uuid.UUID      `gorm:"column:kesehatan_santri_id;type:uuid;not null;index" json:"kesehatan_santri_id"`
	KesehatanJenisAsuransi  *string        `gorm:"column:kesehatan_jenis_asuransi;type:varchar(50)" json:"kesehatan_jenis_asuransi,omitempty"`
	KesehatanNomorAsuransi  *string        `gorm:"column:kesehatan_nomor_asuransi;type:varchar(50)" json:"kesehatan_nomor_asuransi,omitempty"`
	KesehatanRiwayatSakit   string         `gorm:"column:kesehatan_riwayat_sakit;type:text;not null" json:"kesehatan_riwayat_sakit"`
	KesehatanTanggalPeriksa datatypes.Date `gorm:"column:kesehatan_tanggal_periksa;not null;index" json:"kesehatan_tanggal_periksa"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Kesehatan) TableName() string {
	return "kesehatans"
}
