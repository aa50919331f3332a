package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Absensi: satu catatan kehadiran per (santri, tanggal, jenis) dalam praktiknya.
type Absensi struct {
	AbsensiID uuid.UUID `gorm:"column:absensi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"absensi_id"`

	AbsensiSantriID uuid.UUID      `gorm:"column:absensi_santri_id;type:uuid;not null;index" json:"absensi_santri_id"`
	AbsensiTanggal  datatypes.Date `gorm:"column:absensi_tanggal;not null;index" json:"absensi_tanggal"`
	AbsensiJenis    string         `gorm:"column:absensi_jenis;type:varchar(15);default:'SEKOLAH'" json:"absensi_jenis"`
	AbsensiStatus   string         `gorm:"column:absensi_status;type:varchar(10);not null" json:"absensi_status"` // HADIR|IZIN|SAKIT|ALPHA
	AbsensiCatatan  *string        `gorm:"column:absensi_catatan;type:text" json:"absensi_catatan,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Absensi) TableName() string {
	return "absensis"
}
