package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pelanggaran struct {
	PelanggaranID uuid.UUID `gorm:"column:pelanggaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pelanggaran_id"`

	PelanggaranSantriID  uuid.UUID `gorm:"column:pelanggaran_santri_id;type:uuid;not null;index" json:"pelanggaran_santri_id"`
	PelanggaranSanksi    string    `gorm:"column:pelanggaran_sanksi;type:varchar(10);not null;index" json:"pelanggaran_sanksi"` // RINGAN..SP3
	PelanggaranDeskripsi string    `gorm:"column:pelanggaran_deskripsi;type:text;not null" json:"pelanggaran_deskripsi"`
	PelanggaranBuktiURL  *string   `gorm:"column:pelanggaran_bukti_url;type:text" json:"pelanggaran_bukti_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Pelanggaran) TableName() string {
	return "pelanggarans"
}
