package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pembayaran: setoran santri per tanggal, dua komponen nominal
// (infaq + laundry), dengan bukti transfer opsional.
type Pembayaran struct {
	PembayaranID uuid.UUID `gorm:"column:pembayaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pembayaran_id"`

	PembayaranSantriID uuid.UUID      `gorm:"column:pembayaran_santri_id;type:uuid;not null;index" json:"pembayaran_santri_id"`
	PembayaranTanggal  datatypes.Date `gorm:"column:pembayaran_tanggal;not null;index" json:"pembayaran_tanggal"`

	// numeric(12,2) di DB → float64 di response (konversi decimal→number)
	PembayaranInfaq   float64 `gorm:"column:pembayaran_infaq;type:numeric(12,2);default:0" json:"pembayaran_infaq"`
	PembayaranLaundry float64 `gorm:"column:pembayaran_laundry;type:numeric(12,2);default:0" json:"pembayaran_laundry"`

	PembayaranBuktiURL *string `gorm:"column:pembayaran_bukti_url;type:text" json:"pembayaran_bukti_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Pembayaran) TableName() string {
	return "pembayarans"
}
