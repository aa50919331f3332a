package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Pengeluaran struct {
	PengeluaranID uuid.UUID `gorm:"column:pengeluaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pengeluaran_id"`

	PengeluaranNama     string         `gorm:"column:pengeluaran_nama;type:varchar(100);not null" json:"pengeluaran_nama"`
	PengeluaranKategori string         `gorm:"column:pengeluaran_kategori;type:varchar(20);not null;index" json:"pengeluaran_kategori"`
	PengeluaranJumlah   float64        `gorm:"column:pengeluaran_jumlah;type:numeric(12,2);not null" json:"pengeluaran_jumlah"`
	PengeluaranTanggal  datatypes.Date `gorm:"column:pengeluaran_tanggal;not null;index" json:"pengeluaran_tanggal"`
	PengeluaranBuktiURL *string        `gorm:"column:pengeluaran_bukti_url;type:text" json:"pengeluaran_bukti_url,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Pengeluaran) TableName() string {
	return "pengeluarans"
}
