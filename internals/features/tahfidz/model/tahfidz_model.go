package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Catatan setoran hafalan. Surah 1..114; nilai opsional karena
// setoran muraja'ah tidak selalu dinilai.
type Tahfidz struct {
	TahfidzID uuid.UUID `gorm:"column:tahfidz_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tahfidz_id"`

	TahfidzSantriID uuid.UUID      `gorm:"column:tahfidz_santri_id;type:uuid;not null;index" json:"tahfidz_santri_id"`
	TahfidzSurah    int            `gorm:"column:tahfidz_surah;type:smallint;not null;index" json:"tahfidz_surah"`
	TahfidzNilai    *float64       `gorm:"column:tahfidz_nilai;type:numeric(5,2)" json:"tahfidz_nilai,omitempty"`
	TahfidzTanggal  datatypes.Date `gorm:"column:tahfidz_tanggal;not null;index" json:"tahfidz_tanggal"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Tahfidz) TableName() string {
	return "tahfidzs"
}
