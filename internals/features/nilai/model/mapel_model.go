package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mata pelajaran per kelas. Nama mapel unik dalam satu kelas
// (dicek di controller supaya bisa balas 409, bukan error DB mentah).
type Mapel struct {
	MapelID    uuid.UUID `gorm:"column:mapel_id;type:uuid;default:gen_random_uuid();primaryKey" json:"mapel_id"`
	MapelNama  string    `gorm:"column:mapel_nama;type:varchar(100);not null;uniqueIndex:uq_mapel_nama_kelas" json:"mapel_nama"`
	MapelKelas string    `gorm:"column:mapel_kelas;type:varchar(20);not null;uniqueIndex:uq_mapel_nama_kelas" json:"mapel_kelas"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Mapel) TableName() string {
	return "mapels"
}

type Ekskul struct {
	EkskulID   uuid.UUID `gorm:"column:ekskul_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ekskul_id"`
	EkskulNama string    `gorm:"column:ekskul_nama;type:varchar(100);not null;uniqueIndex" json:"ekskul_nama"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Ekskul) TableName() string {
	return "ekskuls"
}
