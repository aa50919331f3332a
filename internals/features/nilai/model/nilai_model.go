package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Satu nilai per (santri, mapel, semester, tahun ajaran).
// Input ulang dengan kunci yang sama memperbarui nilai (upsert).
type Nilai struct {
	NilaiID uuid.UUID `gorm:"column:nilai_id;type:uuid;default:gen_random_uuid();primaryKey" json:"nilai_id"`

	NilaiSantriID    uuid.UUID `gorm:"column:nilai_santri_id;type:uuid;not null;uniqueIndex:uq_nilai_key" json:"nilai_santri_id"`
	NilaiMapelID     uuid.UUID `gorm:"column:nilai_mapel_id;type:uuid;not null;uniqueIndex:uq_nilai_key" json:"nilai_mapel_id"`
	NilaiSemester    string    `gorm:"column:nilai_semester;type:varchar(10);not null;uniqueIndex:uq_nilai_key" json:"nilai_semester"` // GANJIL | GENAP
	NilaiTahunAjaran string    `gorm:"column:nilai_tahun_ajaran;type:varchar(9);not null;uniqueIndex:uq_nilai_key" json:"nilai_tahun_ajaran"`
	NilaiNilai       float64   `gorm:"column:nilai_nilai;type:numeric(5,2);not null" json:"nilai_nilai"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Nilai) TableName() string {
	return "nilais"
}

type NilaiEkskul struct {
	NilaiEkskulID uuid.UUID `gorm:"column:nilai_ekskul_id;type:uuid;default:gen_random_uuid();primaryKey" json:"nilai_ekskul_id"`

	NilaiEkskulSantriID    uuid.UUID `gorm:"column:nilai_ekskul_santri_id;type:uuid;not null;uniqueIndex:uq_nilai_ekskul_key" json:"nilai_ekskul_santri_id"`
	NilaiEkskulEkskulID    uuid.UUID `gorm:"column:nilai_ekskul_ekskul_id;type:uuid;not null;uniqueIndex:uq_nilai_ekskul_key" json:"nilai_ekskul_ekskul_id"`
	NilaiEkskulSemester    string    `gorm:"column:nilai_ekskul_semester;type:varchar(10);not null;uniqueIndex:uq_nilai_ekskul_key" json:"nilai_ekskul_semester"`
	NilaiEkskulTahunAjaran string    `gorm:"column:nilai_ekskul_tahun_ajaran;type:varchar(9);not null;uniqueIndex:uq_nilai_ekskul_key" json:"nilai_ekskul_tahun_ajaran"`
	NilaiEkskulNilai       float64   `gorm:"column:nilai_ekskul_nilai;type:numeric(5,2);not null" json:"nilai_ekskul_nilai"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (NilaiEkskul) TableName() string {
	return "nilai_ekskuls"
}
