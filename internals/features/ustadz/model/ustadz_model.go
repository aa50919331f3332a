package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ustadz struct {
	UstadzID uuid.UUID `gorm:"column:ustadz_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ustadz_id"`

	UstadzNama   string  `gorm:"column:ustadz_nama;type:varchar(100);not null" json:"ustadz_nama"`
	UstadzNIK    *string `gorm:"column:ustadz_nik;type:varchar(20);uniqueIndex" json:"ustadz_nik,omitempty"`
	UstadzNoHP   *string `gorm:"column:ustadz_no_hp;type:varchar(20)" json:"ustadz_no_hp,omitempty"`
	UstadzAlamat *string `gorm:"column:ustadz_alamat;type:text" json:"ustadz_alamat,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Ustadz) TableName() string {
	return "ustadzs"
}

// Penugasan wali kelas. Satu kelas hanya boleh punya satu wali
// per tahun ajaran; dicek di controller supaya bisa balas 409.
type WaliKelas struct {
	WaliKelasID uuid.UUID `gorm:"column:wali_kelas_id;type:uuid;default:gen_random_uuid();primaryKey" json:"wali_kelas_id"`

	WaliKelasUstadzID    uuid.UUID `gorm:"column:wali_kelas_ustadz_id;type:uuid;not null;index" json:"wali_kelas_ustadz_id"`
	WaliKelasKelas       string    `gorm:"column:wali_kelas_kelas;type:varchar(20);not null;uniqueIndex:uq_wali_kelas" json:"wali_kelas_kelas"`
	WaliKelasTahunAjaran string    `gorm:"column:wali_kelas_tahun_ajaran;type:varchar(9);not null;uniqueIndex:uq_wali_kelas" json:"wali_kelas_tahun_ajaran"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (WaliKelas) TableName() string {
	return "wali_kelass"
}
