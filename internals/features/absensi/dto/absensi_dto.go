package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/absensi/model"
)

type CreateAbsensiRequest struct {
	SantriID string  `json:"santri_id" validate:"required,uuid4"`
	Tanggal  string  `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Jenis    string  `json:"jenis" validate:"omitempty,oneof=SEKOLAH MENGAJI"`
	Status   string  `json:"status" validate:"required,oneof=HADIR IZIN SAKIT ALPHA"`
	Catatan  *string `json:"catatan,omitempty"`
}

type UpdateAbsensiRequest struct {
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=HADIR IZIN SAKIT ALPHA"`
	Catatan *string `json:"catatan,omitempty"`
}

func (r *CreateAbsensiRequest) ToModel() *model.Absensi {
	m := &model.Absensi{
		AbsensiSantriID: uuid.MustParse(r.SantriID),
		AbsensiJenis:    r.Jenis,
		AbsensiStatus:   r.Status,
		AbsensiCatatan:  r.Catatan,
	}
	if m.AbsensiJenis == "" {
		m.AbsensiJenis = "SEKOLAH"
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.AbsensiTanggal = datatypes.Date(t)
	}
	return m
}
