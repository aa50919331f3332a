package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/kesehatan/model"
)

type CreateKesehatanRequest struct {
	SantriID       string  `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	JenisAsuransi  *string `json:"jenis_asuransi,omitempty" form:"jenis_asuransi" validate:"omitempty,max=50"`
	NomorAsuransi  *string `json:"nomor_asuransi,omitempty" form:"nomor_asuransi" validate:"omitempty,max=50"`
	RiwayatSakit   string  `json:"riwayat_sakit" form:"riwayat_sakit" validate:"required"`
	TanggalPeriksa string  `json:"tanggal_periksa" form:"tanggal_periksa" validate:"required,datetime=2006-01-02"`
}

type UpdateKesehatanRequest struct {
	JenisAsuransi  *string `json:"jenis_asuransi,omitempty" form:"jenis_asuransi" validate:"omitempty,max=50"`
	NomorAsuransi  *string `json:"nomor_asuransi,omitempty" form:"nomor_asuransi" validate:"omitempty,max=50"`
	RiwayatSakit   *string `json:"riwayat_sakit,omitempty" form:"riwayat_sakit"`
	TanggalPeriksa *string `json:"tanggal_periksa,omitempty" form:"tanggal_periksa" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateKesehatanRequest) ToModel() *model.Kesehatan {
	m := &model.Kesehatan{
		KesehatanSantriID:      uuid.MustParse(r.SantriID),
		KesehatanJenisAsuransi: r.JenisAsuransi,
		KesehatanNomorAsuransi: r.NomorAsuransi,
		KesehatanRiwayatSakit:  r.RiwayatSakit,
	}
	if t, err := time.Parse("2006-01-02", r.TanggalPeriksa); err == nil {
		m.KesehatanTanggalPeriksa = datatypes.Date(t)
	}
	return m
}
