package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/koperasi/model"
)

type CreateAnggotaRequest struct {
	Nama string  `json:"nama" form:"nama" validate:"required,max=100"`
	NoHP *string `json:"no_hp,omitempty" form:"no_hp" validate:"omitempty,max=20"`
}

type CreatePemasukanRequest struct {
	AnggotaID  string  `json:"anggota_id" form:"anggota_id" validate:"required,uuid4"`
	Nominal    float64 `json:"nominal" form:"nominal" validate:"required,gt=0"`
	Tanggal    string  `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
	Keterangan *string `json:"keterangan,omitempty" form:"keterangan"`
}

type CreatePengeluaranRequest struct {
	Nama       string  `json:"nama" form:"nama" validate:"required,max=150"`
	Nominal    float64 `json:"nominal" form:"nominal" validate:"required,gt=0"`
	Tanggal    string  `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
	Keterangan *string `json:"keterangan,omitempty" form:"keterangan"`
}

func (r *CreateAnggotaRequest) ToModel() *model.KoperasiAnggota {
	return &model.KoperasiAnggota{
		AnggotaNama: r.Nama,
		AnggotaNoHP: r.NoHP,
	}
}

func (r *CreatePemasukanRequest) ToModel() *model.KoperasiPemasukan {
	m := &model.KoperasiPemasukan{
		PemasukanAnggotaID:  uuid.MustParse(r.AnggotaID),
		PemasukanNominal:    r.Nominal,
		PemasukanKeterangan: r.Keterangan,
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.PemasukanTanggal = datatypes.Date(t)
	}
	return m
}

func (r *CreatePengeluaranRequest) ToModel() *model.KoperasiPengeluaran {
	m := &model.KoperasiPengeluaran{
		PengeluaranNama:       r.Nama,
		PengeluaranNominal:    r.Nominal,
		PengeluaranKeterangan: r.Keterangan,
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.PengeluaranTanggal = datatypes.Date(t)
	}
	return m
}
