package dto

import (
	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/ustadz/model"
)

type CreateUstadzRequest struct {
	Nama   string  `json:"nama" form:"nama" validate:"required,max=100"`
	NIK    *string `json:"nik,omitempty" form:"nik" validate:"omitempty,len=16,numeric"`
	NoHP   *string `json:"no_hp,omitempty" form:"no_hp" validate:"omitempty,max=20"`
	Alamat *string `json:"alamat,omitempty" form:"alamat"`
}

type UpdateUstadzRequest struct {
	Nama   *string `json:"nama,omitempty" form:"nama" validate:"omitempty,max=100"`
	NoHP   *string `json:"no_hp,omitempty" form:"no_hp" validate:"omitempty,max=20"`
	Alamat *string `json:"alamat,omitempty" form:"alamat"`
}

type AssignWaliKelasRequest struct {
	UstadzID    string `json:"ustadz_id" form:"ustadz_id" validate:"required,uuid4"`
	Kelas       string `json:"kelas" form:"kelas" validate:"required"`
	TahunAjaran string `json:"tahun_ajaran" form:"tahun_ajaran" validate:"required,max=9"`
}

func (r *CreateUstadzRequest) ToModel() *model.Ustadz {
	return &model.Ustadz{
		UstadzNama:   r.Nama,
		UstadzNIK:    r.NIK,
		UstadzNoHP:   r.NoHP,
		UstadzAlamat: r.Alamat,
	}
}

func (r *AssignWaliKelasRequest) ToModel() *model.WaliKelas {
	return &model.WaliKelas{
		WaliKelasUstadzID:    uuid.MustParse(r.UstadzID),
		WaliKelasKelas:       r.Kelas,
		WaliKelasTahunAjaran: r.TahunAjaran,
	}
}
