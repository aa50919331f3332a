package dto

import (
	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/pelanggaran/model"
)

type CreatePelanggaranRequest struct {
	SantriID  string `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	Sanksi    string `json:"sanksi" form:"sanksi" validate:"required,oneof=RINGAN SEDANG BERAT SP1 SP2 SP3"`
	Deskripsi string `json:"deskripsi" form:"deskripsi" validate:"required"`
}

type UpdatePelanggaranRequest struct {
	Sanksi    *string `json:"sanksi,omitempty" form:"sanksi" validate:"omitempty,oneof=RINGAN SEDANG BERAT SP1 SP2 SP3"`
	Deskripsi *string `json:"deskripsi,omitempty" form:"deskripsi"`
}

func (r *CreatePelanggaranRequest) ToModel() *model.Pelanggaran {
	return &model.Pelanggaran{
		PelanggaranSantriID:  uuid.MustParse(r.SantriID),
		PelanggaranSanksi:    r.Sanksi,
		PelanggaranDeskripsi: r.Deskripsi,
	}
}
