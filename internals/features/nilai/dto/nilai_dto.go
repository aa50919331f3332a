package dto

import (
	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/nilai/model"
)

type CreateMapelRequest struct {
	Nama  string `json:"nama" form:"nama" validate:"required,max=100"`
	Kelas string `json:"kelas" form:"kelas" validate:"required"`
}

type CreateEkskulRequest struct {
	Nama string `json:"nama" form:"nama" validate:"required,max=100"`
}

// UpsertNilaiRequest: kunci (santri, mapel, semester, tahun_ajaran)
// menentukan baris; nilai di-update bila kunci sudah ada.
type UpsertNilaiRequest struct {
	SantriID    string  `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	MapelID     string  `json:"mapel_id" form:"mapel_id" validate:"required,uuid4"`
	Semester    string  `json:"semester" form:"semester" validate:"required,oneof=GANJIL GENAP"`
	TahunAjaran string  `json:"tahun_ajaran" form:"tahun_ajaran" validate:"required,max=9"`
	Nilai       float64 `json:"nilai" form:"nilai" validate:"min=0,max=100"`
}

type UpsertNilaiEkskulRequest struct {
	SantriID    string  `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	EkskulID    string  `json:"ekskul_id" form:"ekskul_id" validate:"required,uuid4"`
	Semester    string  `json:"semester" form:"semester" validate:"required,oneof=GANJIL GENAP"`
	TahunAjaran string  `json:"tahun_ajaran" form:"tahun_ajaran" validate:"required,max=9"`
	Nilai       float64 `json:"nilai" form:"nilai" validate:"min=0,max=100"`
}

func (r *UpsertNilaiRequest) ToModel() *model.Nilai {
	return &model.Nilai{
		NilaiSantriID:    uuid.MustParse(r.SantriID),
		NilaiMapelID:     uuid.MustParse(r.MapelID),
		NilaiSemester:    r.Semester,
		NilaiTahunAjaran: r.TahunAjaran,
		NilaiNilai:       r.Nilai,
	}
}

func (r *UpsertNilaiEkskulRequest) ToModel() *model.NilaiEkskul {
	return &model.NilaiEkskul{
		NilaiEkskulSantriID:    uuid.MustParse(r.SantriID),
		NilaiEkskulEkskulID:    uuid.MustParse(r.EkskulID),
		NilaiEkskulSemester:    r.Semester,
		NilaiEkskulTahunAjaran: r.TahunAjaran,
		NilaiEkskulNilai:       r.Nilai,
	}
}
