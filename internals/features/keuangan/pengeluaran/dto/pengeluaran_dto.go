package dto

import (
	"time"

	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/keuangan/pengeluaran/model"
)

type CreatePengeluaranRequest struct {
	Nama     string  `json:"nama" form:"nama" validate:"required,max=100"`
	Kategori string  `json:"kategori" form:"kategori" validate:"required,oneof=OPERASIONAL KONSUMSI PEMELIHARAAN GAJI LAINNYA"`
	Jumlah   float64 `json:"jumlah" form:"jumlah" validate:"required,gt=0"`
	Tanggal  string  `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
}

type UpdatePengeluaranRequest struct {
	Nama     *string  `json:"nama,omitempty" form:"nama" validate:"omitempty,max=100"`
	Kategori *string  `json:"kategori,omitempty" form:"kategori" validate:"omitempty,oneof=OPERASIONAL KONSUMSI PEMELIHARAAN GAJI LAINNYA"`
	Jumlah   *float64 `json:"jumlah,omitempty" form:"jumlah" validate:"omitempty,gt=0"`
	Tanggal  *string  `json:"tanggal,omitempty" form:"tanggal" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreatePengeluaranRequest) ToModel() *model.Pengeluaran {
	m := &model.Pengeluaran{
		PengeluaranNama:     r.Nama,
		PengeluaranKategori: r.Kategori,
		PengeluaranJumlah:   r.Jumlah,
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.PengeluaranTanggal = datatypes.Date(t)
	}
	return m
}
