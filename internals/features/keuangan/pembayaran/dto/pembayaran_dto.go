package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/keuangan/pembayaran/model"
)

type CreatePembayaranRequest struct {
	SantriID string  `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	Tanggal  string  `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
	Infaq    float64 `json:"infaq" form:"infaq" validate:"min=0"`
	Laundry  float64 `json:"laundry" form:"laundry" validate:"min=0"`
}

type UpdatePembayaranRequest struct {
	Tanggal *string  `json:"tanggal,omitempty" form:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Infaq   *float64 `json:"infaq,omitempty" form:"infaq" validate:"omitempty,min=0"`
	Laundry *float64 `json:"laundry,omitempty" form:"laundry" validate:"omitempty,min=0"`
}

func (r *CreatePembayaranRequest) ToModel() *model.Pembayaran {
	m := &model.Pembayaran{
		PembayaranSantriID: uuid.MustParse(r.SantriID),
		PembayaranInfaq:    r.Infaq,
		PembayaranLaundry:  r.Laundry,
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.PembayaranTanggal = datatypes.Date(t)
	}
	return m
}
