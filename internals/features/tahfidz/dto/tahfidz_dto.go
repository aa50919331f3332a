package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/tahfidz/model"
)

type CreateTahfidzRequest struct {
	SantriID string   `json:"santri_id" form:"santri_id" validate:"required,uuid4"`
	Surah    int      `json:"surah" form:"surah" validate:"required,min=1,max=114"`
	Nilai    *float64 `json:"nilai,omitempty" form:"nilai" validate:"omitempty,min=0,max=100"`
	Tanggal  string   `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
}

type UpdateTahfidzRequest struct {
	Surah   *int     `json:"surah,omitempty" form:"surah" validate:"omitempty,min=1,max=114"`
	Nilai   *float64 `json:"nilai,omitempty" form:"nilai" validate:"omitempty,min=0,max=100"`
	Tanggal *string  `json:"tanggal,omitempty" form:"tanggal" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateTahfidzRequest) ToModel() *model.Tahfidz {
	m := &model.Tahfidz{
		TahfidzSantriID: uuid.MustParse(r.SantriID),
		TahfidzSurah:    r.Surah,
		TahfidzNilai:    r.Nilai,
	}
	if t, err := time.Parse("2006-01-02", r.Tanggal); err == nil {
		m.TahfidzTanggal = datatypes.Date(t)
	}
	return m
}
