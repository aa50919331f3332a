package dto

import (
	"time"

	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/santri/model"
)

type CreateSantriRequest struct {
	NIS          string  `json:"nis" validate:"required,max=20"`
	Nama         string  `json:"nama" validate:"required,max=100"`
	JenisKelamin string  `json:"jenis_kelamin" validate:"required,oneof=PUTRA PUTRI"`
	Kelas        string  `json:"kelas" validate:"required"`
	Tingkatan    string  `json:"tingkatan" validate:"required,oneof=MI MTS MA"`
	Status       string  `json:"status" validate:"omitempty,oneof=AKTIF TIDAK_AKTIF LULUS"`
	TempatLahir  *string `json:"tempat_lahir,omitempty"`
	TanggalLahir *string `json:"tanggal_lahir,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Alamat       *string `json:"alamat,omitempty"`
	NamaWali     *string `json:"nama_wali,omitempty"`
	NoHPWali     *string `json:"no_hp_wali,omitempty"`
	TahunMasuk   int     `json:"tahun_masuk" validate:"required,min=2000,max=2100"`
}

type UpdateSantriRequest struct {
	Nama         *string `json:"nama,omitempty" validate:"omitempty,max=100"`
	JenisKelamin *string `json:"jenis_kelamin,omitempty" validate:"omitempty,oneof=PUTRA PUTRI"`
	Kelas        *string `json:"kelas,omitempty"`
	Tingkatan    *string `json:"tingkatan,omitempty" validate:"omitempty,oneof=MI MTS MA"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=AKTIF TIDAK_AKTIF LULUS"`
	TempatLahir  *string `json:"tempat_lahir,omitempty"`
	TanggalLahir *string `json:"tanggal_lahir,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Alamat       *string `json:"alamat,omitempty"`
	NamaWali     *string `json:"nama_wali,omitempty"`
	NoHPWali     *string `json:"no_hp_wali,omitempty"`
	TahunMasuk   *int    `json:"tahun_masuk,omitempty" validate:"omitempty,min=2000,max=2100"`
}

func (r *CreateSantriRequest) ToModel() *model.Santri {
	m := &model.Santri{
		SantriNIS:          r.NIS,
		SantriNama:         r.Nama,
		SantriJenisKelamin: r.JenisKelamin,
		SantriKelas:        r.Kelas,
		SantriTingkatan:    r.Tingkatan,
		SantriStatus:       r.Status,
		SantriTempatLahir:  r.TempatLahir,
		SantriAlamat:       r.Alamat,
		SantriNamaWali:     r.NamaWali,
		SantriNoHPWali:     r.NoHPWali,
		SantriTahunMasuk:   r.TahunMasuk,
	}
	if m.SantriStatus == "" {
		m.SantriStatus = "AKTIF"
	}
	if r.TanggalLahir != nil {
		if t, err := time.Parse("2006-01-02", *r.TanggalLahir); err == nil {
			d := datatypes.Date(t)
			m.SantriTanggalLahir = &d
		}
	}
	return m
}

// ApplyTo menimpa field yang dikirim saja (partial update).
func (r *UpdateSantriRequest) ApplyTo(m *model.Santri) {
	if r.Nama != nil {
		m.SantriNama = *r.Nama
	}
	if r.JenisKelamin != nil {
		m.SantriJenisKelamin = *r.JenisKelamin
	}
	if r.Kelas != nil {
		m.SantriKelas = *r.Kelas
	}
	if r.Tingkatan != nil {
		m.SantriTingkatan = *r.Tingkatan
	}
	if r.Status != nil {
		m.SantriStatus = *r.Status
	}
	if r.TempatLahir != nil {
		m.SantriTempatLahir = r.TempatLahir
	}
	if r.TanggalLahir != nil {
		if t, err := time.Parse("2006-01-02", *r.TanggalLahir); err == nil {
			d := datatypes.Date(t)
			m.SantriTanggalLahir = &d
		}
	}
	if r.Alamat != nil {
		m.SantriAlamat = r.Alamat
	}
	if r.NamaWali != nil {
		m.SantriNamaWali = r.NamaWali
	}
	if r.NoHPWali != nil {
		m.SantriNoHPWali = r.NoHPWali
	}
	if r.TahunMasuk != nil {
		m.SantriTahunMasuk = *r.TahunMasuk
	}
}
