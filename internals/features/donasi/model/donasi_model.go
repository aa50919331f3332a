package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donasi struct {
	DonasiID uuid.UUID `gorm:"column:donasi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donasi_id"`

	DonasiUserID *uuid.UUID `gorm:"column:donasi_user_id;type:uuid" json:"donasi_user_id,omitempty"`

	DonasiNama  string `gorm:"column:donasi_nama;type:varchar(100);not null" json:"donasi_nama"`
	DonasiEmail string `gorm:"column:donasi_email;type:varchar(100);not null" json:"donasi_email"`
	DonasiPesan string `gorm:"column:donasi_pesan;type:text" json:"donasi_pesan"`

	DonasiNominal int    `gorm:"column:donasi_nominal;not null;check:donasi_nominal > 0" json:"donasi_nominal"`
	DonasiStatus  string `gorm:"column:donasi_status;type:varchar(20);default:'pending'" json:"donasi_status"` // pending | completed | failed

	DonasiOrderID      string `gorm:"column:donasi_order_id;type:varchar(100);not null;unique" json:"donasi_order_id"`
	DonasiPaymentToken string `gorm:"column:donasi_payment_token;type:text" json:"donasi_payment_token"`

	DonasiPaidAt *time.Time     `gorm:"column:donasi_paid_at" json:"donasi_paid_at,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Donasi) TableName() string {
	return "donasis"
}
