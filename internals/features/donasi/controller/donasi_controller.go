// 📁 controller/donasi_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/donasi/dto"
	"pesantrenku_backend/internals/features/donasi/model"
	donasiService "pesantrenku_backend/internals/features/donasi/service"
	helper "pesantrenku_backend/internals/helpers"
)

type DonasiController struct {
	DB *gorm.DB
}

func NewDonasiController(db *gorm.DB) *DonasiController {
	return &DonasiController{DB: db}
}

// 🟢 POST /api/donasi — boleh guest maupun login; simpan snap token Midtrans
func (ctrl *DonasiController) CreateDonasi(c *fiber.Ctx) error {
	var req dto.CreateDonasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	// 🔐 kalau login, ikat donasi ke user dari JWT
	var userUUID *uuid.UUID
	if raw := c.Locals("user_id"); raw != nil {
		if s, ok := raw.(string); ok && s != "" {
			if parsed, err := uuid.Parse(s); err == nil {
				userUUID = &parsed
			}
		}
	}

	donasi := model.Donasi{
		DonasiUserID:  userUUID,
		DonasiNama:    req.Nama,
		DonasiEmail:   req.Email,
		DonasiPesan:   req.Pesan,
		DonasiNominal: req.Nominal,
		DonasiStatus:  "pending",
		DonasiOrderID: fmt.Sprintf("DONASI-%d", time.Now().UnixNano()),
	}

	if err := ctrl.DB.Create(&donasi).Error; err != nil {
		log.Printf("[ERROR] create donasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, err := donasiService.GenerateSnapToken(donasi)
	if err != nil {
		log.Printf("[ERROR] snap token donasi %s: %v", donasi.DonasiOrderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	donasi.DonasiPaymentToken = token
	if err := ctrl.DB.Save(&donasi).Error; err != nil {
		log.Printf("[WARN] simpan token donasi %s: %v", donasi.DonasiOrderID, err)
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat, silakan lanjutkan pembayaran", fiber.Map{
		"order_id":   donasi.DonasiOrderID,
		"snap_token": token,
	})
}

// 🟢 POST /api/donasi/notification — webhook Midtrans, tanpa auth
func (ctrl *DonasiController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var donasi model.Donasi
	if err := ctrl.DB.Where("donasi_order_id = ?", orderID).First(&donasi).Error; err != nil {
		log.Printf("[WARN] webhook donasi %s tidak ditemukan", orderID)
		return c.SendStatus(fiber.StatusNotFound)
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		donasi.DonasiStatus = "completed"
		now := time.Now()
		donasi.DonasiPaidAt = &now
	case "deny", "cancel", "expire", "failure":
		donasi.DonasiStatus = "failed"
	default:
		donasi.DonasiStatus = "pending"
	}

	if err := ctrl.DB.Save(&donasi).Error; err != nil {
		log.Printf("[ERROR] update status donasi %s: %v", orderID, err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// 🔵 GET /api/donasi
func (ctrl *DonasiController) GetAllDonasi(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Donasi{})
	if status := c.Query("status"); status != "" {
		q = q.Where("donasi_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.Donasi
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil donasi")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Berhasil mengambil donasi", rows, &p)
}

// 🔵 GET /api/donasi/statistik?year=&month=
func (ctrl *DonasiController) GetStatistikDonasi(c *fiber.Ctx) error {
	periode, err := helper.ResolvePeriode(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	stats, err := donasiService.StatistikDonasi(ctrl.DB, periode)
	if err != nil {
		log.Printf("[ERROR] statistik donasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"period": periode.Label(),
		"stats":  stats,
	})
}
