package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
)

type MigrationHandler struct {
	db *gorm.DB
}

func NewMigrationHandler(db *gorm.DB) *MigrationHandler {
	return &MigrationHandler{db: db}
}

var seedStatuses = []model.Status{
	{Code: utils.STATUS_CODE_PENDING, Name: utils.STATUS_NAME_PENDING, IsActive: true},
	{Code: utils.STATUS_CODE_DRIVER_ASSIGNED, Name: utils.STATUS_NAME_DRIVER_ASSIGNED, IsActive: true},
	{Code: utils.STATUS_CODE_DELIVERED, Name: utils.STATUS_NAME_DELIVERED, IsActive: true},
	{Code: utils.STATUS_CODE_POSTPONED, Name: utils.STATUS_NAME_POSTPONED, IsActive: true},
	{Code: utils.STATUS_CODE_RETURNED, Name: utils.STATUS_NAME_RETURNED, IsActive: true},
	{Code: utils.STATUS_CODE_COLLECTED, Name: utils.STATUS_NAME_COLLECTED, IsActive: true},
}

func (h *MigrationHandler) Migrate(ctx *gin.Context) {

	_ = h.db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"")

	models := []interface{}{
		&model.Order{},
		&model.DriverPaymentSlip{},
		&model.MerchantPaymentSlip{},
		&model.DriverReturnSlip{},
		&model.MerchantReturnSlip{},
		&model.Status{},
		&model.PrintSetting{},
	}
	for _, m := range models {
		if err := h.db.AutoMigrate(m); err != nil {
			_ = ctx.Error(err)
			return
		}
	}

	// Seed the default status vocabulary, existing codes are left alone.
	for _, st := range seedStatuses {
		var count int64
		h.db.Model(&model.Status{}).Where("code = ?", st.Code).Count(&count)
		if count == 0 {
			_ = h.db.Create(&st).Error
		}
	}
}
