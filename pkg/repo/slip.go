package repo

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
)

// Driver payment slips.

func (r *RepoPG) CreateDriverPaymentSlip(ctx context.Context, slip *model.DriverPaymentSlip, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateDriverPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&slip).Error; err != nil {
		log.WithError(err).Error("error_500: create slip in CreateDriverPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneDriverPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (rs model.DriverPaymentSlip, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneDriverPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneDriverPaymentSlip - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get slip in GetOneDriverPaymentSlip - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetListDriverPaymentSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (rs model.ListDriverPaymentSlipResponse, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	tx = tx.Model(&model.DriverPaymentSlip{})
	tx = applySlipFilter(tx, "driver_name", req)

	var total int64 = 0
	tx = tx.Count(&total)
	tx = tx.Order("created_at desc").Limit(pageSize).Offset(r.GetOffset(page, pageSize)).Find(&rs.Data)

	if rs.Meta, err = r.GetPaginationInfo("", tx, int(total), page, pageSize); err != nil {
		return rs, err
	}

	return rs, nil
}

func (r *RepoPG) DeleteDriverPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteDriverPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id = ?", id).Delete(&model.DriverPaymentSlip{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: delete slip in DeleteDriverPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in DeleteDriverPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

// Merchant payment slips.

func (r *RepoPG) CreateMerchantPaymentSlip(ctx context.Context, slip *model.MerchantPaymentSlip, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateMerchantPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&slip).Error; err != nil {
		log.WithError(err).Error("error_500: create slip in CreateMerchantPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneMerchantPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (rs model.MerchantPaymentSlip, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneMerchantPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneMerchantPaymentSlip - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get slip in GetOneMerchantPaymentSlip - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetListMerchantPaymentSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (rs model.ListMerchantPaymentSlipResponse, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	tx = tx.Model(&model.MerchantPaymentSlip{})
	tx = applySlipFilter(tx, "merchant_name", req)
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}

	var total int64 = 0
	tx = tx.Count(&total)
	tx = tx.Order("created_at desc").Limit(pageSize).Offset(r.GetOffset(page, pageSize)).Find(&rs.Data)

	if rs.Meta, err = r.GetPaginationInfo("", tx, int(total), page, pageSize); err != nil {
		return rs, err
	}

	return rs, nil
}

func (r *RepoPG) DeleteMerchantPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteMerchantPaymentSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id = ?", id).Delete(&model.MerchantPaymentSlip{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: delete slip in DeleteMerchantPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in DeleteMerchantPaymentSlip - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

func (r *RepoPG) UpdateMerchantPaymentSlipStatus(ctx context.Context, id uuid.UUID, status string, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.UpdateMerchantPaymentSlipStatus")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Model(&model.MerchantPaymentSlip{}).Where("id = ?", id).Update("status", status)
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: update slip status in UpdateMerchantPaymentSlipStatus - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in UpdateMerchantPaymentSlipStatus - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

// Driver return slips.

func (r *RepoPG) CreateDriverReturnSlip(ctx context.Context, slip *model.DriverReturnSlip, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateDriverReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&slip).Error; err != nil {
		log.WithError(err).Error("error_500: create slip in CreateDriverReturnSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneDriverReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (rs model.DriverReturnSlip, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneDriverReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneDriverReturnSlip - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get slip in GetOneDriverReturnSlip - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetListDriverReturnSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (rs model.ListDriverReturnSlipResponse, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	tx = tx.Model(&model.DriverReturnSlip{})
	tx = applySlipFilter(tx, "driver_name", req)

	var total int64 = 0
	tx = tx.Count(&total)
	tx = tx.Order("created_at desc").Limit(pageSize).Offset(r.GetOffset(page, pageSize)).Find(&rs.Data)

	if rs.Meta, err = r.GetPaginationInfo("", tx, int(total), page, pageSize); err != nil {
		return rs, err
	}

	return rs, nil
}

func (r *RepoPG) DeleteDriverReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteDriverReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id = ?", id).Delete(&model.DriverReturnSlip{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: delete slip in DeleteDriverReturnSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in DeleteDriverReturnSlip - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

// Merchant return slips.

func (r *RepoPG) CreateMerchantReturnSlip(ctx context.Context, slip *model.MerchantReturnSlip, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateMerchantReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&slip).Error; err != nil {
		log.WithError(err).Error("error_500: create slip in CreateMerchantReturnSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetOneMerchantReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (rs model.MerchantReturnSlip, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneMerchantReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneMerchantReturnSlip - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get slip in GetOneMerchantReturnSlip - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetListMerchantReturnSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (rs model.ListMerchantReturnSlipResponse, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	tx = tx.Model(&model.MerchantReturnSlip{})
	tx = applySlipFilter(tx, "merchant_name", req)
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}

	var total int64 = 0
	tx = tx.Count(&total)
	tx = tx.Order("created_at desc").Limit(pageSize).Offset(r.GetOffset(page, pageSize)).Find(&rs.Data)

	if rs.Meta, err = r.GetPaginationInfo("", tx, int(total), page, pageSize); err != nil {
		return rs, err
	}

	return rs, nil
}

func (r *RepoPG) DeleteMerchantReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteMerchantReturnSlip")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id = ?", id).Delete(&model.MerchantReturnSlip{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: delete slip in DeleteMerchantReturnSlip - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in DeleteMerchantReturnSlip - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

func (r *RepoPG) UpdateMerchantReturnSlipStatus(ctx context.Context, id uuid.UUID, status string, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.UpdateMerchantReturnSlipStatus")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Model(&model.MerchantReturnSlip{}).Where("id = ?", id).Update("status", status)
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: update slip status in UpdateMerchantReturnSlipStatus - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in UpdateMerchantReturnSlipStatus - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

func applySlipFilter(tx *gorm.DB, nameColumn string, req model.SlipParam) *gorm.DB {
	if req.Name != "" {
		tx = tx.Where(nameColumn+" ilike ?", "%"+req.Name+"%")
	}
	if req.DateFrom != nil && req.DateTo != nil {
		tx = tx.Where("date BETWEEN ? AND ?", req.DateFrom, req.DateTo)
	}
	return tx
}
