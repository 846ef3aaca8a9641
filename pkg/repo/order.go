package repo

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
	"wasel/ms-delivery-management/pkg/valid"
)

func (r *RepoPG) CreateOrder(ctx context.Context, order *model.Order, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.CreateOrder")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Create(&order).Error; err != nil {
		log.WithError(err).Error("error_500: create order in CreateOrder - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

// GetNextOrderNumber reads max(order_number)+1. Best-effort only: two
// concurrent creations may read the same value, there is no sequence behind it.
func (r *RepoPG) GetNextOrderNumber(ctx context.Context, tx *gorm.DB) (int, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetNextOrderNumber")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	var data struct {
		NextNumber int `json:"next_number"`
	}
	if err := tx.Raw("SELECT COALESCE(MAX(order_number), 0) + 1 AS next_number FROM orders").Scan(&data).Error; err != nil {
		log.WithError(err).Error("error_500: get next order number in GetNextOrderNumber - RepoPG")
		return 0, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return data.NextNumber, nil
}

func (r *RepoPG) GetOneOrder(ctx context.Context, id string, tx *gorm.DB) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOneOrder")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Model(&model.Order{}).Where("id = ?", id).First(&rs).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.WithError(err).Error("error_404: record not found in GetOneOrder - RepoPG")
			return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
		}
		log.WithError(err).Error("error_500: get one order in GetOneOrder - RepoPG")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetAllOrder(ctx context.Context, req model.OrderParam, tx *gorm.DB) (rs model.ListOrderResponse, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	page := r.GetPage(req.Page)
	pageSize := r.GetPageSize(req.PageSize)

	tx = tx.Model(&model.Order{})

	if req.Driver != "" {
		tx = tx.Where("driver = ?", req.Driver)
	}

	if req.Merchant != "" {
		tx = tx.Where("merchant = ?", req.Merchant)
	}

	if req.City != "" {
		tx = tx.Where("city = ?", req.City)
	}

	if req.Region != "" {
		tx = tx.Where("region = ?", req.Region)
	}

	if req.Source != "" {
		tx = tx.Where("source = ?", req.Source)
	}

	if req.Status != "" {
		req.Status = strings.ReplaceAll(req.Status, " ,", ",")
		statusArr := strings.Split(req.Status, ",")
		tx = tx.Where("status IN (?)", statusArr)
	}

	if req.Search != "" {
		tx = tx.Where("id ilike ? OR recipient ilike ? OR phone ilike ? OR reference_number ilike ?",
			"%"+req.Search+"%", "%"+utils.TransformString(req.Search, false)+"%", "%"+req.Search+"%", "%"+req.Search+"%")
	}

	if req.DateFrom != nil && req.DateTo != nil {
		tx = tx.Where("date BETWEEN ? AND ?", req.DateFrom, req.DateTo)
	} else if req.DateFrom != nil {
		tx = tx.Where("date >= ?", req.DateFrom)
	}

	var total int64 = 0
	tx = tx.Count(&total)

	if req.Sort != "" {
		tx = tx.Order(req.Sort)
	} else {
		tx = tx.Order("order_number desc")
	}

	tx = tx.Limit(pageSize).Offset(r.GetOffset(page, pageSize)).Find(&rs.Data)

	if rs.Meta, err = r.GetPaginationInfo("", tx, int(total), page, pageSize); err != nil {
		return rs, err
	}

	if rs.Meta["total_pages"].(int) > page {
		rs.Meta["next_page"] = page + 1
	} else {
		rs.Meta["next_page"] = 0
	}

	return rs, nil
}

// UpdateOrderFields writes the given columns in one statement. Status
// bookkeeping callers put status and previous_status in the same map so the
// transition lands atomically.
func (r *RepoPG) UpdateOrderFields(ctx context.Context, id string, updates map[string]interface{}, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.UpdateOrderFields")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err := tx.Model(&model.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		log.WithError(err).Error("error_500: update order in UpdateOrderFields - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) DeleteOrder(ctx context.Context, id string, tx *gorm.DB) error {
	log := logger.WithCtx(ctx, "RepoPG.DeleteOrder")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id = ?", id).Delete(&model.Order{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: delete order in DeleteOrder - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	if rs.RowsAffected == 0 {
		log.Error("error_404: record not found in DeleteOrder - RepoPG")
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}

	return nil
}

func (r *RepoPG) GetExistingOrderIds(ctx context.Context, ids []string, tx *gorm.DB) (rs []string, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetExistingOrderIds")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	if err = tx.Model(&model.Order{}).Where("id IN (?)", ids).Pluck("id", &rs).Error; err != nil {
		log.WithError(err).Error("error_500: pluck order ids in GetExistingOrderIds - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// DeleteOrdersByIds removes matching rows in one set-oriented statement and
// reports the number of rows actually deleted.
func (r *RepoPG) DeleteOrdersByIds(ctx context.Context, ids []string, tx *gorm.DB) (int, error) {
	log := logger.WithCtx(ctx, "RepoPG.DeleteOrdersByIds")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := tx.Where("id IN (?)", ids).Delete(&model.Order{})
	if rs.Error != nil {
		log.WithError(rs.Error).Error("error_500: bulk delete orders in DeleteOrdersByIds - RepoPG")
		return 0, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return int(rs.RowsAffected), nil
}

func (r *RepoPG) GetOrdersForReport(ctx context.Context, req model.ExportOrderReportRequest, tx *gorm.DB) (orders []model.Order, err error) {
	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.Order{})
	if req.Driver != "" {
		tx = tx.Where("driver = ?", req.Driver)
	}
	if req.Merchant != "" {
		tx = tx.Where("merchant = ?", req.Merchant)
	}
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}
	if !valid.DayTime(req.StartTime).IsZero() && !valid.DayTime(req.EndTime).IsZero() {
		tx = tx.Where("date >= ? AND date <= ?", req.StartTime, req.EndTime)
	}
	err = tx.Order("order_number asc").Find(&orders).Error

	return
}

func (r *RepoPG) GetOrdersForAnalytics(ctx context.Context, req model.AnalyticsParam, tx *gorm.DB) (orders []model.Order, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetOrdersForAnalytics")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	tx = tx.Model(&model.Order{})
	if req.Driver != "" {
		tx = tx.Where("driver = ?", req.Driver)
	}
	if req.Merchant != "" {
		tx = tx.Where("merchant = ?", req.Merchant)
	}
	if req.Region != "" {
		tx = tx.Where("region = ?", req.Region)
	}
	if req.Status != "" {
		statusArr := strings.Split(strings.ReplaceAll(req.Status, " ,", ","), ",")
		tx = tx.Where("status IN (?)", statusArr)
	}
	if req.DateFrom != nil && req.DateTo != nil {
		tx = tx.Where("date BETWEEN ? AND ?", req.DateFrom, req.DateTo)
	}

	if err = tx.Order("date asc").Find(&orders).Error; err != nil {
		log.WithError(err).Error("error_500: load orders in GetOrdersForAnalytics - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return orders, nil
}
