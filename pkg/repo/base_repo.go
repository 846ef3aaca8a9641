package repo

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/pkg/model"
)

const (
	generalQueryTimeout = 60 * time.Second
	defaultPageSize     = 30
	maxPageSize         = 1000
)

func NewPGRepo(db *gorm.DB) PGInterface {
	return &RepoPG{DB: db}
}

type PGInterface interface {
	// DB
	DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc)
	Transaction(ctx context.Context, fn func(rp PGInterface) error) error

	// Order
	CreateOrder(ctx context.Context, order *model.Order, tx *gorm.DB) error
	GetOneOrder(ctx context.Context, id string, tx *gorm.DB) (model.Order, error)
	GetAllOrder(ctx context.Context, req model.OrderParam, tx *gorm.DB) (model.ListOrderResponse, error)
	GetNextOrderNumber(ctx context.Context, tx *gorm.DB) (int, error)
	UpdateOrderFields(ctx context.Context, id string, updates map[string]interface{}, tx *gorm.DB) error
	DeleteOrder(ctx context.Context, id string, tx *gorm.DB) error
	GetExistingOrderIds(ctx context.Context, ids []string, tx *gorm.DB) ([]string, error)
	DeleteOrdersByIds(ctx context.Context, ids []string, tx *gorm.DB) (int, error)
	GetOrdersForReport(ctx context.Context, req model.ExportOrderReportRequest, tx *gorm.DB) ([]model.Order, error)
	GetOrdersForAnalytics(ctx context.Context, req model.AnalyticsParam, tx *gorm.DB) ([]model.Order, error)

	// Driver payment slip
	CreateDriverPaymentSlip(ctx context.Context, slip *model.DriverPaymentSlip, tx *gorm.DB) error
	GetOneDriverPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (model.DriverPaymentSlip, error)
	GetListDriverPaymentSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (model.ListDriverPaymentSlipResponse, error)
	DeleteDriverPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error

	// Merchant payment slip
	CreateMerchantPaymentSlip(ctx context.Context, slip *model.MerchantPaymentSlip, tx *gorm.DB) error
	GetOneMerchantPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (model.MerchantPaymentSlip, error)
	GetListMerchantPaymentSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (model.ListMerchantPaymentSlipResponse, error)
	DeleteMerchantPaymentSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error
	UpdateMerchantPaymentSlipStatus(ctx context.Context, id uuid.UUID, status string, tx *gorm.DB) error

	// Driver return slip
	CreateDriverReturnSlip(ctx context.Context, slip *model.DriverReturnSlip, tx *gorm.DB) error
	GetOneDriverReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (model.DriverReturnSlip, error)
	GetListDriverReturnSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (model.ListDriverReturnSlipResponse, error)
	DeleteDriverReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error

	// Merchant return slip
	CreateMerchantReturnSlip(ctx context.Context, slip *model.MerchantReturnSlip, tx *gorm.DB) error
	GetOneMerchantReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) (model.MerchantReturnSlip, error)
	GetListMerchantReturnSlip(ctx context.Context, req model.SlipParam, tx *gorm.DB) (model.ListMerchantReturnSlipResponse, error)
	DeleteMerchantReturnSlip(ctx context.Context, id uuid.UUID, tx *gorm.DB) error
	UpdateMerchantReturnSlipStatus(ctx context.Context, id uuid.UUID, status string, tx *gorm.DB) error

	// Status reference table
	GetListStatus(ctx context.Context, tx *gorm.DB) ([]model.Status, error)

	// Print settings
	GetPrintSetting(ctx context.Context, kind string, tx *gorm.DB) (model.PrintSetting, error)
	UpsertPrintSetting(ctx context.Context, setting *model.PrintSetting, tx *gorm.DB) error
}

type RepoPG struct {
	DB    *gorm.DB
	debug bool
}

func (r *RepoPG) GetRepo() *gorm.DB {
	return r.DB
}

func (r *RepoPG) DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, generalQueryTimeout)
	return r.DB.WithContext(ctx), cancel
}

// Transaction runs fn against a repo bound to one database transaction.
// Any error from fn rolls back every statement issued inside it.
func (r *RepoPG) Transaction(ctx context.Context, fn func(rp PGInterface) error) error {
	tx := r.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := fn(&RepoPG{DB: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (r *RepoPG) GetPage(page int) int {
	if page == 0 {
		return 1
	}
	return page
}

func (r *RepoPG) GetOffset(page int, pageSize int) int {
	return (page - 1) * pageSize
}

func (r *RepoPG) GetPageSize(pageSize int) int {
	if pageSize == 0 {
		return defaultPageSize
	}
	if pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

func (r *RepoPG) GetTotalPages(totalRows, pageSize int) int {
	return int(math.Ceil(float64(totalRows) / float64(pageSize)))
}

func (r *RepoPG) GetPaginationInfo(query string, tx *gorm.DB, totalRow, page, pageSize int) (rs ginext.BodyMeta, err error) {
	tm := struct {
		Count int `json:"count"`
	}{}
	if query != "" {
		if err = tx.Raw(query).Scan(&tm).Error; err != nil {
			return nil, err
		}
		totalRow = tm.Count
	}

	return ginext.BodyMeta{
		"page":        page,
		"page_size":   pageSize,
		"total_pages": r.GetTotalPages(totalRow, pageSize),
		"total_rows":  totalRow,
	}, nil
}
