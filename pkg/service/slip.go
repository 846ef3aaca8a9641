package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/datatypes"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
	"wasel/ms-delivery-management/pkg/valid"
)

// Slips are snapshot ledger records: item_count freezes at creation and the
// order id list is never reconciled against later order mutations.

type SlipService struct {
	repo repo.PGInterface
}

type SlipServiceInterface interface {
	CreateDriverPaymentSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.DriverPaymentSlip, error)
	GetOneDriverPaymentSlip(ctx context.Context, id uuid.UUID) (model.DriverPaymentSlip, error)
	GetListDriverPaymentSlip(ctx context.Context, req model.SlipParam) (model.ListDriverPaymentSlipResponse, error)
	DeleteDriverPaymentSlip(ctx context.Context, id uuid.UUID) error

	CreateMerchantPaymentSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.MerchantPaymentSlip, error)
	GetOneMerchantPaymentSlip(ctx context.Context, id uuid.UUID) (model.MerchantPaymentSlip, error)
	GetListMerchantPaymentSlip(ctx context.Context, req model.SlipParam) (model.ListMerchantPaymentSlipResponse, error)
	DeleteMerchantPaymentSlip(ctx context.Context, id uuid.UUID) error
	UpdateMerchantPaymentSlipStatus(ctx context.Context, updaterID uuid.UUID, id uuid.UUID, req model.UpdateSlipStatusBody) error

	CreateDriverReturnSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.DriverReturnSlip, error)
	GetOneDriverReturnSlip(ctx context.Context, id uuid.UUID) (model.DriverReturnSlip, error)
	GetListDriverReturnSlip(ctx context.Context, req model.SlipParam) (model.ListDriverReturnSlipResponse, error)
	DeleteDriverReturnSlip(ctx context.Context, id uuid.UUID) error

	CreateMerchantReturnSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.MerchantReturnSlip, error)
	GetOneMerchantReturnSlip(ctx context.Context, id uuid.UUID) (model.MerchantReturnSlip, error)
	GetListMerchantReturnSlip(ctx context.Context, req model.SlipParam) (model.ListMerchantReturnSlipResponse, error)
	DeleteMerchantReturnSlip(ctx context.Context, id uuid.UUID) error
	UpdateMerchantReturnSlipStatus(ctx context.Context, updaterID uuid.UUID, id uuid.UUID, req model.UpdateSlipStatusBody) error
}

func NewSlipService(repo repo.PGInterface) SlipServiceInterface {
	return &SlipService{repo: repo}
}

func slipDate(in *time.Time) datatypes.Date {
	if in == nil {
		return datatypes.Date(time.Now())
	}
	return datatypes.Date(*in)
}

func validSlipStatus(ctx context.Context, req model.UpdateSlipStatusBody) (string, error) {
	status := valid.String(req.Status)
	if status != utils.SLIP_STATUS_OPEN && status != utils.SLIP_STATUS_SETTLED {
		logger.WithCtx(ctx, "SlipService.validSlipStatus").
			Errorf("error_400: invalid slip status %v", status)
		return "", ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
	return status, nil
}

func (s *SlipService) CreateDriverPaymentSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.DriverPaymentSlip, error) {
	slip := model.DriverPaymentSlip{
		DriverName: valid.String(req.Name),
		Date:       slipDate(req.Date),
		OrderIds:   req.OrderIds,
		ItemCount:  len(req.OrderIds),
	}
	slip.CreatorID = creatorID

	if err := s.repo.CreateDriverPaymentSlip(ctx, &slip, nil); err != nil {
		return model.DriverPaymentSlip{}, err
	}

	return slip, nil
}

func (s *SlipService) GetOneDriverPaymentSlip(ctx context.Context, id uuid.UUID) (model.DriverPaymentSlip, error) {
	return s.repo.GetOneDriverPaymentSlip(ctx, id, nil)
}

func (s *SlipService) GetListDriverPaymentSlip(ctx context.Context, req model.SlipParam) (model.ListDriverPaymentSlipResponse, error) {
	return s.repo.GetListDriverPaymentSlip(ctx, req, nil)
}

func (s *SlipService) DeleteDriverPaymentSlip(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDriverPaymentSlip(ctx, id, nil)
}

func (s *SlipService) CreateMerchantPaymentSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.MerchantPaymentSlip, error) {
	slip := model.MerchantPaymentSlip{
		MerchantName: valid.String(req.Name),
		Date:         slipDate(req.Date),
		OrderIds:     req.OrderIds,
		ItemCount:    len(req.OrderIds),
		Status:       utils.SLIP_STATUS_OPEN,
	}
	slip.CreatorID = creatorID

	if err := s.repo.CreateMerchantPaymentSlip(ctx, &slip, nil); err != nil {
		return model.MerchantPaymentSlip{}, err
	}

	return slip, nil
}

func (s *SlipService) GetOneMerchantPaymentSlip(ctx context.Context, id uuid.UUID) (model.MerchantPaymentSlip, error) {
	return s.repo.GetOneMerchantPaymentSlip(ctx, id, nil)
}

func (s *SlipService) GetListMerchantPaymentSlip(ctx context.Context, req model.SlipParam) (model.ListMerchantPaymentSlipResponse, error) {
	return s.repo.GetListMerchantPaymentSlip(ctx, req, nil)
}

func (s *SlipService) DeleteMerchantPaymentSlip(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMerchantPaymentSlip(ctx, id, nil)
}

func (s *SlipService) UpdateMerchantPaymentSlipStatus(ctx context.Context, updaterID uuid.UUID, id uuid.UUID, req model.UpdateSlipStatusBody) error {
	status, err := validSlipStatus(ctx, req)
	if err != nil {
		return err
	}
	return s.repo.UpdateMerchantPaymentSlipStatus(ctx, id, status, nil)
}

func (s *SlipService) CreateDriverReturnSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.DriverReturnSlip, error) {
	slip := model.DriverReturnSlip{
		DriverName: valid.String(req.Name),
		Date:       slipDate(req.Date),
		OrderIds:   req.OrderIds,
		ItemCount:  len(req.OrderIds),
	}
	slip.CreatorID = creatorID

	if err := s.repo.CreateDriverReturnSlip(ctx, &slip, nil); err != nil {
		return model.DriverReturnSlip{}, err
	}

	return slip, nil
}

func (s *SlipService) GetOneDriverReturnSlip(ctx context.Context, id uuid.UUID) (model.DriverReturnSlip, error) {
	return s.repo.GetOneDriverReturnSlip(ctx, id, nil)
}

func (s *SlipService) GetListDriverReturnSlip(ctx context.Context, req model.SlipParam) (model.ListDriverReturnSlipResponse, error) {
	return s.repo.GetListDriverReturnSlip(ctx, req, nil)
}

func (s *SlipService) DeleteDriverReturnSlip(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDriverReturnSlip(ctx, id, nil)
}

func (s *SlipService) CreateMerchantReturnSlip(ctx context.Context, creatorID uuid.UUID, req model.SlipBody) (model.MerchantReturnSlip, error) {
	slip := model.MerchantReturnSlip{
		MerchantName: valid.String(req.Name),
		Date:         slipDate(req.Date),
		OrderIds:     req.OrderIds,
		ItemCount:    len(req.OrderIds),
		Status:       utils.SLIP_STATUS_OPEN,
	}
	slip.CreatorID = creatorID

	if err := s.repo.CreateMerchantReturnSlip(ctx, &slip, nil); err != nil {
		return model.MerchantReturnSlip{}, err
	}

	return slip, nil
}

func (s *SlipService) GetOneMerchantReturnSlip(ctx context.Context, id uuid.UUID) (model.MerchantReturnSlip, error) {
	return s.repo.GetOneMerchantReturnSlip(ctx, id, nil)
}

func (s *SlipService) GetListMerchantReturnSlip(ctx context.Context, req model.SlipParam) (model.ListMerchantReturnSlipResponse, error) {
	return s.repo.GetListMerchantReturnSlip(ctx, req, nil)
}

func (s *SlipService) DeleteMerchantReturnSlip(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMerchantReturnSlip(ctx, id, nil)
}

func (s *SlipService) UpdateMerchantReturnSlipStatus(ctx context.Context, updaterID uuid.UUID, id uuid.UUID, req model.UpdateSlipStatusBody) error {
	status, err := validSlipStatus(ctx, req)
	if err != nil {
		return err
	}
	return s.repo.UpdateMerchantReturnSlipStatus(ctx, id, status, nil)
}
