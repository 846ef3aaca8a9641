package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm/dialects/postgres"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
)

type PrintSettingService struct {
	repo repo.PGInterface
}

type PrintSettingServiceInterface interface {
	GetPrintSetting(ctx context.Context, kind string) (model.PrintSetting, error)
	UpdatePrintSetting(ctx context.Context, updaterID uuid.UUID, kind string, req model.UpdatePrintSettingBody) (model.PrintSetting, error)
}

func NewPrintSettingService(repo repo.PGInterface) PrintSettingServiceInterface {
	return &PrintSettingService{repo: repo}
}

func validPrintKind(ctx context.Context, kind string) error {
	switch kind {
	case utils.PRINT_KIND_POLICY, utils.PRINT_KIND_LABEL, utils.PRINT_KIND_RECEIPT:
		return nil
	}
	logger.WithCtx(ctx, "PrintSettingService.validPrintKind").
		Errorf("error_400: invalid print kind %v", kind)
	return ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
}

func (s *PrintSettingService) GetPrintSetting(ctx context.Context, kind string) (model.PrintSetting, error) {
	if err := validPrintKind(ctx, kind); err != nil {
		return model.PrintSetting{}, err
	}
	return s.repo.GetPrintSetting(ctx, kind, nil)
}

func (s *PrintSettingService) UpdatePrintSetting(ctx context.Context, updaterID uuid.UUID, kind string, req model.UpdatePrintSettingBody) (model.PrintSetting, error) {
	if err := validPrintKind(ctx, kind); err != nil {
		return model.PrintSetting{}, err
	}

	setting := model.PrintSetting{
		Kind:   kind,
		Layout: postgres.Jsonb{RawMessage: req.Layout},
	}
	setting.CreatorID = updaterID
	setting.UpdaterID = updaterID

	if err := s.repo.UpsertPrintSetting(ctx, &setting, nil); err != nil {
		return model.PrintSetting{}, err
	}

	return s.repo.GetPrintSetting(ctx, kind, nil)
}
