package handlers

import (
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/service"
)

type AnalyticsHandlers struct {
	service service.AnalyticsServiceInterface
}

func NewAnalyticsHandlers(service service.AnalyticsServiceInterface) *AnalyticsHandlers {
	return &AnalyticsHandlers{service: service}
}

func (h *AnalyticsHandlers) GetDriverStats(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "AnalyticsHandlers.GetDriverStats")

	req := model.AnalyticsParam{}
	r.MustBind(&req)

	rs, err := h.service.GetDriverStats(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetDriverStats")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *AnalyticsHandlers) GetProfitByDate(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "AnalyticsHandlers.GetProfitByDate")

	req := model.AnalyticsParam{}
	r.MustBind(&req)

	rs, err := h.service.GetProfitByDate(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetProfitByDate")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *AnalyticsHandlers) GetCashCollection(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "AnalyticsHandlers.GetCashCollection")

	req := model.AnalyticsParam{}
	r.MustBind(&req)

	rs, err := h.service.GetCashCollection(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetCashCollection")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}
