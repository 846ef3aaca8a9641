package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/service"
	"wasel/ms-delivery-management/pkg/utils"
)

type PrintSettingHandlers struct {
	service service.PrintSettingServiceInterface
}

func NewPrintSettingHandlers(service service.PrintSettingServiceInterface) *PrintSettingHandlers {
	return &PrintSettingHandlers{service: service}
}

func (h *PrintSettingHandlers) GetPrintSetting(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "PrintSettingHandlers.GetPrintSetting")

	rs, err := h.service.GetPrintSetting(r.Context(), r.GinCtx.Param("kind"))
	if err != nil {
		log.WithError(err).Error("Fail to GetPrintSetting")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *PrintSettingHandlers) UpdatePrintSetting(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "PrintSettingHandlers.UpdatePrintSetting")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.UpdatePrintSettingBody{}
	r.MustBind(&req)
	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.UpdatePrintSetting(r.Context(), userID, r.GinCtx.Param("kind"), req)
	if err != nil {
		log.WithError(err).Error("Fail to UpdatePrintSetting")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}
