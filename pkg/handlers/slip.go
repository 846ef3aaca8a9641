package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/service"
	"wasel/ms-delivery-management/pkg/utils"
)

type SlipHandlers struct {
	service service.SlipServiceInterface
}

func NewSlipHandlers(service service.SlipServiceInterface) *SlipHandlers {
	return &SlipHandlers{service: service}
}

func slipID(r *ginext.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.GinCtx.Param("id"))
	if err != nil {
		return uuid.Nil, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}
	return id, nil
}

func (h *SlipHandlers) bindSlipBody(r *ginext.Request) (uuid.UUID, model.SlipBody, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.bindSlipBody")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return uuid.Nil, model.SlipBody{}, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.SlipBody{}
	r.MustBind(&req)
	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return uuid.Nil, model.SlipBody{}, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	return userID, req, nil
}

func (h *SlipHandlers) bindSlipStatus(r *ginext.Request) (uuid.UUID, uuid.UUID, model.UpdateSlipStatusBody, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.bindSlipStatus")

	// check x-user-id
	userID, err := utils.CurrentUser(r.GinCtx.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		return uuid.Nil, uuid.Nil, model.UpdateSlipStatusBody{}, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := slipID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, model.UpdateSlipStatusBody{}, err
	}

	req := model.UpdateSlipStatusBody{}
	r.MustBind(&req)
	if err = common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return uuid.Nil, uuid.Nil, model.UpdateSlipStatusBody{}, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	return userID, id, req, nil
}

// Driver payment slips.

func (h *SlipHandlers) CreateDriverPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.CreateDriverPaymentSlip")

	userID, req, err := h.bindSlipBody(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.CreateDriverPaymentSlip(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateDriverPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetListDriverPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetListDriverPaymentSlip")

	req := model.SlipParam{}
	r.MustBind(&req)

	rs, err := h.service.GetListDriverPaymentSlip(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListDriverPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetOneDriverPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetOneDriverPaymentSlip")

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.GetOneDriverPaymentSlip(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneDriverPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) DeleteDriverPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.DeleteDriverPaymentSlip")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.DeleteDriverPaymentSlip(r.Context(), id); err != nil {
		log.WithError(err).Error("Fail to DeleteDriverPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: map[string]interface{}{"deleted": id},
		},
	}, nil
}

// Merchant payment slips.

func (h *SlipHandlers) CreateMerchantPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.CreateMerchantPaymentSlip")

	userID, req, err := h.bindSlipBody(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.CreateMerchantPaymentSlip(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateMerchantPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetListMerchantPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetListMerchantPaymentSlip")

	req := model.SlipParam{}
	r.MustBind(&req)

	rs, err := h.service.GetListMerchantPaymentSlip(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListMerchantPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetOneMerchantPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetOneMerchantPaymentSlip")

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.GetOneMerchantPaymentSlip(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneMerchantPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) DeleteMerchantPaymentSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.DeleteMerchantPaymentSlip")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.DeleteMerchantPaymentSlip(r.Context(), id); err != nil {
		log.WithError(err).Error("Fail to DeleteMerchantPaymentSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: map[string]interface{}{"deleted": id},
		},
	}, nil
}

func (h *SlipHandlers) UpdateMerchantPaymentSlipStatus(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.UpdateMerchantPaymentSlipStatus")

	userID, id, req, err := h.bindSlipStatus(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.UpdateMerchantPaymentSlipStatus(r.Context(), userID, id, req); err != nil {
		log.WithError(err).Error("Fail to UpdateMerchantPaymentSlipStatus")
		return nil, err
	}

	rs, err := h.service.GetOneMerchantPaymentSlip(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

// Driver return slips.

func (h *SlipHandlers) CreateDriverReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.CreateDriverReturnSlip")

	userID, req, err := h.bindSlipBody(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.CreateDriverReturnSlip(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateDriverReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetListDriverReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetListDriverReturnSlip")

	req := model.SlipParam{}
	r.MustBind(&req)

	rs, err := h.service.GetListDriverReturnSlip(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListDriverReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetOneDriverReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetOneDriverReturnSlip")

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.GetOneDriverReturnSlip(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneDriverReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) DeleteDriverReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.DeleteDriverReturnSlip")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.DeleteDriverReturnSlip(r.Context(), id); err != nil {
		log.WithError(err).Error("Fail to DeleteDriverReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: map[string]interface{}{"deleted": id},
		},
	}, nil
}

// Merchant return slips.

func (h *SlipHandlers) CreateMerchantReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.CreateMerchantReturnSlip")

	userID, req, err := h.bindSlipBody(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.CreateMerchantReturnSlip(r.Context(), userID, req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateMerchantReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetListMerchantReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetListMerchantReturnSlip")

	req := model.SlipParam{}
	r.MustBind(&req)

	rs, err := h.service.GetListMerchantReturnSlip(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetListMerchantReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) GetOneMerchantReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.GetOneMerchantReturnSlip")

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.GetOneMerchantReturnSlip(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Fail to GetOneMerchantReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *SlipHandlers) DeleteMerchantReturnSlip(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.DeleteMerchantReturnSlip")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id, err := slipID(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.DeleteMerchantReturnSlip(r.Context(), id); err != nil {
		log.WithError(err).Error("Fail to DeleteMerchantReturnSlip")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: map[string]interface{}{"deleted": id},
		},
	}, nil
}

func (h *SlipHandlers) UpdateMerchantReturnSlipStatus(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "SlipHandlers.UpdateMerchantReturnSlipStatus")

	userID, id, req, err := h.bindSlipStatus(r)
	if err != nil {
		return nil, err
	}

	if err = h.service.UpdateMerchantReturnSlipStatus(r.Context(), userID, id, req); err != nil {
		log.WithError(err).Error("Fail to UpdateMerchantReturnSlipStatus")
		return nil, err
	}

	rs, err := h.service.GetOneMerchantReturnSlip(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}
