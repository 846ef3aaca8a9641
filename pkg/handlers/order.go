package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/service"
	"wasel/ms-delivery-management/pkg/utils"
)

type OrderHandlers struct {
	service       service.OrderServiceInterface
	exportService service.ExportServiceInterface
}

func NewOrderHandlers(service service.OrderServiceInterface, exportService service.ExportServiceInterface) *OrderHandlers {
	return &OrderHandlers{service: service, exportService: exportService}
}

func (h *OrderHandlers) GetAllOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.GetAllOrder")

	req := model.OrderParam{}
	r.MustBind(&req)

	rs, err := h.service.GetAllOrder(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to GetAllOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) GetOneOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.GetOneOrder")

	rs, err := h.service.GetOneOrder(r.Context(), r.GinCtx.Param("id"))
	if err != nil {
		log.WithError(err).Error("Fail to GetOneOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) CreateOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.CreateOrder")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.OrderBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to CreateOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusCreated,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) UpdateOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.UpdateOrder")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	req := model.UpdateOrderBody{}
	r.MustBind(&req)

	rs, err := h.service.UpdateOrder(r.Context(), r.GinCtx.Param("id"), req)
	if err != nil {
		log.WithError(err).Error("Fail to UpdateOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) UpdateOrderStatus(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.UpdateOrderStatus")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.UpdateOrderStatusBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.UpdateOrderStatus(r.Context(), r.GinCtx.Param("id"), req)
	if err != nil {
		log.WithError(err).Error("Fail to UpdateOrderStatus")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) BulkUpdateStatus(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.BulkUpdateStatus")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.BulkStatusBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.BulkUpdateStatus(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to BulkUpdateStatus")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) BulkAssign(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.BulkAssign")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.BulkAssignBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.BulkAssign(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to BulkAssign")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *OrderHandlers) DeleteOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.DeleteOrder")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	id := r.GinCtx.Param("id")
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		log.WithError(err).Error("Fail to DeleteOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: map[string]interface{}{"deleted": id},
		},
	}, nil
}

func (h *OrderHandlers) BulkDeleteOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.BulkDeleteOrder")

	// check x-user-id
	if _, err := utils.CurrentUser(r.GinCtx.Request); err != nil {
		log.WithError(err).Error("Error when get current user")
		return nil, ginext.NewError(http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
	}

	// Check valid request
	req := model.BulkDeleteBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.BulkDeleteOrder(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to BulkDeleteOrder")
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

// ExportOrderReport streams the workbook straight to the response, so it stays
// a raw gin handler instead of going through the ginext wrapper.
func (h *OrderHandlers) ExportOrderReport(ctx *gin.Context) {
	log := logger.WithCtx(ctx, "OrderHandlers.ExportOrderReport")

	req := model.ExportOrderReportRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": utils.MessageError()[http.StatusBadRequest]})
		return
	}

	f, fileName, err := h.exportService.ExportOrderReport(ctx.Request.Context(), req)
	if err != nil {
		log.WithError(err).Error("Fail to ExportOrderReport")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": utils.MessageError()[http.StatusInternalServerError]})
		return
	}

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	if err = f.Write(ctx.Writer); err != nil {
		log.WithError(err).Error("Fail to write report to response")
	}
}
