package service

import (
	"context"
	"net/http"
	"time"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/datatypes"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/notifier"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
	"wasel/ms-delivery-management/pkg/valid"
)

type OrderService struct {
	repo      repo.PGInterface
	publisher notifier.Publisher
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req model.OrderBody) (model.Order, error)
	GetOneOrder(ctx context.Context, id string) (model.Order, error)
	GetAllOrder(ctx context.Context, req model.OrderParam) (model.ListOrderResponse, error)
	UpdateOrder(ctx context.Context, id string, req model.UpdateOrderBody) (model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, req model.UpdateOrderStatusBody) (model.OrderStatusResponse, error)
	BulkUpdateStatus(ctx context.Context, req model.BulkStatusBody) (model.BulkCountResponse, error)
	BulkAssign(ctx context.Context, req model.BulkAssignBody) (model.BulkCountResponse, error)
	DeleteOrder(ctx context.Context, id string) error
	BulkDeleteOrder(ctx context.Context, req model.BulkDeleteBody) (model.BulkDeleteResponse, error)
}

func NewOrderService(repo repo.PGInterface, publisher notifier.Publisher) OrderServiceInterface {
	return &OrderService{repo: repo, publisher: publisher}
}

// publish is fire and forget, a dead realtime gateway never fails the mutation.
func (s *OrderService) publish(ctx context.Context, event string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(ctx, event, payload)
}

func (s *OrderService) CreateOrder(ctx context.Context, req model.OrderBody) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.CreateOrder")

	if req.Notes != nil && len(valid.String(req.Notes)) > utils.MAX_NOTES_LENGTH {
		log.Error("error_400: notes over limit in CreateOrder - OrderService")
		return rs, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}

	order := model.Order{
		Source:               valid.String(req.Source),
		ReferenceNumber:      valid.String(req.ReferenceNumber),
		Recipient:            valid.String(req.Recipient),
		Phone:                valid.String(req.Phone),
		Whatsapp:             valid.String(req.Whatsapp),
		Address:              valid.String(req.Address),
		City:                 valid.String(req.City),
		Region:               valid.String(req.Region),
		Merchant:             valid.String(req.Merchant),
		Driver:               valid.String(req.Driver),
		Status:               valid.String(req.Status),
		Cod:                  utils.RoundAmount(valid.Float64(req.Cod)),
		DeliveryFee:          utils.RoundAmount(valid.Float64(req.DeliveryFee)),
		AdditionalCost:       utils.RoundAmount(valid.Float64(req.AdditionalCost)),
		DriverFee:            utils.RoundAmount(valid.Float64(req.DriverFee)),
		DriverAdditionalFare: utils.RoundAmount(valid.Float64(req.DriverAdditionalFare)),
		Notes:                valid.String(req.Notes),
		Lat:                  req.Lat,
		Lng:                  req.Lng,
	}

	if order.Status == "" {
		order.Status = utils.STATUS_NAME_PENDING
	}

	if req.ItemPrice != nil {
		order.ItemPrice = utils.RoundAmount(*req.ItemPrice)
	} else {
		order.ItemPrice = utils.RoundAmount(order.Cod - order.DeliveryFee - order.AdditionalCost)
	}

	if req.Date != nil {
		order.Date = datatypes.Date(*req.Date)
	} else {
		order.Date = datatypes.Date(time.Now())
	}

	// Number assignment and insert share one transaction. The max+1 read can
	// still race a concurrent creation, the unique constraint on order_number
	// turns that race into a 500 instead of a duplicate.
	if err = s.repo.Transaction(ctx, func(rp repo.PGInterface) error {
		nextNumber, err := rp.GetNextOrderNumber(ctx, nil)
		if err != nil {
			return err
		}
		order.OrderNumber = nextNumber
		order.ID = utils.BuildOrderID(nextNumber)
		return rp.CreateOrder(ctx, &order, nil)
	}); err != nil {
		return rs, err
	}

	return order, nil
}

func (s *OrderService) GetOneOrder(ctx context.Context, id string) (model.Order, error) {
	return s.repo.GetOneOrder(ctx, id, nil)
}

func (s *OrderService) GetAllOrder(ctx context.Context, req model.OrderParam) (model.ListOrderResponse, error) {
	return s.repo.GetAllOrder(ctx, req, nil)
}

// UpdateOrder applies a partial field set. When the payload moves status to a
// different value the single-hop previous_status bookkeeping rides along in the
// same write.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, req model.UpdateOrderBody) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.UpdateOrder")

	if req.Notes != nil && len(valid.String(req.Notes)) > utils.MAX_NOTES_LENGTH {
		log.Error("error_400: notes over limit in UpdateOrder - OrderService")
		return rs, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}

	order, err := s.repo.GetOneOrder(ctx, id, nil)
	if err != nil {
		return rs, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.ReferenceNumber != nil {
		updates["reference_number"] = *req.ReferenceNumber
	}
	if req.Recipient != nil {
		updates["recipient"] = *req.Recipient
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Whatsapp != nil {
		updates["whatsapp"] = *req.Whatsapp
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Region != nil {
		updates["region"] = *req.Region
	}
	if req.Merchant != nil {
		updates["merchant"] = *req.Merchant
	}
	if req.Driver != nil {
		updates["driver"] = *req.Driver
	}
	if req.Cod != nil {
		updates["cod"] = utils.RoundAmount(*req.Cod)
	}
	if req.ItemPrice != nil {
		updates["item_price"] = utils.RoundAmount(*req.ItemPrice)
	}
	if req.DeliveryFee != nil {
		updates["delivery_fee"] = utils.RoundAmount(*req.DeliveryFee)
	}
	if req.AdditionalCost != nil {
		updates["additional_cost"] = utils.RoundAmount(*req.AdditionalCost)
	}
	if req.DriverFee != nil {
		updates["driver_fee"] = utils.RoundAmount(*req.DriverFee)
	}
	if req.DriverAdditionalFare != nil {
		updates["driver_additional_fare"] = utils.RoundAmount(*req.DriverAdditionalFare)
	}
	if req.Date != nil {
		updates["date"] = datatypes.Date(*req.Date)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["lng"] = *req.Lng
	}

	// Change-detection guard: writing the current status again is not a
	// transition, previous_status stays untouched.
	statusChanged := req.Status != nil && *req.Status != order.Status
	if statusChanged {
		updates["status"] = *req.Status
		updates["previous_status"] = order.Status
	}

	if err = s.repo.UpdateOrderFields(ctx, id, updates, nil); err != nil {
		return rs, err
	}

	if rs, err = s.repo.GetOneOrder(ctx, id, nil); err != nil {
		return rs, err
	}

	s.publish(ctx, utils.EVENT_ORDER_UPDATED, map[string]interface{}{"order_id": id})
	if statusChanged {
		s.publish(ctx, utils.EVENT_ORDER_STATUS_CHANGED, map[string]interface{}{
			"order_id":       id,
			"status":         rs.Status,
			"previousStatus": rs.PreviousStatus,
		})
	}

	return rs, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, req model.UpdateOrderStatusBody) (rs model.OrderStatusResponse, err error) {
	order, err := s.repo.GetOneOrder(ctx, id, nil)
	if err != nil {
		return rs, err
	}

	newStatus := valid.String(req.Status)

	// Same-status write is a no-op for the bookkeeping: previous_status keeps
	// its one hop of history and no event goes out.
	if newStatus == order.Status {
		if req.Driver != nil {
			if err = s.repo.UpdateOrderFields(ctx, id, map[string]interface{}{
				"driver":     *req.Driver,
				"updated_at": time.Now(),
			}, nil); err != nil {
				return rs, err
			}
		}
		return model.OrderStatusResponse{ID: id, Status: order.Status, PreviousStatus: order.PreviousStatus}, nil
	}

	updates := map[string]interface{}{
		"status":          newStatus,
		"previous_status": order.Status,
		"updated_at":      time.Now(),
	}
	if req.Driver != nil {
		updates["driver"] = *req.Driver
	}

	if err = s.repo.UpdateOrderFields(ctx, id, updates, nil); err != nil {
		return rs, err
	}

	rs = model.OrderStatusResponse{ID: id, Status: newStatus, PreviousStatus: order.Status}

	s.publish(ctx, utils.EVENT_ORDER_STATUS_CHANGED, map[string]interface{}{
		"order_id":       id,
		"status":         rs.Status,
		"previousStatus": rs.PreviousStatus,
	})

	return rs, nil
}

// BulkUpdateStatus applies the single-hop transition per order inside one
// transaction. The returned count is the number of identifiers attempted:
// unknown ids are skipped silently but still counted, which callers rely on.
func (s *OrderService) BulkUpdateStatus(ctx context.Context, req model.BulkStatusBody) (rs model.BulkCountResponse, err error) {
	newStatus := valid.String(req.Status)

	if err = s.repo.Transaction(ctx, func(rp repo.PGInterface) error {
		existing, err := rp.GetExistingOrderIds(ctx, req.OrderIds, nil)
		if err != nil {
			return err
		}
		existingSet := make(map[string]bool, len(existing))
		for _, id := range existing {
			existingSet[id] = true
		}

		for _, id := range req.OrderIds {
			if !existingSet[id] {
				continue
			}
			order, err := rp.GetOneOrder(ctx, id, nil)
			if err != nil {
				return err
			}
			if order.Status == newStatus {
				continue
			}
			if err = rp.UpdateOrderFields(ctx, id, map[string]interface{}{
				"status":          newStatus,
				"previous_status": order.Status,
				"updated_at":      time.Now(),
			}, nil); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return rs, err
	}

	return model.BulkCountResponse{Updated: len(req.OrderIds)}, nil
}

func (s *OrderService) BulkAssign(ctx context.Context, req model.BulkAssignBody) (rs model.BulkCountResponse, err error) {
	log := logger.WithCtx(ctx, "OrderService.BulkAssign")

	if req.Driver == nil && req.Merchant == nil {
		log.Error("error_400: nothing to assign in BulkAssign - OrderService")
		return rs, ginext.NewError(http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Driver != nil {
		updates["driver"] = *req.Driver
	}
	if req.Merchant != nil {
		updates["merchant"] = *req.Merchant
	}

	if err = s.repo.Transaction(ctx, func(rp repo.PGInterface) error {
		for _, id := range req.OrderIds {
			if err := rp.UpdateOrderFields(ctx, id, updates, nil); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return rs, err
	}

	return model.BulkCountResponse{Updated: len(req.OrderIds)}, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.DeleteOrder(ctx, id, nil); err != nil {
		return err
	}

	s.publish(ctx, utils.EVENT_ORDER_DELETED, map[string]interface{}{"orderId": id})

	return nil
}

// BulkDeleteOrder removes the rows in one set-oriented statement. The count and
// the per-row events cover the ids that actually existed, unknown ids are
// ignored.
func (s *OrderService) BulkDeleteOrder(ctx context.Context, req model.BulkDeleteBody) (rs model.BulkDeleteResponse, err error) {
	var existing []string
	deleted := 0

	if err = s.repo.Transaction(ctx, func(rp repo.PGInterface) error {
		var err error
		if existing, err = rp.GetExistingOrderIds(ctx, req.OrderIds, nil); err != nil {
			return err
		}
		if deleted, err = rp.DeleteOrdersByIds(ctx, req.OrderIds, nil); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return rs, err
	}

	for _, id := range existing {
		s.publish(ctx, utils.EVENT_ORDER_DELETED, map[string]interface{}{"orderId": id})
	}

	return model.BulkDeleteResponse{Deleted: deleted}, nil
}
