package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/conf"
	"wasel/ms-delivery-management/pkg/mocks"
	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
	"wasel/ms-delivery-management/pkg/valid"
)

var nilTx *gorm.DB

// passthroughTransaction makes the mocked Transaction run its body against the
// same mock repo, so per-statement expectations stay visible to the test.
func passthroughTransaction(mockIRepo *mocks.MockPGInterface) {
	mockIRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(rp repo.PGInterface) error) error {
			return fn(mockIRepo)
		})
}

func TestOrderService_CreateOrder(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	tests := []struct {
		name           string
		nextNumber     int
		req            model.OrderBody
		wantID         string
		wantItemPrice  float64
		wantStatus     string
	}{
		{
			name:       "empty store starts at 1, item price derived",
			nextNumber: 1,
			req: model.OrderBody{
				Source:      valid.StringPointer(utils.ORDER_SOURCE_MANUAL),
				Recipient:   valid.StringPointer("Ahmad"),
				Phone:       valid.StringPointer("+9647701234567"),
				Address:     valid.StringPointer("Al-Mansour, street 14"),
				City:        valid.StringPointer("Baghdad"),
				Merchant:    valid.StringPointer("Nour Store"),
				Cod:         valid.Float64Pointer(100),
				DeliveryFee: valid.Float64Pointer(1.5),
			},
			wantID:        "ORD-1",
			wantItemPrice: 98.5,
			wantStatus:    utils.STATUS_NAME_PENDING,
		},
		{
			name:       "max 41 yields number 42, explicit item price and status kept",
			nextNumber: 42,
			req: model.OrderBody{
				Source:    valid.StringPointer(utils.ORDER_SOURCE_IMPORT),
				Recipient: valid.StringPointer("Sara"),
				Phone:     valid.StringPointer("+9647709876543"),
				Address:   valid.StringPointer("Erbil center"),
				City:      valid.StringPointer("Erbil"),
				Merchant:  valid.StringPointer("Dijla Shop"),
				Cod:       valid.Float64Pointer(50),
				ItemPrice: valid.Float64Pointer(45),
				Status:    valid.StringPointer(utils.STATUS_NAME_DRIVER_ASSIGNED),
			},
			wantID:        "ORD-42",
			wantItemPrice: 45,
			wantStatus:    utils.STATUS_NAME_DRIVER_ASSIGNED,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIRepo := mocks.NewMockPGInterface(ctr1)
			passthroughTransaction(mockIRepo)
			mockIRepo.EXPECT().GetNextOrderNumber(ctx, nilTx).Return(tt.nextNumber, nil)

			var created model.Order
			mockIRepo.EXPECT().CreateOrder(ctx, gomock.Any(), nilTx).DoAndReturn(
				func(ctx context.Context, order *model.Order, tx *gorm.DB) error {
					created = *order
					return nil
				})

			s := NewOrderService(mockIRepo, mocks.NewMockPublisher(ctr1))
			rs, err := s.CreateOrder(ctx, tt.req)
			if err != nil {
				t.Fatalf("CreateOrder() error = %v", err)
			}

			if created.ID != tt.wantID || rs.ID != tt.wantID {
				t.Errorf("CreateOrder() id = %v, want %v", created.ID, tt.wantID)
			}
			if created.OrderNumber != tt.nextNumber {
				t.Errorf("CreateOrder() orderNumber = %v, want %v", created.OrderNumber, tt.nextNumber)
			}
			if created.ItemPrice != tt.wantItemPrice {
				t.Errorf("CreateOrder() itemPrice = %v, want %v", created.ItemPrice, tt.wantItemPrice)
			}
			if created.Status != tt.wantStatus {
				t.Errorf("CreateOrder() status = %v, want %v", created.Status, tt.wantStatus)
			}
			if created.PreviousStatus != "" {
				t.Errorf("CreateOrder() previousStatus = %v, want empty", created.PreviousStatus)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	t.Run("transition keeps one hop of history and emits the change", func(t *testing.T) {
		mockIRepo := mocks.NewMockPGInterface(ctr1)
		mockPublisher := mocks.NewMockPublisher(ctr1)

		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-7", nilTx).Return(model.Order{
			ID:     "ORD-7",
			Status: utils.STATUS_NAME_PENDING,
		}, nil)

		var updates map[string]interface{}
		mockIRepo.EXPECT().UpdateOrderFields(ctx, "ORD-7", gomock.Any(), nilTx).DoAndReturn(
			func(ctx context.Context, id string, u map[string]interface{}, tx *gorm.DB) error {
				updates = u
				return nil
			})

		var payload map[string]interface{}
		mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_STATUS_CHANGED, gomock.Any()).DoAndReturn(
			func(ctx context.Context, event string, body interface{}) error {
				payload = body.(map[string]interface{})
				return nil
			})

		s := NewOrderService(mockIRepo, mockPublisher)
		rs, err := s.UpdateOrderStatus(ctx, "ORD-7", model.UpdateOrderStatusBody{
			Status: valid.StringPointer(utils.STATUS_NAME_DELIVERED),
			Driver: valid.StringPointer("D1"),
		})
		if err != nil {
			t.Fatalf("UpdateOrderStatus() error = %v", err)
		}

		if rs.Status != utils.STATUS_NAME_DELIVERED || rs.PreviousStatus != utils.STATUS_NAME_PENDING {
			t.Errorf("UpdateOrderStatus() = %+v, want status transition recorded", rs)
		}
		if updates["status"] != utils.STATUS_NAME_DELIVERED || updates["previous_status"] != utils.STATUS_NAME_PENDING {
			t.Errorf("UpdateOrderFields updates = %v, want bookkeeping in one write", updates)
		}
		if updates["driver"] != "D1" {
			t.Errorf("UpdateOrderFields updates = %v, want driver in same write", updates)
		}
		if _, ok := updates["updated_at"].(time.Time); !ok {
			t.Errorf("UpdateOrderFields updates = %v, want updated_at refreshed", updates)
		}
		if payload["order_id"] != "ORD-7" ||
			payload["status"] != utils.STATUS_NAME_DELIVERED ||
			payload["previousStatus"] != utils.STATUS_NAME_PENDING {
			t.Errorf("event payload = %v", payload)
		}
	})

	t.Run("same-status write is a no-op for bookkeeping and events", func(t *testing.T) {
		mockIRepo := mocks.NewMockPGInterface(ctr1)
		mockPublisher := mocks.NewMockPublisher(ctr1)

		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-7", nilTx).Return(model.Order{
			ID:             "ORD-7",
			Status:         utils.STATUS_NAME_DELIVERED,
			PreviousStatus: utils.STATUS_NAME_PENDING,
		}, nil)

		s := NewOrderService(mockIRepo, mockPublisher)
		rs, err := s.UpdateOrderStatus(ctx, "ORD-7", model.UpdateOrderStatusBody{
			Status: valid.StringPointer(utils.STATUS_NAME_DELIVERED),
		})
		if err != nil {
			t.Fatalf("UpdateOrderStatus() error = %v", err)
		}

		if rs.PreviousStatus != utils.STATUS_NAME_PENDING {
			t.Errorf("UpdateOrderStatus() previousStatus = %v, want untouched", rs.PreviousStatus)
		}
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	t.Run("non-status edit leaves previous_status untouched", func(t *testing.T) {
		mockIRepo := mocks.NewMockPGInterface(ctr1)
		mockPublisher := mocks.NewMockPublisher(ctr1)

		stored := model.Order{
			ID:             "ORD-3",
			Status:         utils.STATUS_NAME_POSTPONED,
			PreviousStatus: utils.STATUS_NAME_PENDING,
			Address:        "old address",
		}
		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-3", nilTx).Return(stored, nil)

		var updates map[string]interface{}
		mockIRepo.EXPECT().UpdateOrderFields(ctx, "ORD-3", gomock.Any(), nilTx).DoAndReturn(
			func(ctx context.Context, id string, u map[string]interface{}, tx *gorm.DB) error {
				updates = u
				return nil
			})

		stored.Address = "new address"
		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-3", nilTx).Return(stored, nil)

		mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_UPDATED, gomock.Any()).Return(nil)

		s := NewOrderService(mockIRepo, mockPublisher)
		rs, err := s.UpdateOrder(ctx, "ORD-3", model.UpdateOrderBody{
			Address: valid.StringPointer("new address"),
		})
		if err != nil {
			t.Fatalf("UpdateOrder() error = %v", err)
		}

		if _, ok := updates["previous_status"]; ok {
			t.Errorf("UpdateOrderFields updates = %v, previous_status must not be written", updates)
		}
		if _, ok := updates["status"]; ok {
			t.Errorf("UpdateOrderFields updates = %v, status must not be written", updates)
		}
		if rs.PreviousStatus != utils.STATUS_NAME_PENDING {
			t.Errorf("UpdateOrder() previousStatus = %v, want untouched", rs.PreviousStatus)
		}
	})

	t.Run("status edit through the general path does the bookkeeping and both events", func(t *testing.T) {
		mockIRepo := mocks.NewMockPGInterface(ctr1)
		mockPublisher := mocks.NewMockPublisher(ctr1)

		stored := model.Order{ID: "ORD-3", Status: utils.STATUS_NAME_PENDING}
		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-3", nilTx).Return(stored, nil)

		mockIRepo.EXPECT().UpdateOrderFields(ctx, "ORD-3", gomock.Any(), nilTx).Return(nil)

		updated := model.Order{
			ID:             "ORD-3",
			Status:         utils.STATUS_NAME_RETURNED,
			PreviousStatus: utils.STATUS_NAME_PENDING,
		}
		mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-3", nilTx).Return(updated, nil)

		gomock.InOrder(
			mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_UPDATED, gomock.Any()).Return(nil),
			mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_STATUS_CHANGED, gomock.Any()).Return(nil),
		)

		s := NewOrderService(mockIRepo, mockPublisher)
		rs, err := s.UpdateOrder(ctx, "ORD-3", model.UpdateOrderBody{
			Status: valid.StringPointer(utils.STATUS_NAME_RETURNED),
		})
		if err != nil {
			t.Fatalf("UpdateOrder() error = %v", err)
		}
		if rs.PreviousStatus != utils.STATUS_NAME_PENDING {
			t.Errorf("UpdateOrder() previousStatus = %v, want %v", rs.PreviousStatus, utils.STATUS_NAME_PENDING)
		}
	})
}

// Known quirk: the reported count is the number of ids attempted, not matched.
func TestOrderService_BulkUpdateStatus_CountsAttemptedIds(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	passthroughTransaction(mockIRepo)

	ids := []string{"ORD-1", "NOPE"}
	mockIRepo.EXPECT().GetExistingOrderIds(ctx, ids, nilTx).Return([]string{"ORD-1"}, nil)
	mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-1", nilTx).Return(model.Order{
		ID:     "ORD-1",
		Status: utils.STATUS_NAME_PENDING,
	}, nil)

	var updates map[string]interface{}
	mockIRepo.EXPECT().UpdateOrderFields(ctx, "ORD-1", gomock.Any(), nilTx).DoAndReturn(
		func(ctx context.Context, id string, u map[string]interface{}, tx *gorm.DB) error {
			updates = u
			return nil
		})

	s := NewOrderService(mockIRepo, mocks.NewMockPublisher(ctr1))
	rs, err := s.BulkUpdateStatus(ctx, model.BulkStatusBody{
		OrderIds: ids,
		Status:   valid.StringPointer("X"),
	})
	if err != nil {
		t.Fatalf("BulkUpdateStatus() error = %v", err)
	}

	if rs.Updated != 2 {
		t.Errorf("BulkUpdateStatus() updated = %v, want 2 (attempted count, not matched)", rs.Updated)
	}
	if updates["previous_status"] != utils.STATUS_NAME_PENDING {
		t.Errorf("UpdateOrderFields updates = %v, want per-order bookkeeping", updates)
	}
}

func TestOrderService_BulkDeleteOrder(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockPublisher := mocks.NewMockPublisher(ctr1)
	passthroughTransaction(mockIRepo)

	ids := []string{"ORD-1", "NOPE"}
	mockIRepo.EXPECT().GetExistingOrderIds(ctx, ids, nilTx).Return([]string{"ORD-1"}, nil)
	mockIRepo.EXPECT().DeleteOrdersByIds(ctx, ids, nilTx).Return(1, nil)

	var payload map[string]interface{}
	mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_DELETED, gomock.Any()).DoAndReturn(
		func(ctx context.Context, event string, body interface{}) error {
			payload = body.(map[string]interface{})
			return nil
		})

	s := NewOrderService(mockIRepo, mockPublisher)
	rs, err := s.BulkDeleteOrder(ctx, model.BulkDeleteBody{OrderIds: ids})
	if err != nil {
		t.Fatalf("BulkDeleteOrder() error = %v", err)
	}

	if rs.Deleted != 1 {
		t.Errorf("BulkDeleteOrder() deleted = %v, want 1 (truthful set-based count)", rs.Deleted)
	}
	if payload["orderId"] != "ORD-1" {
		t.Errorf("event payload = %v, want orderId ORD-1", payload)
	}
}

// create → driver assigned → delivered, asserting the final record state and
// that both transitions were announced in order.
func TestOrderService_StatusLifecycleScenario(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockPublisher := mocks.NewMockPublisher(ctr1)

	// in-memory stand-in for the orders table
	stored := model.Order{}

	passthroughTransaction(mockIRepo)
	mockIRepo.EXPECT().GetNextOrderNumber(ctx, nilTx).Return(1, nil)
	mockIRepo.EXPECT().CreateOrder(ctx, gomock.Any(), nilTx).DoAndReturn(
		func(ctx context.Context, order *model.Order, tx *gorm.DB) error {
			stored = *order
			return nil
		})

	mockIRepo.EXPECT().GetOneOrder(ctx, "ORD-1", nilTx).DoAndReturn(
		func(ctx context.Context, id string, tx *gorm.DB) (model.Order, error) {
			return stored, nil
		}).Times(2)
	mockIRepo.EXPECT().UpdateOrderFields(ctx, "ORD-1", gomock.Any(), nilTx).DoAndReturn(
		func(ctx context.Context, id string, u map[string]interface{}, tx *gorm.DB) error {
			stored.Status = u["status"].(string)
			stored.PreviousStatus = u["previous_status"].(string)
			if d, ok := u["driver"].(string); ok {
				stored.Driver = d
			}
			return nil
		}).Times(2)

	var events []map[string]interface{}
	mockPublisher.EXPECT().Publish(ctx, utils.EVENT_ORDER_STATUS_CHANGED, gomock.Any()).DoAndReturn(
		func(ctx context.Context, event string, body interface{}) error {
			events = append(events, body.(map[string]interface{}))
			return nil
		}).Times(2)

	s := NewOrderService(mockIRepo, mockPublisher)

	_, err := s.CreateOrder(ctx, model.OrderBody{
		Source:    valid.StringPointer(utils.ORDER_SOURCE_MANUAL),
		Recipient: valid.StringPointer("Ali"),
		Phone:     valid.StringPointer("+9647700000001"),
		Address:   valid.StringPointer("Basra"),
		City:      valid.StringPointer("Basra"),
		Merchant:  valid.StringPointer("Shatt Store"),
		Cod:       valid.Float64Pointer(75),
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	if _, err = s.UpdateOrderStatus(ctx, "ORD-1", model.UpdateOrderStatusBody{
		Status: valid.StringPointer(utils.STATUS_NAME_DRIVER_ASSIGNED),
		Driver: valid.StringPointer("D1"),
	}); err != nil {
		t.Fatalf("UpdateOrderStatus() error = %v", err)
	}

	if _, err = s.UpdateOrderStatus(ctx, "ORD-1", model.UpdateOrderStatusBody{
		Status: valid.StringPointer(utils.STATUS_NAME_DELIVERED),
	}); err != nil {
		t.Fatalf("UpdateOrderStatus() error = %v", err)
	}

	if stored.Status != utils.STATUS_NAME_DELIVERED {
		t.Errorf("final status = %v, want %v", stored.Status, utils.STATUS_NAME_DELIVERED)
	}
	if stored.PreviousStatus != utils.STATUS_NAME_DRIVER_ASSIGNED {
		t.Errorf("final previousStatus = %v, want %v", stored.PreviousStatus, utils.STATUS_NAME_DRIVER_ASSIGNED)
	}
	if stored.Driver != "D1" {
		t.Errorf("final driver = %v, want D1", stored.Driver)
	}

	if len(events) != 2 {
		t.Fatalf("observed %d status events, want 2", len(events))
	}
	if events[0]["status"] != utils.STATUS_NAME_DRIVER_ASSIGNED || events[1]["status"] != utils.STATUS_NAME_DELIVERED {
		t.Errorf("event order = %v", events)
	}
}
