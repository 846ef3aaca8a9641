package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wasel/ms-delivery-management/conf"
	"wasel/ms-delivery-management/pkg/mocks"
	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
	"wasel/ms-delivery-management/pkg/valid"
)

func TestSlipService_CreateDriverPaymentSlip(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()
	creatorID := uuid.MustParse("1b0c26d6-e53f-4326-a5c7-8076c24b530d")

	mockIRepo := mocks.NewMockPGInterface(ctr1)

	var created model.DriverPaymentSlip
	mockIRepo.EXPECT().CreateDriverPaymentSlip(ctx, gomock.Any(), nilTx).DoAndReturn(
		func(ctx context.Context, slip *model.DriverPaymentSlip, tx *gorm.DB) error {
			created = *slip
			return nil
		})

	s := NewSlipService(mockIRepo)
	rs, err := s.CreateDriverPaymentSlip(ctx, creatorID, model.SlipBody{
		Name:     valid.StringPointer("Karrar"),
		OrderIds: []string{"ORD-1", "ORD-2", "ORD-3"},
	})
	if err != nil {
		t.Fatalf("CreateDriverPaymentSlip() error = %v", err)
	}

	if created.DriverName != "Karrar" {
		t.Errorf("CreateDriverPaymentSlip() name = %v, want Karrar", created.DriverName)
	}
	// item_count freezes at creation
	if created.ItemCount != 3 || rs.ItemCount != 3 {
		t.Errorf("CreateDriverPaymentSlip() itemCount = %v, want 3", created.ItemCount)
	}
	if created.CreatorID != creatorID {
		t.Errorf("CreateDriverPaymentSlip() creator = %v, want %v", created.CreatorID, creatorID)
	}
}

func TestSlipService_CreateMerchantPaymentSlip_StartsOpen(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	mockIRepo.EXPECT().CreateMerchantPaymentSlip(ctx, gomock.Any(), nilTx).Return(nil)

	s := NewSlipService(mockIRepo)
	rs, err := s.CreateMerchantPaymentSlip(ctx, uuid.New(), model.SlipBody{
		Name:     valid.StringPointer("Nour Store"),
		OrderIds: []string{"ORD-9"},
	})
	if err != nil {
		t.Fatalf("CreateMerchantPaymentSlip() error = %v", err)
	}
	if rs.Status != utils.SLIP_STATUS_OPEN {
		t.Errorf("CreateMerchantPaymentSlip() status = %v, want %v", rs.Status, utils.SLIP_STATUS_OPEN)
	}
}

func TestSlipService_UpdateMerchantPaymentSlipStatus(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	ctx := context.Background()
	slipID := uuid.New()
	updaterID := uuid.New()

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "settle", status: utils.SLIP_STATUS_SETTLED},
		{name: "reopen", status: utils.SLIP_STATUS_OPEN},
		{name: "unknown status rejected", status: "paid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIRepo := mocks.NewMockPGInterface(ctr1)
			if !tt.wantErr {
				mockIRepo.EXPECT().UpdateMerchantPaymentSlipStatus(ctx, slipID, tt.status, nilTx).Return(nil)
			}

			s := NewSlipService(mockIRepo)
			err := s.UpdateMerchantPaymentSlipStatus(ctx, updaterID, slipID, model.UpdateSlipStatusBody{
				Status: valid.StringPointer(tt.status),
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("UpdateMerchantPaymentSlipStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
