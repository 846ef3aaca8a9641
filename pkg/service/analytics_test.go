package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"gorm.io/datatypes"

	"wasel/ms-delivery-management/conf"
	"wasel/ms-delivery-management/pkg/mocks"
	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/utils"
)

func day(s string) datatypes.Date {
	t, _ := time.Parse(utils.DATE_FORMAT, s)
	return datatypes.Date(t)
}

func analyticsFixture(mockIRepo *mocks.MockPGInterface, orders []model.Order) {
	mockIRepo.EXPECT().GetOrdersForAnalytics(gomock.Any(), gomock.Any(), nilTx).Return(orders, nil)
	mockIRepo.EXPECT().GetListStatus(gomock.Any(), nilTx).Return([]model.Status{}, nil)
}

func TestAnalyticsService_GetProfitByDate(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	orders := []model.Order{
		{
			Status:      utils.STATUS_NAME_DELIVERED,
			DeliveryFee: 2, AdditionalCost: 0, DriverFee: 1, DriverAdditionalFare: 0,
			Date: day("2024-01-01"),
		},
		{
			Status:      utils.STATUS_NAME_PENDING,
			DeliveryFee: 5, AdditionalCost: 1, DriverFee: 2, DriverAdditionalFare: 0,
			Date: day("2024-01-01"),
		},
		{
			Status:      "delivered",
			DeliveryFee: 4, AdditionalCost: 1, DriverFee: 1.5, DriverAdditionalFare: 0.5,
			Date: day("2024-01-02"),
		},
	}

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	analyticsFixture(mockIRepo, orders)

	s := NewAnalyticsService(mockIRepo)
	rs, err := s.GetProfitByDate(context.Background(), model.AnalyticsParam{})
	if err != nil {
		t.Fatalf("GetProfitByDate() error = %v", err)
	}

	want := []model.ProfitByDate{
		{Date: "2024-01-01", Profit: 1},
		{Date: "2024-01-02", Profit: 3},
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("GetProfitByDate() = %v, want %v", rs, want)
	}
}

func TestAnalyticsService_GetDriverStats(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	orders := []model.Order{
		{Driver: "D1", Status: utils.STATUS_NAME_DELIVERED},
		{Driver: "D1", Status: "STS_003"},
		{Driver: "D1", Status: utils.STATUS_NAME_POSTPONED},
		{Driver: "D1", Status: utils.STATUS_NAME_RETURNED},
		{Driver: "D2", Status: utils.STATUS_NAME_PENDING},
		{Driver: "", Status: utils.STATUS_NAME_DELIVERED},
	}

	mockIRepo := mocks.NewMockPGInterface(ctr1)
	analyticsFixture(mockIRepo, orders)

	s := NewAnalyticsService(mockIRepo)
	rs, err := s.GetDriverStats(context.Background(), model.AnalyticsParam{})
	if err != nil {
		t.Fatalf("GetDriverStats() error = %v", err)
	}

	want := []model.DriverStats{
		{Driver: "D1", Delivered: 2, Postponed: 1, Returned: 1, Total: 4, SuccessRate: 0.5},
		{Driver: "D2", Delivered: 0, Postponed: 0, Returned: 0, Total: 1, SuccessRate: 0},
	}
	if !reflect.DeepEqual(rs, want) {
		t.Errorf("GetDriverStats() = %v, want %v", rs, want)
	}
}

func TestAnalyticsService_GetCashCollection(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctr1 := gomock.NewController(t)
	defer ctr1.Finish()

	tests := []struct {
		name   string
		orders []model.Order
		want   model.CashCollection
	}{
		{
			name: "mixed delivered and collected",
			orders: []model.Order{
				{Status: utils.STATUS_NAME_DELIVERED, Cod: 100},
				{Status: utils.STATUS_NAME_DELIVERED, Cod: 50},
				{Status: utils.STATUS_NAME_COLLECTED, Cod: 150},
				{Status: utils.STATUS_NAME_PENDING, Cod: 999},
			},
			want: model.CashCollection{Outstanding: 150, Collected: 150, CollectionRate: 0.5},
		},
		{
			name:   "empty set keeps the rate at zero",
			orders: []model.Order{},
			want:   model.CashCollection{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIRepo := mocks.NewMockPGInterface(ctr1)
			analyticsFixture(mockIRepo, tt.orders)

			s := NewAnalyticsService(mockIRepo)
			rs, err := s.GetCashCollection(context.Background(), model.AnalyticsParam{})
			if err != nil {
				t.Fatalf("GetCashCollection() error = %v", err)
			}
			if !reflect.DeepEqual(rs, tt.want) {
				t.Errorf("GetCashCollection() = %v, want %v", rs, tt.want)
			}
		})
	}
}
