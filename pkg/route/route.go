package route

import (
	"github.com/caarlos0/env/v6"
	"github.com/gin-contrib/cors"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"

	"wasel/ms-delivery-management/pkg/handlers"
	"wasel/ms-delivery-management/pkg/notifier"
	"wasel/ms-delivery-management/pkg/repo"
	service2 "wasel/ms-delivery-management/pkg/service"
)

type extraSetting struct {
	DbDebugEnable bool `env:"DB_DEBUG_ENABLE" envDefault:"true"`
}

type Service struct {
	*service.BaseApp
	setting *extraSetting
}

func NewService() *Service {
	s := &Service{
		service.NewApp("MS Delivery Management", "v1.0"),
		&extraSetting{},
	}

	// repo
	_ = env.Parse(s.setting)
	db := s.GetDB()
	if s.setting.DbDebugEnable {
		db = db.Debug()
	}
	repoPG := repo.NewPGRepo(db)
	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"PUT", "PATCH", "GET", "DELETE", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-user-id"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	publisher := notifier.NewRealtimePublisher()

	orderService := service2.NewOrderService(repoPG, publisher)
	exportService := service2.NewExportService(repoPG)
	slipService := service2.NewSlipService(repoPG)
	analyticsService := service2.NewAnalyticsService(repoPG)
	printSettingService := service2.NewPrintSettingService(repoPG)

	orderHandle := handlers.NewOrderHandlers(orderService, exportService)
	slipHandle := handlers.NewSlipHandlers(slipService)
	analyticsHandle := handlers.NewAnalyticsHandlers(analyticsService)
	printSettingHandle := handlers.NewPrintSettingHandlers(printSettingService)

	v1Api := s.Router.Group("/api/v1")

	// orders
	v1Api.GET("/orders", ginext.WrapHandler(orderHandle.GetAllOrder))
	v1Api.GET("/orders/export", orderHandle.ExportOrderReport)
	v1Api.GET("/orders/:id", ginext.WrapHandler(orderHandle.GetOneOrder))
	v1Api.POST("/orders", ginext.WrapHandler(orderHandle.CreateOrder))
	v1Api.PUT("/orders/:id", ginext.WrapHandler(orderHandle.UpdateOrder))
	v1Api.PATCH("/orders/:id/status", ginext.WrapHandler(orderHandle.UpdateOrderStatus))
	v1Api.POST("/orders/bulk-status", ginext.WrapHandler(orderHandle.BulkUpdateStatus))
	v1Api.POST("/orders/bulk-assign", ginext.WrapHandler(orderHandle.BulkAssign))
	v1Api.DELETE("/orders/:id", ginext.WrapHandler(orderHandle.DeleteOrder))
	v1Api.POST("/orders/bulk-delete", ginext.WrapHandler(orderHandle.BulkDeleteOrder))

	// driver payment slips
	v1Api.POST("/driver-payment-slips", ginext.WrapHandler(slipHandle.CreateDriverPaymentSlip))
	v1Api.GET("/driver-payment-slips", ginext.WrapHandler(slipHandle.GetListDriverPaymentSlip))
	v1Api.GET("/driver-payment-slips/:id", ginext.WrapHandler(slipHandle.GetOneDriverPaymentSlip))
	v1Api.DELETE("/driver-payment-slips/:id", ginext.WrapHandler(slipHandle.DeleteDriverPaymentSlip))

	// merchant payment slips
	v1Api.POST("/merchant-payment-slips", ginext.WrapHandler(slipHandle.CreateMerchantPaymentSlip))
	v1Api.GET("/merchant-payment-slips", ginext.WrapHandler(slipHandle.GetListMerchantPaymentSlip))
	v1Api.GET("/merchant-payment-slips/:id", ginext.WrapHandler(slipHandle.GetOneMerchantPaymentSlip))
	v1Api.DELETE("/merchant-payment-slips/:id", ginext.WrapHandler(slipHandle.DeleteMerchantPaymentSlip))
	v1Api.PUT("/merchant-payment-slips/:id/status", ginext.WrapHandler(slipHandle.UpdateMerchantPaymentSlipStatus))

	// driver return slips
	v1Api.POST("/driver-return-slips", ginext.WrapHandler(slipHandle.CreateDriverReturnSlip))
	v1Api.GET("/driver-return-slips", ginext.WrapHandler(slipHandle.GetListDriverReturnSlip))
	v1Api.GET("/driver-return-slips/:id", ginext.WrapHandler(slipHandle.GetOneDriverReturnSlip))
	v1Api.DELETE("/driver-return-slips/:id", ginext.WrapHandler(slipHandle.DeleteDriverReturnSlip))

	// merchant return slips
	v1Api.POST("/merchant-return-slips", ginext.WrapHandler(slipHandle.CreateMerchantReturnSlip))
	v1Api.GET("/merchant-return-slips", ginext.WrapHandler(slipHandle.GetListMerchantReturnSlip))
	v1Api.GET("/merchant-return-slips/:id", ginext.WrapHandler(slipHandle.GetOneMerchantReturnSlip))
	v1Api.DELETE("/merchant-return-slips/:id", ginext.WrapHandler(slipHandle.DeleteMerchantReturnSlip))
	v1Api.PUT("/merchant-return-slips/:id/status", ginext.WrapHandler(slipHandle.UpdateMerchantReturnSlipStatus))

	// analytics
	v1Api.GET("/analytics/driver-stats", ginext.WrapHandler(analyticsHandle.GetDriverStats))
	v1Api.GET("/analytics/profit-by-date", ginext.WrapHandler(analyticsHandle.GetProfitByDate))
	v1Api.GET("/analytics/cash-collection", ginext.WrapHandler(analyticsHandle.GetCashCollection))

	// print settings
	v1Api.GET("/print-settings/:kind", ginext.WrapHandler(printSettingHandle.GetPrintSetting))
	v1Api.PUT("/print-settings/:kind", ginext.WrapHandler(printSettingHandle.UpdatePrintSetting))

	// Migrate
	migrateHandler := handlers.NewMigrationHandler(db)
	s.Router.POST("/internal/migrate", migrateHandler.Migrate)

	return s
}
