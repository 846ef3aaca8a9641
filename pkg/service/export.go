package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gitlab.com/goxp/cloud0/logger"

	"wasel/ms-delivery-management/pkg/model"
	"wasel/ms-delivery-management/pkg/repo"
	"wasel/ms-delivery-management/pkg/utils"
)

type ExportService struct {
	repo repo.PGInterface
}

type ExportServiceInterface interface {
	ExportOrderReport(ctx context.Context, req model.ExportOrderReportRequest) (*excelize.File, string, error)
}

func NewExportService(repo repo.PGInterface) ExportServiceInterface {
	return &ExportService{repo: repo}
}

var orderReportHeader = []string{
	"Order ID", "Order Number", "Source", "Reference", "Recipient", "Phone",
	"Address", "City", "Region", "Merchant", "Driver", "Status",
	"COD", "Item Price", "Delivery Fee", "Additional Cost", "Driver Fee", "Date", "Notes",
}

// ExportOrderReport renders the filtered order set as a one-sheet workbook.
func (s *ExportService) ExportOrderReport(ctx context.Context, req model.ExportOrderReportRequest) (*excelize.File, string, error) {
	log := logger.WithCtx(ctx, "ExportService.ExportOrderReport")

	orders, err := s.repo.GetOrdersForReport(ctx, req, nil)
	if err != nil {
		log.WithError(err).Error("error_500: load orders in ExportOrderReport - ExportService")
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range orderReportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		values := []interface{}{
			o.ID, o.OrderNumber, o.Source, o.ReferenceNumber, o.Recipient, o.Phone,
			o.Address, o.City, o.Region, o.Merchant, o.Driver, o.Status,
			o.Cod, o.ItemPrice, o.DeliveryFee, o.AdditionalCost, o.DriverFee,
			time.Time(o.Date).Format(utils.DATE_FORMAT), o.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("orders_report_%s.xlsx", time.Now().Format("20060102_150405"))

	return f, fileName, nil
}
