package model

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID                   string         `json:"id" gorm:"column:id;primary_key;type:varchar(20)"`
	OrderNumber          int            `json:"order_number" sql:"index" gorm:"column:order_number;not null;unique"`
	Source               string         `json:"source" sql:"index" gorm:"column:source;not null"`
	ReferenceNumber      string         `json:"reference_number" gorm:"column:reference_number;null"`
	Recipient            string         `json:"recipient" gorm:"column:recipient;not null"`
	Phone                string         `json:"phone" sql:"index" gorm:"column:phone;not null"`
	Whatsapp             string         `json:"whatsapp" gorm:"column:whatsapp;null"`
	Address              string         `json:"address" gorm:"column:address;not null"`
	City                 string         `json:"city" sql:"index" gorm:"column:city;not null"`
	Region               string         `json:"region" sql:"index" gorm:"column:region;null"`
	Merchant             string         `json:"merchant" sql:"index" gorm:"column:merchant;not null"`
	Driver               string         `json:"driver" sql:"index" gorm:"column:driver;null"`
	Status               string         `json:"status" sql:"index" gorm:"column:status;not null"`
	PreviousStatus       string         `json:"previous_status" gorm:"column:previous_status;default:''"`
	Cod                  float64        `json:"cod" gorm:"column:cod"`
	ItemPrice            float64        `json:"item_price" gorm:"column:item_price"`
	DeliveryFee          float64        `json:"delivery_fee" gorm:"column:delivery_fee"`
	AdditionalCost       float64        `json:"additional_cost" gorm:"column:additional_cost"`
	DriverFee            float64        `json:"driver_fee" gorm:"column:driver_fee"`
	DriverAdditionalFare float64        `json:"driver_additional_fare" gorm:"column:driver_additional_fare"`
	Date                 datatypes.Date `json:"date" sql:"index" gorm:"column:date"`
	Notes                string         `json:"notes" gorm:"column:notes;type:varchar(500)"`
	Lat                  *float64       `json:"lat,omitempty" gorm:"column:lat"`
	Lng                  *float64       `json:"lng,omitempty" gorm:"column:lng"`
	CreatedAt            time.Time      `json:"created_at" gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt            time.Time      `json:"updated_at" gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

func (Order) TableName() string {
	return "orders"
}

// Define your request body here
type OrderBody struct {
	Source               *string    `json:"source" valid:"Required"`
	ReferenceNumber      *string    `json:"reference_number"`
	Recipient            *string    `json:"recipient" valid:"Required"`
	Phone                *string    `json:"phone" valid:"Required"`
	Whatsapp             *string    `json:"whatsapp"`
	Address              *string    `json:"address" valid:"Required"`
	City                 *string    `json:"city" valid:"Required"`
	Region               *string    `json:"region"`
	Merchant             *string    `json:"merchant" valid:"Required"`
	Driver               *string    `json:"driver"`
	Status               *string    `json:"status"`
	Cod                  *float64   `json:"cod" valid:"Required"`
	ItemPrice            *float64   `json:"item_price"`
	DeliveryFee          *float64   `json:"delivery_fee"`
	AdditionalCost       *float64   `json:"additional_cost"`
	DriverFee            *float64   `json:"driver_fee"`
	DriverAdditionalFare *float64   `json:"driver_additional_fare"`
	Date                 *time.Time `json:"date"`
	Notes                *string    `json:"notes"`
	Lat                  *float64   `json:"lat"`
	Lng                  *float64   `json:"lng"`
}

// UpdateOrderBody carries a partial field set. Nil fields are left untouched,
// unknown JSON keys are dropped by the binder rather than rejected.
type UpdateOrderBody struct {
	ReferenceNumber      *string    `json:"reference_number"`
	Recipient            *string    `json:"recipient"`
	Phone                *string    `json:"phone"`
	Whatsapp             *string    `json:"whatsapp"`
	Address              *string    `json:"address"`
	City                 *string    `json:"city"`
	Region               *string    `json:"region"`
	Merchant             *string    `json:"merchant"`
	Driver               *string    `json:"driver"`
	Status               *string    `json:"status"`
	Cod                  *float64   `json:"cod"`
	ItemPrice            *float64   `json:"item_price"`
	DeliveryFee          *float64   `json:"delivery_fee"`
	AdditionalCost       *float64   `json:"additional_cost"`
	DriverFee            *float64   `json:"driver_fee"`
	DriverAdditionalFare *float64   `json:"driver_additional_fare"`
	Date                 *time.Time `json:"date"`
	Notes                *string    `json:"notes"`
	Lat                  *float64   `json:"lat"`
	Lng                  *float64   `json:"lng"`
}

type UpdateOrderStatusBody struct {
	Status *string `json:"status" valid:"Required"`
	Driver *string `json:"driver"`
}

type BulkStatusBody struct {
	OrderIds []string `json:"order_ids" valid:"Required"`
	Status   *string  `json:"status" valid:"Required"`
}

type BulkAssignBody struct {
	OrderIds []string `json:"order_ids" valid:"Required"`
	Driver   *string  `json:"driver"`
	Merchant *string  `json:"merchant"`
}

type BulkDeleteBody struct {
	OrderIds []string `json:"order_ids" valid:"Required"`
}

// Define your request param here
// Remember to use form tag
type OrderParam struct {
	Driver   string     `json:"driver" form:"driver"`
	Merchant string     `json:"merchant" form:"merchant"`
	Status   string     `json:"status" form:"status"`
	City     string     `json:"city" form:"city"`
	Region   string     `json:"region" form:"region"`
	Source   string     `json:"source" form:"source"`
	Search   string     `json:"search" form:"search"`
	DateFrom *time.Time `json:"date_from" form:"date_from"`
	DateTo   *time.Time `json:"date_to" form:"date_to"`
	Page     int        `json:"page" form:"page"`
	PageSize int        `json:"page_size" form:"page_size"`
	Sort     string     `json:"sort" form:"sort"`
}

type OrderStatusResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status"`
}

type BulkCountResponse struct {
	Updated int `json:"updated"`
}

type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

type ListOrderResponse struct {
	Data []Order                `json:"orders"`
	Meta map[string]interface{} `json:"meta"`
}

type ExportOrderReportRequest struct {
	Driver    string     `json:"driver" form:"driver"`
	Merchant  string     `json:"merchant" form:"merchant"`
	Status    string     `json:"status" form:"status"`
	StartTime *time.Time `json:"start_time" form:"start_time"`
	EndTime   *time.Time `json:"end_time" form:"end_time"`
}
