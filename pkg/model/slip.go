package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Slips are append-only ledger records: a named party, a date and a snapshot
// of order identifiers. item_count is frozen at creation and never recomputed.

type DriverPaymentSlip struct {
	BaseModel
	DriverName string         `json:"driver_name" sql:"index" gorm:"column:driver_name;not null"`
	Date       datatypes.Date `json:"date" gorm:"column:date"`
	OrderIds   pq.StringArray `json:"order_ids" gorm:"column:order_ids;type:varchar(20)[]"`
	ItemCount  int            `json:"item_count" gorm:"column:item_count"`
}

func (DriverPaymentSlip) TableName() string {
	return "driver_payment_slips"
}

type MerchantPaymentSlip struct {
	BaseModel
	MerchantName string         `json:"merchant_name" sql:"index" gorm:"column:merchant_name;not null"`
	Date         datatypes.Date `json:"date" gorm:"column:date"`
	OrderIds     pq.StringArray `json:"order_ids" gorm:"column:order_ids;type:varchar(20)[]"`
	ItemCount    int            `json:"item_count" gorm:"column:item_count"`
	Status       string         `json:"status" sql:"index" gorm:"column:status;default:'open'"`
}

func (MerchantPaymentSlip) TableName() string {
	return "merchant_payment_slips"
}

type DriverReturnSlip struct {
	BaseModel
	DriverName string         `json:"driver_name" sql:"index" gorm:"column:driver_name;not null"`
	Date       datatypes.Date `json:"date" gorm:"column:date"`
	OrderIds   pq.StringArray `json:"order_ids" gorm:"column:order_ids;type:varchar(20)[]"`
	ItemCount  int            `json:"item_count" gorm:"column:item_count"`
}

func (DriverReturnSlip) TableName() string {
	return "driver_return_slips"
}

type MerchantReturnSlip struct {
	BaseModel
	MerchantName string         `json:"merchant_name" sql:"index" gorm:"column:merchant_name;not null"`
	Date         datatypes.Date `json:"date" gorm:"column:date"`
	OrderIds     pq.StringArray `json:"order_ids" gorm:"column:order_ids;type:varchar(20)[]"`
	ItemCount    int            `json:"item_count" gorm:"column:item_count"`
	Status       string         `json:"status" sql:"index" gorm:"column:status;default:'open'"`
}

func (MerchantReturnSlip) TableName() string {
	return "merchant_return_slips"
}

type SlipBody struct {
	Name     *string    `json:"name" valid:"Required"`
	Date     *time.Time `json:"date"`
	OrderIds []string   `json:"order_ids" valid:"Required"`
}

type UpdateSlipStatusBody struct {
	Status *string `json:"status" valid:"Required"`
}

type SlipParam struct {
	Name     string     `json:"name" form:"name"`
	Status   string     `json:"status" form:"status"`
	DateFrom *time.Time `json:"date_from" form:"date_from"`
	DateTo   *time.Time `json:"date_to" form:"date_to"`
	Page     int        `json:"page" form:"page"`
	PageSize int        `json:"page_size" form:"page_size"`
	Sort     string     `json:"sort" form:"sort"`
}

type ListDriverPaymentSlipResponse struct {
	Data []DriverPaymentSlip    `json:"slips"`
	Meta map[string]interface{} `json:"meta"`
}

type ListMerchantPaymentSlipResponse struct {
	Data []MerchantPaymentSlip  `json:"slips"`
	Meta map[string]interface{} `json:"meta"`
}

type ListDriverReturnSlipResponse struct {
	Data []DriverReturnSlip     `json:"slips"`
	Meta map[string]interface{} `json:"meta"`
}

type ListMerchantReturnSlipResponse struct {
	Data []MerchantReturnSlip   `json:"slips"`
	Meta map[string]interface{} `json:"meta"`
}
