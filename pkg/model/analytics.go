package model

import (
	"time"
)

type AnalyticsParam struct {
	Driver   string     `json:"driver" form:"driver"`
	Merchant string     `json:"merchant" form:"merchant"`
	Region   string     `json:"region" form:"region"`
	Status   string     `json:"status" form:"status"`
	DateFrom *time.Time `json:"date_from" form:"date_from"`
	DateTo   *time.Time `json:"date_to" form:"date_to"`
}

type DriverStats struct {
	Driver      string  `json:"driver"`
	Delivered   int     `json:"delivered"`
	Postponed   int     `json:"postponed"`
	Returned    int     `json:"returned"`
	Total       int     `json:"total"`
	SuccessRate float64 `json:"success_rate"`
}

type ProfitByDate struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
}

type CashCollection struct {
	Outstanding    float64 `json:"outstanding"`
	Collected      float64 `json:"collected"`
	CollectionRate float64 `json:"collection_rate"`
}
