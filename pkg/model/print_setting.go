package model

import (
	"encoding/json"

	"github.com/jinzhu/gorm/dialects/postgres"
)

// PrintSetting stores one dashboard print-layout document per kind
// (shipping policy, thermal label, receipt).
type PrintSetting struct {
	BaseModel
	Kind   string         `json:"kind" gorm:"column:kind;not null;unique"`
	Layout postgres.Jsonb `json:"layout" gorm:"column:layout"`
}

func (PrintSetting) TableName() string {
	return "print_settings"
}

type UpdatePrintSettingBody struct {
	Layout json.RawMessage `json:"layout" valid:"Required"`
}
