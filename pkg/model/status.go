package model

// Status is a row of the admin-configurable status vocabulary. The lifecycle
// core only reads this table, the classifier cross-references it when a raw
// order status no longer matches the built-in synonym lists.
type Status struct {
	BaseModel
	Code     string `json:"code" sql:"index" gorm:"column:code;not null;unique"`
	Name     string `json:"name" gorm:"column:name;not null"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;default:true"`
}

func (Status) TableName() string {
	return "statuses"
}
