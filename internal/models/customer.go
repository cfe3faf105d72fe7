package models

type Customer struct {
	BaseModel
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Phone       string  `gorm:"uniqueIndex" json:"phone"`
	AddressLine string  `json:"address_line"`
	City        string  `json:"city"`
	Notes       string  `json:"notes"`
	Orders      []Order `json:"orders,omitempty"`
}
