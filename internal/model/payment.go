package model

// Payment 支付方式
type Payment struct {
	BaseModel

	Name         string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
	Position     int     `gorm:"default:0" json:"position"`
	Active       bool    `gorm:"default:false" json:"active"`
	DebitPercent float64 `gorm:"type:decimal(5,2);default:0;comment:手续费百分比" json:"debit_percent"`
	Surcharge    float64 `gorm:"type:decimal(10,2);default:0;comment:固定附加费" json:"surcharge"`
}

// Country 国家
type Country struct {
	BaseModel

	Name     string `gorm:"size:255;not null" json:"name"`
	ISO      string `gorm:"size:2;index" json:"iso"`
	ISO3     string `gorm:"column:iso3;size:3" json:"iso3"`
	AreaID   *int64 `gorm:"index" json:"area_id"`
	Position int    `gorm:"default:0" json:"position"`
	Active   bool   `gorm:"default:false" json:"active"`
}

func (Payment) TableName() string {
	return "payments"
}
func (Country) TableName() string {
	return "countries"
}
