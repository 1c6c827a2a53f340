package model

// Shop 子店铺（配送规则可限定到某个子店铺）
type Shop struct {
	BaseModel

	Name     string `gorm:"size:255;not null" json:"name"`
	Host     string `gorm:"size:255" json:"host"`
	Active   bool   `gorm:"default:true" json:"active"`
	Default  bool   `gorm:"default:false" json:"default"`
	Position int    `gorm:"default:0" json:"position"`
}

func (Shop) TableName() string {
	return "shops"
}
