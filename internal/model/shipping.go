package model

import (
	"gorm.io/datatypes"
)

// Dispatch 计算方式常量
const (
	DispatchCalculationWeight   = 0 // 按重量
	DispatchCalculationPrice    = 1 // 按金额
	DispatchCalculationQuantity = 2 // 按件数
	DispatchCalculationCustom   = 3 // 自定义 SQL
)

// Dispatch 类型常量
const (
	DispatchTypeStandard  = 0 // 标准配送
	DispatchTypeAlternate = 1 // 备选配送
	DispatchTypeSurcharge = 2 // 附加费规则
	DispatchTypeDiscount  = 3 // 折扣规则
)

// Dispatch 配送规则
type Dispatch struct {
	BaseModel

	Name        string `gorm:"size:255;not null;comment:配送名称" json:"name"`
	Type        int    `gorm:"default:0;comment:类型" json:"type"`
	Description string `gorm:"type:text;comment:描述" json:"description"`
	Comment     string `gorm:"size:255;comment:备注" json:"comment"`
	Active      bool   `gorm:"default:false;comment:是否启用" json:"active"`
	Position    int    `gorm:"default:0;comment:排序" json:"position"`

	// 计算方式
	Calculation          int      `gorm:"default:0;comment:运费计算方式" json:"calculation"`
	SurchargeCalculation int      `gorm:"default:0;comment:附加费计算方式" json:"surcharge_calculation"`
	TaxCalculation       int      `gorm:"default:0;comment:税率计算方式" json:"tax_calculation"`
	ShippingFree         *float64 `gorm:"type:decimal(10,2);comment:免运费门槛" json:"shipping_free"`

	// 适用范围
	MultiShopID     *int64 `gorm:"index;comment:限定店铺ID" json:"multi_shop_id"`
	CustomerGroupID *int64 `gorm:"index;comment:限定客户组ID" json:"customer_group_id"`

	// 绑定条件
	BindWeightFrom *float64 `gorm:"type:decimal(10,3)" json:"bind_weight_from"`
	BindWeightTo   *float64 `gorm:"type:decimal(10,3)" json:"bind_weight_to"`
	BindPriceFrom  *float64 `gorm:"type:decimal(10,2)" json:"bind_price_from"`
	BindPriceTo    *float64 `gorm:"type:decimal(10,2)" json:"bind_price_to"`
	StatusLink     string   `gorm:"type:text;comment:物流跟踪链接" json:"status_link"`

	// 关联数据
	Countries   []Country          `gorm:"many2many:dispatch_countries" json:"countries,omitempty"`
	Categories  []Category         `gorm:"many2many:dispatch_categories" json:"categories,omitempty"`
	Holidays    []Holiday          `gorm:"many2many:dispatch_holidays" json:"holidays,omitempty"`
	Payments    []Payment          `gorm:"many2many:dispatch_payments" json:"payments,omitempty"`
	Attribute   *DispatchAttribute `gorm:"foreignKey:DispatchID" json:"attribute,omitempty"`
	CostsMatrix []ShippingCost     `gorm:"foreignKey:DispatchID" json:"-"`
}

// DispatchAttribute 配送规则扩展属性（一对一）
type DispatchAttribute struct {
	ID         int64             `gorm:"primaryKey" json:"id"`
	DispatchID int64             `gorm:"uniqueIndex;not null" json:"dispatch_id"`
	Extra      datatypes.JSONMap `json:"extra"`
}

// ShippingCost 运费矩阵中的一档
// From 为阶梯起点，按 Dispatch.Calculation 解释为重量/金额/件数
type ShippingCost struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	DispatchID int64   `gorm:"index;not null;comment:关联配送规则ID" json:"dispatch_id"`
	From       float64 `gorm:"column:from;type:decimal(10,3);not null;comment:阶梯起点" json:"from"`
	Value      float64 `gorm:"type:decimal(10,2);not null;comment:运费" json:"value"`
	Factor     float64 `gorm:"type:decimal(10,2);default:0;comment:系数" json:"factor"`
}

// Holiday 不发货日期
type Holiday struct {
	BaseModel

	Name        string         `gorm:"size:255;not null" json:"name"`
	Calculation string         `gorm:"size:255" json:"calculation"`
	Date        datatypes.Date `json:"date"`
}

// Category 商品分类
type Category struct {
	BaseModel

	ParentID *int64 `gorm:"index" json:"parent_id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Active   bool   `gorm:"default:true" json:"active"`
}

func (Dispatch) TableName() string {
	return "dispatches"
}
func (DispatchAttribute) TableName() string {
	return "dispatch_attributes"
}
func (ShippingCost) TableName() string {
	return "shipping_costs"
}
func (Holiday) TableName() string {
	return "holidays"
}
func (Category) TableName() string {
	return "categories"
}
