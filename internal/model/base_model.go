package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel 软删除基础模型
type BaseModel struct {
	ID        int64          `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Models 需要自动建表/迁移的全部模型
func Models() []interface{} {
	return []interface{}{
		// 店铺
		&Shop{},
		// 基础数据
		&Country{}, &Payment{}, &Holiday{}, &Category{},
		// 配送
		&Dispatch{}, &DispatchAttribute{}, &ShippingCost{},
	}
}
