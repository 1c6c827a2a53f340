// Package testutil 测试用的内存数据库和固定数据
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dispatch_admin/internal/model"
)

// NewDB 内存 sqlite，已建好全部表
// 内存库每个连接相互独立，连接数固定为 1
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "连接测试数据库失败")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.Models()...))
	return db
}

// Fixtures 固定数据的 ID
type Fixtures struct {
	Standard int64 // 不限店铺，带全部关联和 3 档运费
	Express  int64 // 限定在存在的店铺
	Outlet   int64 // 限定店铺已软删除
	Pickup   int64 // 限定店铺不存在

	MainShop   int64
	OutletShop int64
}

func ptr[T any](v T) *T { return &v }

// Seed 写入固定数据
//
//	dispatches: Standard(1) Express(2) Outlet(3) Pickup(4)，position 同 ID
//	countries:  DE(1) AT(2) CH(3) FR(4, 未启用)
//	payments:   prepayment(1) invoice(2) paypal(3, 未启用)
//	holidays:   Christmas(1) New Year(2)
func Seed(t testing.TB, db *gorm.DB) Fixtures {
	t.Helper()

	shops := []model.Shop{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Main", Host: "main.example.com", Default: true},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Outlet", Host: "outlet.example.com", Position: 1},
	}
	require.NoError(t, db.Create(&shops).Error)

	countries := []model.Country{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Germany", ISO: "DE", ISO3: "DEU", Position: 1, Active: true},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Austria", ISO: "AT", ISO3: "AUT", Position: 2, Active: true},
		{BaseModel: model.BaseModel{ID: 3}, Name: "Switzerland", ISO: "CH", ISO3: "CHE", Position: 3, Active: true},
		{BaseModel: model.BaseModel{ID: 4}, Name: "France", ISO: "FR", ISO3: "FRA", Position: 4},
	}
	require.NoError(t, db.Create(&countries).Error)

	payments := []model.Payment{
		{BaseModel: model.BaseModel{ID: 1}, Name: "prepayment", Description: "Vorkasse", Position: 1, Active: true},
		{BaseModel: model.BaseModel{ID: 2}, Name: "invoice", Description: "Rechnung", Position: 2, Active: true, Surcharge: 5},
		{BaseModel: model.BaseModel{ID: 3}, Name: "paypal", Description: "PayPal", Position: 3, DebitPercent: 1.9},
	}
	require.NoError(t, db.Create(&payments).Error)

	holidays := []model.Holiday{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Christmas", Date: datatypes.Date(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))},
		{BaseModel: model.BaseModel{ID: 2}, Name: "New Year", Date: datatypes.Date(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))},
	}
	require.NoError(t, db.Create(&holidays).Error)

	category := model.Category{BaseModel: model.BaseModel{ID: 1}, Name: "Books"}
	require.NoError(t, db.Create(&category).Error)

	dispatches := []model.Dispatch{
		{
			BaseModel:   model.BaseModel{ID: 1},
			Name:        "Standard Versand",
			Description: "Standard delivery",
			Active:      true,
			Position:    1,
			Calculation: model.DispatchCalculationWeight,
			Countries:   countries[:2],
			Payments:    payments[:2],
			Holidays:    holidays[:1],
			Categories:  []model.Category{category},
			Attribute:   &model.DispatchAttribute{Extra: datatypes.JSONMap{"carrier": "DHL"}},
		},
		{
			BaseModel:   model.BaseModel{ID: 2},
			Name:        "Express",
			Description: "Fast DELIVERY next day",
			Active:      true,
			Position:    2,
			MultiShopID: ptr(int64(1)),
		},
		{
			BaseModel:   model.BaseModel{ID: 3},
			Name:        "Outlet Versand",
			Description: "Outlet only",
			Position:    3,
			MultiShopID: ptr(int64(2)),
		},
		{
			BaseModel:   model.BaseModel{ID: 4},
			Name:        "Pickup",
			Description: "Abholung 100%_sale",
			Position:    4,
			MultiShopID: ptr(int64(99)),
		},
	}
	require.NoError(t, db.Create(&dispatches).Error)

	// 故意乱序写入
	costs := []model.ShippingCost{
		{DispatchID: 1, From: 10, Value: 3.9},
		{DispatchID: 1, From: 0, Value: 5.9},
		{DispatchID: 1, From: 5, Value: 4.9},
		{DispatchID: 2, From: 0, Value: 12.5},
	}
	require.NoError(t, db.Create(&costs).Error)

	// Outlet 店铺软删除
	require.NoError(t, db.Delete(&model.Shop{}, 2).Error)

	return Fixtures{
		Standard:   1,
		Express:    2,
		Outlet:     3,
		Pickup:     4,
		MainShop:   1,
		OutletShop: 2,
	}
}
