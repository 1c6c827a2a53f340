package query

import (
	"context"

	"gorm.io/gorm"
)

// Find 执行描述符并返回全部结果
func Find[T any](ctx context.Context, db *gorm.DB, d Descriptor) ([]T, error) {
	var list []T
	err := d.Apply(db.WithContext(ctx)).Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// First 执行描述符并返回第一条，不存在时返回 gorm.ErrRecordNotFound
func First[T any](ctx context.Context, db *gorm.DB, d Descriptor) (*T, error) {
	var item T
	err := d.Apply(db.WithContext(ctx)).Take(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Count 统计描述符匹配的总行数（忽略分页）
func Count(ctx context.Context, db *gorm.DB, d Descriptor) (int64, error) {
	var total int64
	err := d.ForCount().Apply(db.WithContext(ctx)).Count(&total).Error
	return total, err
}
