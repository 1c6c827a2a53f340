package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// TableStat 表行数统计
type TableStat struct {
	TableName string
	Rows      int64
}

// Migrator 建表并输出统计
type Migrator struct {
	db     *gorm.DB
	models []interface{}
	log    zerolog.Logger
}

// NewMigrator 创建迁移器
func NewMigrator(db *gorm.DB, log zerolog.Logger, models ...interface{}) *Migrator {
	return &Migrator{
		db:     db,
		models: models,
		log:    log.With().Str("component", "migrator").Logger(),
	}
}

// Migrate 执行 AutoMigrate
func (m *Migrator) Migrate(ctx context.Context) ([]TableStat, error) {
	m.log.Info().Int("models", len(m.models)).Msg("[DB] 开始数据库迁移...")
	start := time.Now()

	if err := m.db.WithContext(ctx).AutoMigrate(m.models...); err != nil {
		return nil, fmt.Errorf("AutoMigrate 失败: %w", err)
	}

	stats, err := m.Stats(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range stats {
		m.log.Info().Str("table", s.TableName).Int64("rows", s.Rows).Msg("[DB]")
	}

	m.log.Info().Dur("elapsed", time.Since(start)).Msg("[DB] 迁移完成")
	return stats, nil
}

// Stats 各表行数（软删除记录也计入）
func (m *Migrator) Stats(ctx context.Context) ([]TableStat, error) {
	stats := make([]TableStat, 0, len(m.models))
	for _, model := range m.models {
		stmt := &gorm.Statement{DB: m.db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("解析模型失败: %w", err)
		}

		var rows int64
		err := m.db.WithContext(ctx).Table(stmt.Schema.Table).Count(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("统计 %s 失败: %w", stmt.Schema.Table, err)
		}
		stats = append(stats, TableStat{TableName: stmt.Schema.Table, Rows: rows})
	}
	return stats, nil
}
