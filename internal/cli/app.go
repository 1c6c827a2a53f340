package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dispatch_admin/internal/config"
	"dispatch_admin/internal/logger"
	"dispatch_admin/internal/middleware"
	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/service"
	"dispatch_admin/pkg/database"
)

// slowQueryThreshold 超过该耗时的 SQL 记为慢查询
const slowQueryThreshold = 200 * time.Millisecond

// App 依赖容器
type App struct {
	Cfg *config.Config
	Log zerolog.Logger
	DB  *gorm.DB

	DispatchRepo repository.DispatchRepository
	DispatchSvc  *service.DispatchService
}

// newApp 连接数据库并组装依赖
func newApp(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Log)

	var gormLog gormlogger.Interface = logger.NewGormLogger(log, slowQueryThreshold)
	if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
		gormLog = gormLog.LogMode(gormlogger.Info)
	}

	db, err := database.InitDB(cfg.Database, gormLog, model.Models()...)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("[DB] 数据库连接成功")

	if err := middleware.RegisterAuditCallbacks(db, log); err != nil {
		return nil, fmt.Errorf("注册审计回调失败: %w", err)
	}

	// -------- Repo 层 --------
	dispatchRepo := repository.NewDispatchRepository(db)

	// -------- 业务服务 --------
	dispatchSvc := service.NewDispatchService(db, dispatchRepo, log)

	return &App{
		Cfg:          cfg,
		Log:          log,
		DB:           db,
		DispatchRepo: dispatchRepo,
		DispatchSvc:  dispatchSvc,
	}, nil
}

// Close 关闭数据库连接
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
