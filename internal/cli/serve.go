package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"dispatch_admin/internal/config"
	"dispatch_admin/internal/controller"
	"dispatch_admin/internal/middleware"
	"dispatch_admin/internal/router"
	"dispatch_admin/internal/task"
)

const shutdownTimeout = 30 * time.Second

// scheduledTask 随 serve 启停的定时任务
type scheduledTask interface {
	Start() error
	Stop() context.Context
}

// newScheduledTasks 按配置创建定时任务
var newScheduledTasks = func(cfg *config.Config, app *App) []scheduledTask {
	var tasks []scheduledTask
	if cfg.Task.OrphanReportEnabled {
		tasks = append(tasks, task.NewOrphanDispatchTask(app.DispatchSvc, cfg.Task.OrphanReportSpec, app.Log))
	}
	return tasks
}

func newServeCmd(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务及定时任务",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if cfg.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			app, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			// ==================== 定时任务 ====================
			for _, t := range newScheduledTasks(cfg, app) {
				if err := t.Start(); err != nil {
					return err
				}
				// 任何退出路径都等待执行中的任务结束
				defer func() { <-t.Stop().Done() }()
			}

			// ==================== 路由 ====================
			r := router.SetupRouter(router.Deps{
				Auth:          cfg.Auth,
				PurgeCooldown: cfg.Server.PurgeCooldown,
				Limiter:       middleware.NewOperationLimiter(),
				Log:           app.Log,
				DispatchCtl:   controller.NewDispatchController(app.DispatchSvc),
			})

			srv := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      r,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				app.Log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("服务启动")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			// 等待中断信号
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				app.Log.Error().Err(err).Msg("服务启动失败")
				return err
			case <-quit:
			}

			app.Log.Info().Msg("正在关闭服务...")

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				app.Log.Error().Err(err).Msg("服务强制关闭")
				return err
			}

			app.Log.Info().Msg("服务已退出")
			return nil
		},
	}
}
