package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"dispatch_admin/internal/api/dto"
)

var ErrTaskRunning = errors.New("task is already running")

// OrphanFinder 查找限定店铺已删除的配送规则
type OrphanFinder interface {
	FindDispatchesWithDeletedShops(ctx context.Context) (*dto.OrphanReportResp, error)
}

// OrphanDispatchTask 数据完整性巡检
// 定期找出限定店铺已不存在的配送规则并写日志，不做任何修改
type OrphanDispatchTask struct {
	finder  OrphanFinder
	spec    string
	timeout time.Duration
	cron    *cron.Cron
	log     zerolog.Logger

	running atomic.Bool
	mu      sync.RWMutex
	last    *dto.OrphanReportResp
}

// NewOrphanDispatchTask spec 为秒级 cron 表达式，如 "0 0 3 * * *"
func NewOrphanDispatchTask(finder OrphanFinder, spec string, log zerolog.Logger) *OrphanDispatchTask {
	return &OrphanDispatchTask{
		finder:  finder,
		spec:    spec,
		timeout: 5 * time.Minute,
		cron:    cron.New(cron.WithSeconds()), // 支持秒级控制
		log:     log.With().Str("component", "orphan_task").Logger(),
	}
}

// Start 注册并启动定时任务
func (t *OrphanDispatchTask) Start() error {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		if _, err := t.RunOnce(ctx); err != nil && !errors.Is(err, ErrTaskRunning) {
			t.log.Error().Err(err).Msg("[Task] 配送规则巡检失败")
		}
	})
	if err != nil {
		return fmt.Errorf("无法启动配送规则巡检任务: %w", err)
	}

	t.cron.Start()
	t.log.Info().Str("spec", t.spec).Msg("[Task] 配送规则巡检任务已启动")
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (t *OrphanDispatchTask) Stop() context.Context {
	return t.cron.Stop()
}

// RunOnce 立即执行一次巡检，同一时间只允许一个实例运行
func (t *OrphanDispatchTask) RunOnce(ctx context.Context) (*dto.OrphanReportResp, error) {
	if !t.running.CompareAndSwap(false, true) {
		return nil, ErrTaskRunning
	}
	defer t.running.Store(false)

	start := time.Now()
	report, err := t.finder.FindDispatchesWithDeletedShops(ctx)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.last = report
	t.mu.Unlock()

	if report.Count == 0 {
		t.log.Info().Dur("elapsed", time.Since(start)).Msg("[Task] 配送规则巡检完成，未发现问题")
		return report, nil
	}

	for _, item := range report.Items {
		t.log.Warn().
			Int64("dispatch_id", item.ID).
			Str("name", item.Name).
			Int64("multi_shop_id", item.MultiShopID).
			Msg("[Task] 配送规则限定的店铺已不存在")
	}
	t.log.Warn().Int("count", report.Count).Dur("elapsed", time.Since(start)).Msg("[Task] 配送规则巡检完成")
	return report, nil
}

// LastReport 最近一次巡检结果，尚未执行时为 nil
func (t *OrphanDispatchTask) LastReport() *dto.OrphanReportResp {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}
