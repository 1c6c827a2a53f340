package middleware

import (
	"fmt"
	"sync"
	"time"
)

// ==================== OperationLimiter 操作冷却 ====================

// OperationLimiter 破坏性操作冷却器
// 防止同一配送规则在短时间内被重复清空
type OperationLimiter struct {
	locks sync.Map // key -> *lockEntry
	now   func() time.Time
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// NewOperationLimiter 创建冷却器
func NewOperationLimiter() *OperationLimiter {
	return &OperationLimiter{now: time.Now}
}

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行，允许时记录本次执行时间
// key: 如 "dispatch:12:purge_matrix"
func (r *OperationLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := r.now()
	elapsed := now.Sub(entry.lastTime)
	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// ==================== Key 生成工具 ====================

// OperationType 受冷却保护的操作
type OperationType string

const (
	OpPurgeMatrix OperationType = "purge_matrix"
)

// DispatchOperationKey 配送规则级 Key
func DispatchOperationKey(dispatchID int64, op OperationType) string {
	return fmt.Sprintf("dispatch:%d:%s", dispatchID, op)
}
