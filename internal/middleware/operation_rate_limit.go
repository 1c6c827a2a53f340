package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// OperationRateLimit 按配送规则 + 操作类型进行冷却
//
// 使用示例:
//
//	v1.DELETE("/costs-matrix/:dispatchId",
//	    middleware.OperationRateLimit(limiter, middleware.OpPurgeMatrix, 10*time.Second),
//	    ctl.PurgeCostsMatrix,
//	)
//
// interval 为 0 时不限制
func OperationRateLimit(limiter *OperationLimiter, op OperationType, interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if interval <= 0 {
			c.Next()
			return
		}

		dispatchID, err := strconv.ParseInt(c.Param("dispatchId"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "无效的配送规则 ID"})
			return
		}

		result := limiter.Check(DispatchOperationKey(dispatchID, op), interval)
		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(result.RetryAfter)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       formatRetryMessage(result.RetryAfter),
				"retry_after": retryAfterSeconds(result.RetryAfter),
				"operation":   op,
			})
			return
		}

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// retryAfterSeconds 向上取整，至少 1 秒
func retryAfterSeconds(d time.Duration) int {
	s := int((d + time.Second - 1) / time.Second)
	if s < 1 {
		s = 1
	}
	return s
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := retryAfterSeconds(d)

	if seconds < 60 {
		return fmt.Sprintf("操作冷却中，请 %d 秒后重试", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60

	if remainingSeconds == 0 {
		return fmt.Sprintf("操作冷却中，请 %d 分钟后重试", minutes)
	}

	return fmt.Sprintf("操作冷却中，请 %d 分 %d 秒后重试", minutes, remainingSeconds)
}
