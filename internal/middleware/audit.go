package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ==================== 审计上下文 ====================

type auditContextKey struct{}

// AuditInfo 审计信息
type AuditInfo struct {
	Username  string
	RequestID string
}

// WithAuditInfo 注入审计信息到 context
func WithAuditInfo(ctx context.Context, info AuditInfo) context.Context {
	return context.WithValue(ctx, auditContextKey{}, &info)
}

// GetAuditInfo 从 context 获取审计信息
func GetAuditInfo(ctx context.Context) *AuditInfo {
	if info, ok := ctx.Value(auditContextKey{}).(*AuditInfo); ok {
		return info
	}
	return nil
}

// ==================== Gin 中间件 ====================

// AuditContext 将 JWT 中的用户和请求 ID 注入 request context，供 GORM 回调使用
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if username := GetUsername(c); username != "" {
			ctx := WithAuditInfo(c.Request.Context(), AuditInfo{
				Username:  username,
				RequestID: GetRequestID(c),
			})
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// ==================== GORM 回调 ====================

// RegisterAuditCallbacks 注册 GORM 审计回调
// 每次删除后记录操作人、表名和影响行数
func RegisterAuditCallbacks(db *gorm.DB, log zerolog.Logger) error {
	log = log.With().Str("component", "audit").Logger()

	return db.Callback().Delete().After("gorm:delete").Register("audit:delete", func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Context == nil {
			return
		}

		event := log.Info().
			Str("table", tx.Statement.Table).
			Int64("rows", tx.RowsAffected)

		if info := GetAuditInfo(tx.Statement.Context); info != nil {
			event = event.Str("operator", info.Username).Str("request_id", info.RequestID)
		} else {
			event = event.Str("operator", "system")
		}
		event.Msg("[Audit] 删除记录")
	})
}
