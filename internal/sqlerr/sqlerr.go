// Package sqlerr 将数据库驱动错误归类为 HTTP 状态码
package sqlerr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Code 错误类别
type Code string

const (
	Other               Code = "other"
	NotFound            Code = "not_found"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	SerializationFailed Code = "serialization_failure"
	DeadlockDetected    Code = "deadlock_detected"
	QueryCanceled       Code = "query_canceled"
)

// postgres SQLSTATE
var pgCodes = map[string]Code{
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"40001": SerializationFailed,
	"40P01": DeadlockDetected,
	"57014": QueryCanceled,
}

// Classify 错误类别，未识别的返回 Other
func Classify(err error) Code {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if code, ok := pgCodes[pgErr.Code]; ok {
			return code
		}
	}
	// sqlite 驱动通过 gorm 的 TranslateError 返回通用错误
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ForeignKeyViolation
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return UniqueViolation
	}
	return Other
}

// HTTPStatus 错误对应的 HTTP 状态码
func HTTPStatus(err error) int {
	switch Classify(err) {
	case "":
		return http.StatusOK
	case NotFound:
		return http.StatusNotFound
	case ForeignKeyViolation, UniqueViolation:
		return http.StatusConflict
	case SerializationFailed, DeadlockDetected:
		return http.StatusServiceUnavailable
	case QueryCanceled:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Retryable 事务冲突类错误，客户端可以重试
func Retryable(err error) bool {
	c := Classify(err)
	return c == SerializationFailed || c == DeadlockDetected
}
