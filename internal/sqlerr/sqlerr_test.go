package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("query dispatches: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"fk violation", &pgconn.PgError{Code: "23503"}, http.StatusConflict},
		{"unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{"serialization", &pgconn.PgError{Code: "40001"}, http.StatusServiceUnavailable},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, http.StatusServiceUnavailable},
		{"canceled", &pgconn.PgError{Code: "57014"}, http.StatusGatewayTimeout},
		{"unknown pg code", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, http.StatusConflict},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, Retryable(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, Retryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, Retryable(nil))
}
