package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dispatch_admin/internal/config"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "warn"}, &buf)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "nope"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGormLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		gl := NewGormLogger(NewWithWriter(config.LogConfig{Level: "debug"}, &buf), 0)

		gl.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("query error", func(t *testing.T) {
		var buf bytes.Buffer
		gl := NewGormLogger(NewWithWriter(config.LogConfig{Level: "debug"}, &buf), 0)

		gl.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "boom")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("slow query", func(t *testing.T) {
		var buf bytes.Buffer
		gl := NewGormLogger(NewWithWriter(config.LogConfig{Level: "debug"}, &buf), time.Millisecond)

		gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), `"level":"warn"`)
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		gl := NewGormLogger(NewWithWriter(config.LogConfig{Level: "debug"}, &buf), 0).LogMode(gormlogger.Silent)

		gl.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})

	t.Run("info mode logs statements", func(t *testing.T) {
		var buf bytes.Buffer
		gl := NewGormLogger(NewWithWriter(config.LogConfig{Level: "debug"}, &buf), 0).LogMode(gormlogger.Info)

		gl.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})
}
