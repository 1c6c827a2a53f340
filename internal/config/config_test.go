package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISPATCH_AUTH__JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "0 0 3 * * *", cfg.Task.OrphanReportSpec)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DISPATCH_ENV", "production")
	t.Setenv("DISPATCH_SERVER__PORT", "9090")
	t.Setenv("DISPATCH_SERVER__PURGE_COOLDOWN", "1m")
	t.Setenv("DISPATCH_DATABASE__DRIVER", "sqlite")
	t.Setenv("DISPATCH_DATABASE__NAME", "dispatch.db")
	t.Setenv("DISPATCH_DATABASE__SSL_MODE", "require")
	t.Setenv("DISPATCH_DATABASE__AUTO_MIGRATE", "true")
	t.Setenv("DISPATCH_AUTH__ENABLED", "false")
	t.Setenv("DISPATCH_LOG__LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Server.PurgeCooldown)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "dispatch.db", cfg.Database.Name)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	// 未覆盖的字段保持默认
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "DISPATCH_DATABASE__DRIVER", "mysql"},
		{"unknown env", "DISPATCH_ENV", "staging"},
		{"unknown log level", "DISPATCH_LOG__LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DISPATCH_AUTH__JWT_SECRET", "secret")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_AuthRequiresSecret(t *testing.T) {
	t.Setenv("DISPATCH_AUTH__ENABLED", "true")
	t.Setenv("DISPATCH_AUTH__JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.ssl_mode", envKey("DISPATCH_DATABASE__SSL_MODE"))
	assert.Equal(t, "env", envKey("DISPATCH_ENV"))
	assert.Equal(t, "task.orphan_report_spec", envKey("DISPATCH_TASK__ORPHAN_REPORT_SPEC"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
