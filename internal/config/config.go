// Package config 从环境变量加载运行配置
//
// 变量统一以 DISPATCH_ 开头，双下划线分隔层级：
//
//	DISPATCH_DATABASE__SSL_MODE=disable -> database.ssl_mode
//
// 当前目录存在 .env 时会先被加载。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "DISPATCH_"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 根配置
type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=development test production"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Auth     AuthConfig     `koanf:"auth"`
	Log      LogConfig      `koanf:"log"`
	Task     TaskConfig     `koanf:"task"`
}

// ServerConfig HTTP 服务
type ServerConfig struct {
	Port          string        `koanf:"port" validate:"required"`
	ReadTimeout   time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout  time.Duration `koanf:"write_timeout" validate:"gt=0"`
	PurgeCooldown time.Duration `koanf:"purge_cooldown" validate:"gte=0"` // 同一配送规则两次清空运费矩阵的最小间隔
}

// DatabaseConfig 数据库连接
// sqlite 时 Name 为文件路径（或 :memory:），其余连接字段忽略
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string        `koanf:"host" validate:"required_if=Driver postgres"`
	Port            int           `koanf:"port" validate:"required_if=Driver postgres"`
	User            string        `koanf:"user" validate:"required_if=Driver postgres"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// DSN postgres 连接串
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// AuthConfig 管理接口鉴权
type AuthConfig struct {
	Enabled   bool          `koanf:"enabled"`
	JWTSecret string        `koanf:"jwt_secret" validate:"required_if=Enabled true"`
	Issuer    string        `koanf:"issuer"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
}

// LogConfig 日志
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// TaskConfig 定时任务
type TaskConfig struct {
	OrphanReportEnabled bool   `koanf:"orphan_report_enabled"`
	OrphanReportSpec    string `koanf:"orphan_report_spec" validate:"required_if=OrphanReportEnabled true"`
}

// Default 默认配置，本地开发可直接运行
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:          "8080",
			ReadTimeout:   15 * time.Second,
			WriteTimeout:  30 * time.Second,
			PurgeCooldown: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "dispatch",
			SSLMode:         "disable",
			MaxOpenConns:    100,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
		},
		Auth: AuthConfig{
			Enabled:  true,
			Issuer:   "dispatch-admin",
			TokenTTL: 2 * time.Hour,
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
		Task: TaskConfig{
			OrphanReportEnabled: true,
			OrphanReportSpec:    "0 0 3 * * *", // 每天凌晨 3 点
		},
	}
}

// Load 加载环境变量配置并校验
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// envKey DISPATCH_DATABASE__SSL_MODE -> database.ssl_mode
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
