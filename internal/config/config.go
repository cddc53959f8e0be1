package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Reports ReportsConfig
	Uploads UploadsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReportsConfig holds report workbook output settings.
type ReportsConfig struct {
	Dir string `mapstructure:"dir"`
}

// UploadsConfig holds ledger upload limits.
type UploadsConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the FINLOOM_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FINLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "finloom")
	v.SetDefault("db.password", "finloom_secret")
	v.SetDefault("db.name", "finloom_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Reports defaults
	v.SetDefault("reports.dir", "reports")

	// Uploads defaults
	v.SetDefault("uploads.max_file_size_mb", 20)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FINLOOM_SERVER_PORT",
		"server.read_timeout":      "FINLOOM_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FINLOOM_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FINLOOM_SERVER_ENVIRONMENT",
		"db.host":                  "FINLOOM_DB_HOST",
		"db.port":                  "FINLOOM_DB_PORT",
		"db.user":                  "FINLOOM_DB_USER",
		"db.password":              "FINLOOM_DB_PASSWORD",
		"db.name":                  "FINLOOM_DB_NAME",
		"db.sslmode":               "FINLOOM_DB_SSLMODE",
		"db.max_open":              "FINLOOM_DB_MAX_OPEN",
		"db.max_idle":              "FINLOOM_DB_MAX_IDLE",
		"log.level":                "FINLOOM_LOG_LEVEL",
		"log.format":               "FINLOOM_LOG_FORMAT",
		"cors.allowed_origins":     "FINLOOM_CORS_ALLOWED_ORIGINS",
		"reports.dir":              "FINLOOM_REPORTS_DIR",
		"uploads.max_file_size_mb": "FINLOOM_UPLOADS_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FINLOOM_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FINLOOM_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Reports = ReportsConfig{
		Dir: v.GetString("reports.dir"),
	}
	cfg.Uploads = UploadsConfig{
		MaxFileSizeMB: v.GetInt64("uploads.max_file_size_mb"),
	}

	return cfg, nil
}
