package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config is loaded once in main and passed down explicitly.
type Config struct {
	Port string

	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSSLMode            string
	DBStatementTimeoutMS int
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	AutoMigrate          bool

	GormLogLevel     string
	CORSAllowOrigins string
	RateLimitMax     int
	RequestTimeout   time.Duration
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env not found, using system environment")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}
}

// Load reads .env (when present) and then the environment.
func Load() Config {
	LoadEnv()
	return FromEnv()
}

func FromEnv() Config {
	cfg := Config{
		Port: GetEnv("PORT", "3000"),

		DBHost:               GetEnv("DB_HOST", "localhost"),
		DBPort:               GetEnv("DB_PORT", "5432"),
		DBUser:               GetEnv("DB_USER", "postgres"),
		DBPassword:           GetEnv("DB_PASSWORD"),
		DBName:               GetEnv("DB_NAME", "fct"),
		DBSSLMode:            GetEnv("DB_SSLMODE", "disable"),
		DBStatementTimeoutMS: GetEnvInt("DB_STATEMENT_TIMEOUT_MS", 3000),
		DBMaxOpenConns:       GetEnvInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:       GetEnvInt("DB_MAX_IDLE_CONNS", 10),
		AutoMigrate:          GetEnvBool("AUTO_MIGRATE", false),

		GormLogLevel:     GetEnv("GORM_LOG_LEVEL", "warn"),
		CORSAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		RateLimitMax:     GetEnvInt("RATE_LIMIT_MAX", 100),
		RequestTimeout:   GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
	}

	if cfg.DBPassword == "" {
		log.Println("❌ DB_PASSWORD belum diset!")
	}
	return cfg
}

// DSN builds the Postgres URL with a server-side statement_timeout.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=fct_backend&options=-c%%20statement_timeout%%3D%d",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode, c.DBStatementTimeoutMS,
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		log.Printf("⚠️ %s=%q bukan angka, pakai default %d", key, v, defaultValue)
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	}
	return defaultValue
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level string) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      ParseGormLogLevel(level),
	}
}

func ParseGormLogLevel(level string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
