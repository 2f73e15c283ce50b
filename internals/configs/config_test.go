package configs

import (
	"strings"
	"testing"
	"time"

	gormLogger "gorm.io/gorm/logger"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_HOST", "DB_STATEMENT_TIMEOUT_MS", "REQUEST_TIMEOUT", "AUTO_MIGRATE"} {
		t.Setenv(k, "")
	}
	t.Setenv("DB_PASSWORD", "secret")

	cfg := FromEnv()
	// empty but set values are taken as-is for strings
	if cfg.Port != "" {
		t.Fatalf("Port = %q, want empty (set to empty)", cfg.Port)
	}
	if cfg.DBStatementTimeoutMS != 3000 {
		t.Fatalf("DBStatementTimeoutMS = %d, want default", cfg.DBStatementTimeoutMS)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.AutoMigrate {
		t.Fatal("AutoMigrate should default to false")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("RATE_LIMIT_MAX", "no-number")

	cfg := FromEnv()
	if cfg.Port != "8080" || cfg.DBMaxOpenConns != 7 || cfg.RequestTimeout != 2*time.Second || !cfg.AutoMigrate {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.RateLimitMax != 100 {
		t.Fatalf("invalid int must fall back to default, got %d", cfg.RateLimitMax)
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{DBUser: "fct", DBPassword: "pw", DBHost: "db", DBPort: "5432", DBName: "catalog", DBSSLMode: "disable", DBStatementTimeoutMS: 1500}
	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://fct:pw@db:5432/catalog?sslmode=disable") {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	if !strings.Contains(dsn, "statement_timeout%3D1500") {
		t.Fatalf("dsn must carry statement_timeout: %q", dsn)
	}
}

func TestParseGormLogLevel(t *testing.T) {
	cases := map[string]gormLogger.LogLevel{
		"silent": gormLogger.Silent,
		"ERROR":  gormLogger.Error,
		"info":   gormLogger.Info,
		"":       gormLogger.Warn,
		"bogus":  gormLogger.Warn,
	}
	for in, want := range cases {
		if got := ParseGormLogLevel(in); got != want {
			t.Fatalf("ParseGormLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGormLoggerLogModeDoesNotMutate(t *testing.T) {
	base := NewGormLogger("warn").(*GormLogger)
	quiet := base.LogMode(gormLogger.Silent).(*GormLogger)
	if base.LogLevel != gormLogger.Warn || quiet.LogLevel != gormLogger.Silent {
		t.Fatalf("base=%v quiet=%v", base.LogLevel, quiet.LogLevel)
	}
}
