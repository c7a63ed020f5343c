package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolateEnvFile(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_AppEnvValidation(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "")
	t.Setenv("CACHE_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageSQLite {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
	if cfg.DBPath != "data/cricket_league.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.JWTSecretKey == "" {
		t.Fatalf("expected dev jwt secret fallback")
	}
	if cfg.JWTAccessTokenTTL != 15*time.Minute {
		t.Fatalf("unexpected jwt ttl: %s", cfg.JWTAccessTokenTTL)
	}
	if cfg.CacheEnabled {
		t.Fatalf("expected cache disabled by default")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected http addr: %q", cfg.HTTPAddr)
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)

	t.Run("memory accepted", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Memory")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageMemory {
			t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
		}
	})

	t.Run("unknown rejected", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})
}

func TestLoad_JWTSecretRequiredInProd(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET_KEY is missing in prod")
	}

	t.Setenv("JWT_SECRET_KEY", "prod-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.JWTSecretKey != "prod-secret" {
		t.Fatalf("unexpected jwt secret")
	}
}

func TestLoad_JWTTTLValidation(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)

	for _, raw := range []string{"bad", "0s", "-1m"} {
		t.Setenv("JWT_ACCESS_TOKEN_TTL", raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for JWT_ACCESS_TOKEN_TTL=%q", raw)
		}
	}
}

func TestLoad_ReadsEnvFileWithoutOverriding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("JWT_ISSUER=from-file\nAPP_HTTP_ADDR=:9999\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("APP_ENV_FILE", path)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_HTTP_ADDR", ":7070")
	t.Setenv("JWT_ISSUER", "")
	if err := os.Unsetenv("JWT_ISSUER"); err != nil {
		t.Fatalf("unset JWT_ISSUER: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.JWTIssuer != "from-file" {
		t.Fatalf("expected issuer from env file, got %q", cfg.JWTIssuer)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("expected process env to win, got %q", cfg.HTTPAddr)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}

	t.Setenv("BETTERSTACK_ENDPOINT", "s1765114.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("JWT_SECRET_KEY", "secret")

	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "cricket-league-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "cricket-league-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected CORS origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_CacheTTLValidation(t *testing.T) {
	isolateEnvFile(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "bad")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid CACHE_TTL")
	}
}
