package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("JWT_SECRET", "jwt-secret")
		t.Setenv("JWT_TTL", "2h")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("RAJAONGKIR_KEY", "ro-key")
		t.Setenv("RAJAONGKIR_URL", "https://example.test/starter/")
		t.Setenv("SHIPPING_ORIGIN_CITY", "501")
		t.Setenv("SHIPPING_TIMEOUT", "3s")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "require", cfg.DBSSLMode)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "jwt-secret", cfg.JWTSecret)
		assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "ro-key", cfg.RajaOngkirKey)
		assert.Equal(t, "https://example.test/starter", cfg.RajaOngkirURL)
		assert.Equal(t, 501, cfg.ShippingOriginCity)
		assert.Equal(t, 3*time.Second, cfg.ShippingTimeout)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("Defaults for optional values", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_SSLMODE", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("JWT_TTL", "not-a-duration")
		t.Setenv("REDIS_DB", "abc")
		t.Setenv("SHIPPING_TIMEOUT", "")

		cfg := LoadConfig()

		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 0, cfg.RedisDB)
		assert.Equal(t, 10*time.Second, cfg.ShippingTimeout)
	})
}
