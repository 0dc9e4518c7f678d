package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	AppPort string
	AppEnv  string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RajaOngkirKey      string
	RajaOngkirURL      string
	ShippingOriginCity int
	ShippingTimeout    time.Duration

	InternalSecretKey string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		AppPort: getenv("APP_PORT", "8080"),
		AppEnv:  getenv("APP_ENV", "development"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 24*time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		RajaOngkirKey:      os.Getenv("RAJAONGKIR_KEY"),
		RajaOngkirURL:      strings.TrimRight(getenv("RAJAONGKIR_URL", "https://api.rajaongkir.com/starter"), "/"),
		ShippingOriginCity: getInt("SHIPPING_ORIGIN_CITY", 0),
		ShippingTimeout:    getDuration("SHIPPING_TIMEOUT", 10*time.Second),

		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// IsProduction reports whether the app runs with production logging and gin release mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func getDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}
