package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Env struct {
	AppAddr  string `mapstructure:"APP_ADDR"`
	AppEnv   string `mapstructure:"APP_ENV"`
	GinMode  string `mapstructure:"GIN_MODE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Storage backend selection and per-driver settings.
	StoreDriver    string `mapstructure:"STORE_DRIVER"`
	SeedSampleData bool   `mapstructure:"SEED_SAMPLE_DATA"`
	MySQLDSN       string `mapstructure:"MYSQL_DSN"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	RedisPrefix    string `mapstructure:"REDIS_PREFIX"`
	MongoURI       string `mapstructure:"MONGO_URI"`
	MongoDatabase  string `mapstructure:"MONGO_DATABASE"`

	RateLimitPerMin    int    `mapstructure:"RATE_LIMIT_PER_MIN"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadEnv reads config.yaml (if present) and environment variables, falling back to defaults.
func LoadEnv() Env {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("SEED_SAMPLE_DATA", true)
	v.SetDefault("MYSQL_DSN", "root:@tcp(127.0.0.1:3306)/travel_app?parseTime=true&charset=utf8mb4&timeout=5s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "travel")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "travel_app")
	v.SetDefault("RATE_LIMIT_PER_MIN", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	if err := v.ReadInConfig(); err != nil {
		log.Println("config.yaml tidak ditemukan, memakai environment variables saja")
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		log.Fatalf("Gagal memuat konfigurasi: %v", err)
	}

	env.AppAddr = strings.TrimSpace(env.AppAddr)
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	env.StoreDriver = strings.ToLower(strings.TrimSpace(env.StoreDriver))
	if env.StoreDriver == "" {
		env.StoreDriver = DriverMemory
	}
	return env
}

func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS; empty means any origin.
func (e Env) AllowedOrigins() []string {
	out := []string{}
	for _, o := range strings.Split(e.CORSAllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
