package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config cấu hình chung cho các tool admin courts
type Config struct {
	AppEnv string

	// MongoDB
	MongoURL         string
	DBName           string
	CourtsCollection string
	MongoTimeout     time.Duration

	// Redis, để trống = không invalidate cache
	RedisURL    string
	RedisPrefix string

	// Meilisearch, để trống = không đồng bộ search index
	MeiliURL   string
	MeiliKey   string
	MeiliIndex string

	Port string
}

// Load đọc cấu hình theo thứ tự: .env → config/app.yaml → biến môi trường.
// Thiếu file .env hoặc app.yaml không phải lỗi.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("lỗi đọc config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("mongo_url", "mongodb://localhost:27017")
	v.SetDefault("db_name", "basketball_app")
	v.SetDefault("courts_collection", "courts")
	v.SetDefault("mongo_timeout", 10*time.Second)
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_prefix", "courts:")
	v.SetDefault("meili_url", "")
	v.SetDefault("meili_master_key", "")
	v.SetDefault("meili_courts_index", "courts")
	v.SetDefault("app_port", "8080")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppEnv:           v.GetString("app_env"),
		MongoURL:         v.GetString("mongo_url"),
		DBName:           v.GetString("db_name"),
		CourtsCollection: v.GetString("courts_collection"),
		MongoTimeout:     v.GetDuration("mongo_timeout"),
		RedisURL:         v.GetString("redis_url"),
		RedisPrefix:      v.GetString("redis_prefix"),
		MeiliURL:         v.GetString("meili_url"),
		MeiliKey:         v.GetString("meili_master_key"),
		MeiliIndex:       v.GetString("meili_courts_index"),
		Port:             v.GetString("app_port"),
	}
}

// IsProduction kiểm tra môi trường production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// RedisEnabled có cấu hình Redis hay không
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != ""
}

// MeiliEnabled có cấu hình Meilisearch hay không
func (c *Config) MeiliEnabled() bool {
	return c.MeiliURL != ""
}
