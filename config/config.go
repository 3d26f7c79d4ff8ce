package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	App        AppConfig
	Dataset    DatasetConfig
	DB         DBConfig
	Redis      RedisConfig
	Preference PreferenceConfig
}

type AppConfig struct {
	Port          string
	Env           string
	LogLevel      string
	RatingEnabled bool
	CORSOrigins   []string
}

type DatasetConfig struct {
	Path   string
	Source string
	Import bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host has been configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type PreferenceConfig struct {
	TTL time.Duration
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

func LoadConfigFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATING_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DATASET_PATH", "./therapists.csv")
	v.SetDefault("DATASET_SOURCE", DatasetSourceCSV)
	v.SetDefault("DATASET_IMPORT", false)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	preferenceTTL, err := time.ParseDuration(v.GetString("PREFERENCE_TTL"))
	if err != nil {
		preferenceTTL = 180 * 24 * time.Hour
	}

	source := v.GetString("DATASET_SOURCE")
	if source != DatasetSourcePostgres {
		source = DatasetSourceCSV
	}

	config := &Config{
		App: AppConfig{
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			RatingEnabled: v.GetBool("RATING_ENABLED"),
			CORSOrigins:   splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Dataset: DatasetConfig{
			Path:   v.GetString("DATASET_PATH"),
			Source: source,
			Import: v.GetBool("DATASET_IMPORT"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Preference: PreferenceConfig{
			TTL: preferenceTTL,
		},
	}

	return config, nil
}

// splitList reads a comma separated setting, skipping blank entries.
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
