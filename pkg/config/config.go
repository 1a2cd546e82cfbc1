// Файл: config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type PostgresConfig struct {
	DSN         string `yaml:"dsn"`
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"ssl_mode"`
	MaxConns    int32  `yaml:"max_conns"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type EventsConfig struct {
	// Driver: none | redis | kafka
	Driver       string   `yaml:"driver"`
	Channel      string   `yaml:"channel"`
	KafkaBrokers []string `yaml:"kafka_brokers"`
	KafkaTopic   string   `yaml:"kafka_topic"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type PaginationConfig struct {
	DefaultSize uint64 `yaml:"default_size"`
	// 0 - без ограничения
	MaxSize uint64 `yaml:"max_size"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Redis      RedisConfig      `yaml:"redis"`
	Events     EventsConfig     `yaml:"events"`
	Logging    LoggingConfig    `yaml:"logging"`
	Pagination PaginationConfig `yaml:"pagination"`
	Uploads    UploadsConfig    `yaml:"uploads"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "construction_rental",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Events: EventsConfig{
			Driver:     "none",
			Channel:    "rental:events",
			KafkaTopic: "rental-events",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "./logs/app.log",
			MaxSizeMB:  32,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Pagination: PaginationConfig{
			DefaultSize: 10,
		},
		Uploads: UploadsConfig{
			Dir:       "./uploads",
			MaxSizeMB: 10,
		},
	}
}

// New собирает конфиг: значения по умолчанию -> YAML-файл (если есть) -> переменные окружения.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	cfg := defaults()

	path := getEnv("CONFIG_FILE", "config.yaml")
	if err := loadYAML(path, cfg); err != nil {
		log.Printf("Предупреждение: не удалось прочитать %s: %v", path, err)
	}

	applyEnv(cfg)
	return cfg
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("NODE_DOCKER_PORT", getEnv("SERVER_PORT", cfg.Server.Port))
	cfg.Server.ShutdownTimeout = getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout)

	cfg.Postgres.DSN = getEnv("DATABASE_URL", cfg.Postgres.DSN)
	cfg.Postgres.Host = getEnv("DB_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = getEnvInt("DB_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = getEnv("DB_USER", cfg.Postgres.User)
	cfg.Postgres.Password = getEnv("DB_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = getEnv("DB_NAME", cfg.Postgres.Name)
	cfg.Postgres.SSLMode = getEnv("DB_SSLMODE", cfg.Postgres.SSLMode)
	cfg.Postgres.MaxConns = int32(getEnvInt("DB_MAX_CONNS", int(cfg.Postgres.MaxConns)))
	cfg.Postgres.AutoMigrate = getEnvBool("DB_AUTO_MIGRATE", cfg.Postgres.AutoMigrate)

	cfg.Redis.Address = getEnv("REDIS_ADDRESS", cfg.Redis.Address)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.Events.Driver = strings.ToLower(getEnv("EVENTS_DRIVER", cfg.Events.Driver))
	cfg.Events.Channel = getEnv("EVENTS_CHANNEL", cfg.Events.Channel)
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.Events.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.Events.KafkaTopic = getEnv("KAFKA_TOPIC", cfg.Events.KafkaTopic)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = getEnv("LOG_FILE", cfg.Logging.File)

	cfg.Pagination.DefaultSize = uint64(getEnvInt("PAGE_SIZE_DEFAULT", int(cfg.Pagination.DefaultSize)))
	cfg.Pagination.MaxSize = uint64(getEnvInt("PAGE_SIZE_MAX", int(cfg.Pagination.MaxSize)))

	cfg.Uploads.Dir = getEnv("UPLOAD_DIR", cfg.Uploads.Dir)
	cfg.Uploads.MaxSizeMB = int64(getEnvInt("UPLOAD_MAX_SIZE_MB", int(cfg.Uploads.MaxSizeMB)))
}

// ConnString возвращает DATABASE_URL, либо собирает DSN из DB_* переменных.
func (p PostgresConfig) ConnString() string {
	if p.DSN != "" {
		return p.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Name,
		RawQuery: "sslmode=" + p.SSLMode,
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
