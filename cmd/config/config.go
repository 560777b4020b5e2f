package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Upload      UploadConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	AlertWebhookURL string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	InternalAPIKey string
}

type UploadConfig struct {
	Dir        string
	MaxSizeMB  int64
	PublicPath string
}

// Load reads configuration from environment variables. A .env file is loaded
// first when present so local development works without exporting everything.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "backoffice"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:            getEnv("RABBITMQ_HOST", "localhost"),
			Port:            getInt("RABBITMQ_PORT", 5672),
			User:            getEnv("RABBITMQ_USER", "guest"),
			Password:        getEnv("RABBITMQ_PASSWORD", "guest"),
			AlertWebhookURL: getEnv("RABBITMQ_ALERT_WEBHOOK_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 24*time.Hour),
			InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Upload: UploadConfig{
			Dir:        getEnv("UPLOAD_DIR", "./uploads"),
			MaxSizeMB:  int64(getInt("UPLOAD_MAX_SIZE_MB", 10)),
			PublicPath: getEnv("UPLOAD_PUBLIC_PATH", "/uploads"),
		},
	}
}

// GetDSN builds the MySQL DSN for sqlx.Connect.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
