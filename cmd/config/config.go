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
	Minio       MinioConfig
	Auth        AuthConfig
	Cart        CartConfig
	Checkout    CheckoutConfig
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
	MigrationsPath  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type MinioConfig struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	UseSSL         bool
	PublicBaseURL  string
	MaxUploadBytes int64
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	// AdminPasswordHash is a bcrypt hash; AdminPassword is only used when no hash is set.
	AdminPasswordHash string
	AdminPassword     string
}

type CartConfig struct {
	SessionTTL time.Duration
}

type CheckoutConfig struct {
	Timezone string
}

// Load reads the configuration from the environment, after loading .env when present
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
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
			Name:            getEnv("DB_NAME", "warung_order"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath:  getEnv("DB_MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: MinioConfig{
			Endpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:      getEnv("MINIO_SECRET_KEY", ""),
			Bucket:         getEnv("MINIO_BUCKET", "product-images"),
			UseSSL:         getBool("MINIO_USE_SSL", false),
			PublicBaseURL:  getEnv("MINIO_PUBLIC_BASE_URL", ""),
			MaxUploadBytes: int64(getInt("MINIO_MAX_UPLOAD_BYTES", 5<<20)),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:     getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:    getDuration("SESSION_EXP_TIME", 24*time.Hour),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		},
		Cart: CartConfig{
			SessionTTL: getDuration("CART_SESSION_TTL", 72*time.Hour),
		},
		Checkout: CheckoutConfig{
			Timezone: getEnv("CHECKOUT_TIMEZONE", "Asia/Jakarta"),
		},
	}
}

// GetDSN returns the MySQL DSN used by sqlx and the migrator
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// Location resolves the checkout timezone, falling back to WIB (UTC+7).
func (c CheckoutConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.FixedZone("WIB", 7*60*60)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
