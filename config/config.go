package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment. It is
// loaded once in main and passed into constructors so no package keeps its own
// view of the environment.
type Config struct {
	Env         string
	Port        string
	FrontendURL string

	DB          DBConfig
	JWT         JWTConfig
	SMTP        SMTPConfig
	Paystack    GatewayConfig
	Flutterwave GatewayConfig
	S3          S3Config
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN builds the MySQL connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
	Timeout    time.Duration
}

type GatewayConfig struct {
	SecretKey string
	PublicKey string
	// BaseURL overrides the gateway endpoint, mainly for tests.
	BaseURL string
}

type S3Config struct {
	Bucket string
}

// Load reads .env if present and builds the config from the environment.
func Load() (*Config, error) {
	// A missing .env file is fine in production, the platform injects the vars.
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "5050"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "biscenic"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    24 * time.Hour,
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvInt("SMTP_PORT", 587),
			Username:   os.Getenv("SMTP_USER"),
			Password:   os.Getenv("SMTP_PASS"),
			From:       getEnv("STORE_EMAIL", "notifications@biscenic.com"),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@biscenic.com"),
			Timeout:    15 * time.Second,
		},
		Paystack: GatewayConfig{
			SecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
		},
		Flutterwave: GatewayConfig{
			SecretKey: os.Getenv("FLUTTERWAVE_SECRET_KEY"),
			PublicKey: os.Getenv("FLUTTERWAVE_PUBLIC_KEY"),
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET", "biscenic"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
