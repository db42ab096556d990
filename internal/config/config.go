package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath путь к файлу конфигурации, если не задан CONFIG_PATH
const DefaultPath = "config.toml"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Payment  PaymentConfig  `toml:"payment"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig логирование. Пустой File - только stdout.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PaymentConfig платежный шлюз для онлайн-оплаты
type PaymentConfig struct {
	Enabled   bool   `toml:"enabled"`
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"` // секунды
	ReturnURL string `toml:"return_url"`
}

// BookingConfig правила работы с заказами
type BookingConfig struct {
	StrictStatusTransitions bool `toml:"strict_status_transitions"`
	DefaultPageSize         int  `toml:"default_page_size"`
	MaxPageSize             int  `toml:"max_page_size"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Path возвращает путь к конфигурации с учетом CONFIG_PATH
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultPath
}

// Load читает TOML файл, затем .env и переменные окружения (имеют приоритет над файлом).
// Отсутствующий файл не ошибка: используются значения по умолчанию и окружение.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env опционален
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("PAYMENT_URL", &c.Payment.URL)

	if err := setInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	if err := setInt("HTTP_PORT", &c.Server.HTTPPort); err != nil {
		return err
	}

	return nil
}

func (c *Config) applyDefaults() {
	setDefault := func(dst *int, v int) {
		if *dst == 0 {
			*dst = v
		}
	}
	setDefaultString := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	setDefault(&c.Server.HTTPPort, 5000)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefaultString(&c.Database.Host, "localhost")
	setDefault(&c.Database.Port, 5432)
	setDefaultString(&c.Database.User, "postgres")
	setDefaultString(&c.Database.DBName, "laundry_booking")
	setDefaultString(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefaultString(&c.Logs.Level, "info")

	setDefaultString(&c.Metrics.Path, "/metrics")
	setDefaultString(&c.Metrics.ServiceName, "laundry_service")

	setDefault(&c.Payment.Timeout, 5)

	setDefault(&c.Booking.DefaultPageSize, 10)
	setDefault(&c.Booking.MaxPageSize, 100)
}

// Validate проверяет значения, с которыми сервис не сможет работать
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	case c.Database.Port <= 0 || c.Database.Port > 65535:
		return fmt.Errorf("config: invalid database.port %d", c.Database.Port)
	case c.Booking.DefaultPageSize <= 0:
		return fmt.Errorf("config: booking.default_page_size must be positive")
	case c.Booking.MaxPageSize <= 0:
		return fmt.Errorf("config: booking.max_page_size must be positive")
	case c.Booking.DefaultPageSize > c.Booking.MaxPageSize:
		return fmt.Errorf("config: booking.default_page_size %d exceeds max_page_size %d",
			c.Booking.DefaultPageSize, c.Booking.MaxPageSize)
	case c.Payment.Enabled && c.Payment.URL == "":
		return fmt.Errorf("config: payment.url is required when payment is enabled")
	}
	return nil
}
