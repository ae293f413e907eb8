package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	App           AppConfig           `toml:"app"`
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Session       SessionConfig       `toml:"session"`
	RateLimit     RateLimitConfig     `toml:"ratelimit"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Tracing       TracingConfig       `toml:"tracing"`
	Notifications NotificationsConfig `toml:"notifications"`
	Booking       BookingConfig       `toml:"booking"`
}

type AppConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"` // development | production
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
	// TrustedProxies IP или CIDR прокси, чей X-Forwarded-For принимается
	TrustedProxies []string `toml:"trusted_proxies"`
}

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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	MaxAge     int    `toml:"max_age"` // секунды
	Secure     bool   `toml:"secure"`
}

// TTL время жизни сессии
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.MaxAge) * time.Second
}

type RateLimitConfig struct {
	Enabled      bool `toml:"enabled"`
	GeneralLimit int  `toml:"general_limit"`
	LoginLimit   int  `toml:"login_limit"`
	Window       int  `toml:"window"` // минуты
}

// WindowDuration окно ограничителя
func (r RateLimitConfig) WindowDuration() time.Duration {
	return time.Duration(r.Window) * time.Minute
}

type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"` // console | json, по умолчанию зависит от окружения
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

type NotificationsConfig struct {
	Timeout      int            `toml:"timeout"`       // секунды, общий лимит на доставку
	ResponseWait int            `toml:"response_wait"` // секунды, сколько ответ ждёт флаги доставки
	Telegram     TelegramConfig `toml:"telegram"`
	Email        EmailConfig    `toml:"email"`
}

type TelegramConfig struct {
	BotToken string `toml:"bot_token"`
	ChatID   string `toml:"chat_id"`
}

type EmailConfig struct {
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
	Timeout    int    `toml:"timeout"` // секунды
}

type BookingConfig struct {
	EnforceSchedule bool `toml:"enforce_schedule"`
}

// Load читает TOML-файл, затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Booking.EnforceSchedule = true

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load(".env")

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Database.Password, "DATABASE_PASSWORD")
	setString(&c.Notifications.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Notifications.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	setString(&c.Notifications.Email.APIKey, "RESEND_API_KEY")
	setString(&c.Notifications.Email.AdminEmail, "ADMIN_EMAIL")
	setString(&c.App.Environment, "APP_ENV")

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c.Redis.Addr = addr
		c.Redis.Enabled = true
	}

	if port := os.Getenv("HTTP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.HTTPPort = p
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}
	if proxies := os.Getenv("TRUSTED_PROXIES"); proxies != "" {
		c.Server.TrustedProxies = splitList(proxies)
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) applyDefaults() {
	setDefault(&c.App.Name, "SMC-ConsultationService")
	setDefault(&c.App.Environment, "development")

	setDefault(&c.Server.HTTPPort, 3001)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	setDefault(&c.Server.MaxBodyBytes, 1<<20)
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:5173"}
	}

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	setDefault(&c.Redis.Addr, "localhost:6379")

	setDefault(&c.Session.CookieName, "consultation_sid")
	setDefault(&c.Session.MaxAge, 24*60*60)

	setDefault(&c.RateLimit.GeneralLimit, 100)
	setDefault(&c.RateLimit.LoginLimit, 5)
	setDefault(&c.RateLimit.Window, 15)

	setDefault(&c.Logs.Level, "info")
	if c.Logs.Format == "" {
		c.Logs.Format = "console"
		if c.IsProduction() {
			c.Logs.Format = "json"
		}
	}

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "consultation_service")

	setDefault(&c.Tracing.OTLPEndpoint, "localhost:4317")
	setDefault(&c.Tracing.SampleRatio, 1.0)

	setDefault(&c.Notifications.Timeout, 10)
	setDefault(&c.Notifications.ResponseWait, 3)
	setDefault(&c.Notifications.Email.BaseURL, "https://api.resend.com")
	setDefault(&c.Notifications.Email.From, "Консультации <onboarding@resend.dev>")
	setDefault(&c.Notifications.Email.Timeout, 10)
}

// Validate проверяет, что конфигурация пригодна для запуска
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.RateLimit.Window <= 0:
		return fmt.Errorf("%w: ratelimit.window must be positive", ErrInvalidConfig)
	case c.RateLimit.GeneralLimit <= 0 || c.RateLimit.LoginLimit <= 0:
		return fmt.Errorf("%w: ratelimit limits must be positive", ErrInvalidConfig)
	case c.Session.MaxAge <= 0:
		return fmt.Errorf("%w: session.max_age must be positive", ErrInvalidConfig)
	case c.IsProduction() && !c.Session.Secure:
		return fmt.Errorf("%w: session.secure must be enabled in production", ErrInvalidConfig)
	}
	return nil
}

// IsProduction запущен ли сервис в production окружении
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func setDefault[T comparable](dst *T, def T) {
	var zero T
	if *dst == zero {
		*dst = def
	}
}
