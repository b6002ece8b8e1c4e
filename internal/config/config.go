package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

// Config представляет полную конфигурацию приложения
type Config struct {
	Logs     LogsConfig     `toml:"logs"`
	Server   ServerConfig   `toml:"server"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Delivery DeliveryConfig `toml:"delivery"`
}

// LogsConfig содержит настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Пусто - только stderr
}

// ServerConfig содержит настройки HTTP сервера (команда serve)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// MetricsConfig содержит настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig содержит настройки Telegram Bot
type TelegramConfig struct {
	BotToken       string `toml:"bot_token"`
	ChatID         string `toml:"chat_id"`         // Числовой ID чата или @username канала
	APIEndpoint    string `toml:"api_endpoint"`    // Опционально, для собственного Bot API сервера
	RequestTimeout int    `toml:"request_timeout"` // в секундах
}

// DeliveryConfig содержит параметры отправки по умолчанию
type DeliveryConfig struct {
	Timeout             int    `toml:"timeout"`           // в секундах, 0 - одна попытка
	RetryIntervalMs     int    `toml:"retry_interval_ms"` // минимальный интервал между попытками
	DisableNotification bool   `toml:"disable_notification"`
	ParseMode           string `toml:"parse_mode"`
}

// DefaultMessage возвращает шаблон сообщения с параметрами по умолчанию
func (d DeliveryConfig) DefaultMessage() tglogger.Message {
	return tglogger.Message{
		Timeout:             time.Duration(d.Timeout) * time.Second,
		DisableNotification: d.DisableNotification,
		ParseMode:           tglogger.ParseMode(d.ParseMode),
	}
}

// RetryInterval возвращает минимальный интервал между попытками
func (d DeliveryConfig) RetryInterval() time.Duration {
	return time.Duration(d.RetryIntervalMs) * time.Millisecond
}

// Load загружает конфигурацию из TOML файла с поддержкой переменных окружения
func Load(path string) (*Config, error) {
	var cfg Config

	// Читаем TOML файл
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	// Переопределяем значения из переменных окружения (если они установлены)
	overrideFromEnv(&cfg)

	// Валидация конфигурации
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// overrideFromEnv переопределяет значения из переменных окружения
func overrideFromEnv(cfg *Config) {
	// Logs
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}

	// Server
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}

	// Metrics
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}
	if v := os.Getenv("METRICS_SERVICE_NAME"); v != "" {
		cfg.Metrics.ServiceName = v
	}

	// Telegram
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TELEGRAM_API_ENDPOINT"); v != "" {
		cfg.Telegram.APIEndpoint = v
	}

	// Delivery
	if v := os.Getenv("DELIVERY_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Delivery.Timeout = timeout
		}
	}
	if v := os.Getenv("DELIVERY_RETRY_INTERVAL_MS"); v != "" {
		if interval, err := strconv.Atoi(v); err == nil {
			cfg.Delivery.RetryIntervalMs = interval
		}
	}
	if v := os.Getenv("DELIVERY_PARSE_MODE"); v != "" {
		cfg.Delivery.ParseMode = v
	}
}

// validate проверяет корректность конфигурации
func validate(cfg *Config) error {
	// Telegram validation
	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("telegram bot token is required")
	}
	if cfg.Telegram.ChatID == "" {
		return fmt.Errorf("telegram chat_id is required")
	}
	if cfg.Telegram.APIEndpoint == "" {
		cfg.Telegram.APIEndpoint = "https://api.telegram.org/bot%s/%s"
	}
	if cfg.Telegram.RequestTimeout == 0 {
		cfg.Telegram.RequestTimeout = 30
	}

	// Delivery validation
	if cfg.Delivery.Timeout < 0 {
		return fmt.Errorf("delivery timeout must not be negative")
	}
	if cfg.Delivery.RetryIntervalMs < 0 {
		return fmt.Errorf("delivery retry interval must not be negative")
	}
	if cfg.Delivery.RetryIntervalMs == 0 {
		cfg.Delivery.RetryIntervalMs = 1000
	}
	if !tglogger.ParseMode(cfg.Delivery.ParseMode).Valid() {
		return fmt.Errorf("delivery parse_mode must be \"Markdown\", \"HTML\" or empty, got %q", cfg.Delivery.ParseMode)
	}

	// Logs defaults
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	// Server validation and defaults
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.HTTPPort < 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("HTTP port must be between 1 and 65535")
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		// Запрос на отправку может ждать до delivery.timeout
		cfg.Server.WriteTimeout = cfg.Delivery.Timeout + 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "telegramlogger"
	}

	return nil
}
