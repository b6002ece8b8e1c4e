package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TelegramLogger/internal/config"
	"github.com/m04kA/SMC-TelegramLogger/pkg/logger"
	"github.com/m04kA/SMC-TelegramLogger/pkg/metrics"
	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "tglogger",
		Short:         "Отправка логов и уведомлений в Telegram чат",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config.toml")

	root.AddCommand(sendCmd())
	root.AddCommand(whoamiCmd())
	root.AddCommand(serveCmd())

	// Ожидаем сигнал завершения через контекст команды
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// app зависимости, общие для всех команд
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
	session *tglogger.Session
}

// bootstrap загружает конфигурацию, создаёт логгер и сессию бота.
// Метрики создаются только для serve, где есть endpoint для их отдачи
func bootstrap(withMetrics bool) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Debug("Configuration loaded from %s", configPath)

	a := &app{cfg: cfg, log: log}

	opts := []tglogger.Option{
		tglogger.WithLogger(log),
		tglogger.WithRetryInterval(cfg.Delivery.RetryInterval()),
	}

	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		opts = append(opts, tglogger.WithMetrics(a.metrics))
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем Telegram Bot API (проверка токена - в NewSession)
	bot := tglogger.NewBotAPI(cfg.Telegram.BotToken,
		tglogger.WithAPIEndpoint(cfg.Telegram.APIEndpoint),
		tglogger.WithRequestTimeout(time.Duration(cfg.Telegram.RequestTimeout)*time.Second),
	)
	a.session = tglogger.NewSession(bot, cfg.Telegram.ChatID, opts...)

	return a, nil
}

func (a *app) close() {
	if err := a.log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", err)
	}
}
