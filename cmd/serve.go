package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers/bot_info"
	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers/health"
	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers/send_message"
	"github.com/m04kA/SMC-TelegramLogger/internal/api/middleware"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API для отправки сообщений",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer a.close()

			return a.serve(cmd.Context())
		},
	}
}

// serve запускает HTTP сервер и блокируется до отмены ctx
func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	log := a.log

	log.Info("Starting SMC-TelegramLogger HTTP API...")

	writeTimeout := time.Duration(cfg.Server.WriteTimeout) * time.Second

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.router(writeTimeout),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// router настраивает маршруты HTTP API
func (a *app) router(writeTimeout time.Duration) http.Handler {
	cfg := a.cfg
	log := a.log

	// Запрос на отправку не должен ждать дольше WriteTimeout сервера
	maxDeliveryTimeout := writeTimeout * 4 / 5

	// Инициализируем handlers
	healthHandler := health.NewHandler(a.session)
	botInfoHandler := bot_info.NewHandler(a.session)
	sendMessageHandler := send_message.NewHandler(a.session, cfg.Delivery.DefaultMessage(), maxDeliveryTimeout, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		log.Info("HTTP metrics middleware enabled")
	}

	// Публичные endpoints
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	if a.metrics != nil {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API v1 endpoints
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/bot", botInfoHandler.Handle).Methods(http.MethodGet)
	api.HandleFunc("/messages", sendMessageHandler.Handle).Methods(http.MethodPost)

	return r
}
