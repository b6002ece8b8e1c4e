package tglogger

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI интерфейс для Telegram Bot API
// Абстракция над tgbotapi.BotAPI для упрощения тестирования
type BotAPI interface {
	// GetMe возвращает информацию о боте (проверка токена)
	GetMe() (tgbotapi.User, error)

	// Send отправляет сообщение через Telegram Bot API
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для диагностических сообщений
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для сбора метрик отправки
type Metrics interface {
	// ObserveSendAttempt учитывает одну попытку отправки (outcome: ok, error)
	ObserveSendAttempt(outcome string)

	// ObserveDelivery учитывает итог вызова Log
	ObserveDelivery(status string, elapsed time.Duration)
}
