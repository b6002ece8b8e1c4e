package send_message

import (
	"context"

	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

// MessageLogger интерфейс отправки сообщений в Telegram
type MessageLogger interface {
	Log(ctx context.Context, msg tglogger.Message) (*tglogger.Report, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
