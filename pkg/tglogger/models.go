package tglogger

import (
	"fmt"
	"time"
)

// ParseMode режим разметки текста сообщения на стороне Telegram
type ParseMode string

const (
	ParseModePlain    ParseMode = ""         // Без форматирования
	ParseModeMarkdown ParseMode = "Markdown" // Markdown (legacy)
	ParseModeHTML     ParseMode = "HTML"     // HTML
)

// Valid проверяет, что режим разметки поддерживается
func (p ParseMode) Valid() bool {
	switch p {
	case ParseModePlain, ParseModeMarkdown, ParseModeHTML:
		return true
	default:
		return false
	}
}

// Message сообщение для отправки в чат
type Message struct {
	Text                string        // Текст сообщения
	Timeout             time.Duration // Время, в течение которого выполняются повторные попытки. 0 - одна попытка
	DisableNotification bool          // Отправить без звукового уведомления
	ParseMode           ParseMode     // Режим разметки
}

// Validate проверяет корректность параметров сообщения
func (m Message) Validate() error {
	if !m.ParseMode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidParseMode, string(m.ParseMode))
	}
	return nil
}

// Identity данные бота, полученные при проверке токена
type Identity struct {
	UserName string
	ID       int64
}

// Status итог отправки сообщения
type Status string

const (
	StatusDelivered Status = "delivered" // Сообщение доставлено
	StatusFailed    Status = "failed"    // Единственная попытка завершилась ошибкой
	StatusTimeout   Status = "timeout"   // Время на повторные попытки истекло
	StatusCanceled  Status = "canceled"  // Контекст отменён между попытками
)

// Report результат вызова Log.
// Ошибки удалённого сервиса не возвращаются вызывающему коду, а фиксируются здесь
type Report struct {
	Status   Status
	Attempts int
	Elapsed  time.Duration
	Err      error // Последняя ошибка удалённого сервиса (nil при успехе)
}

// Delivered проверяет, что сообщение доставлено
func (r *Report) Delivered() bool {
	return r != nil && r.Status == StatusDelivered
}
