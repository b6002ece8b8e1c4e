package models

import (
	"time"

	"github.com/m04kA/SMC-TelegramLogger/pkg/ptr"
	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

// SendMessageRequest HTTP запрос на отправку сообщения.
// Незаданные параметры берутся из настроек [delivery]
type SendMessageRequest struct {
	Text                string   `json:"text"`
	TimeoutSeconds      *float64 `json:"timeout_seconds,omitempty"`
	DisableNotification *bool    `json:"disable_notification,omitempty"`
	ParseMode           *string  `json:"parse_mode,omitempty"`
}

// ToMessage преобразует HTTP модель в сообщение с учётом параметров по умолчанию
func (r *SendMessageRequest) ToMessage(defaults tglogger.Message) tglogger.Message {
	timeout := defaults.Timeout
	if r.TimeoutSeconds != nil {
		timeout = time.Duration(*r.TimeoutSeconds * float64(time.Second))
	}

	return tglogger.Message{
		Text:                r.Text,
		Timeout:             timeout,
		DisableNotification: ptr.ValueOr(r.DisableNotification, defaults.DisableNotification),
		ParseMode:           tglogger.ParseMode(ptr.ValueOr(r.ParseMode, string(defaults.ParseMode))),
	}
}

// ReportResponse HTTP ответ с результатом отправки
type ReportResponse struct {
	Status    tglogger.Status `json:"status"`
	Attempts  int             `json:"attempts"`
	ElapsedMs int64           `json:"elapsed_ms"`
	Error     *string         `json:"error,omitempty"`
}

// FromReport преобразует результат отправки в HTTP ответ
func FromReport(r *tglogger.Report) *ReportResponse {
	resp := &ReportResponse{
		Status:    r.Status,
		Attempts:  r.Attempts,
		ElapsedMs: r.Elapsed.Milliseconds(),
	}
	if r.Err != nil {
		resp.Error = ptr.Of(r.Err.Error())
	}

	return resp
}
