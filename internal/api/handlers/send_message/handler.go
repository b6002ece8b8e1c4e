package send_message

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers"
	"github.com/m04kA/SMC-TelegramLogger/internal/api/handlers/send_message/models"
	"github.com/m04kA/SMC-TelegramLogger/pkg/tglogger"
)

const (
	msgInvalidRequestBody = "неверный формат тела запроса"
	msgEmptyText          = "text не может быть пустым"
	msgInvalidParseMode   = "parse_mode может быть только \"Markdown\" или \"HTML\""
	msgInvalidTimeout     = "timeout_seconds не может быть отрицательным"
)

type Handler struct {
	service    MessageLogger
	defaults   tglogger.Message
	maxTimeout time.Duration
	logger     Logger
}

// NewHandler создаёт обработчик. maxTimeout ограничивает timeout_seconds из запроса
// (должен быть меньше WriteTimeout сервера), 0 - без ограничения
func NewHandler(service MessageLogger, defaults tglogger.Message, maxTimeout time.Duration, logger Logger) *Handler {
	return &Handler{
		service:    service,
		defaults:   defaults,
		maxTimeout: maxTimeout,
		logger:     logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Парсинг request body
	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		handlers.RespondBadRequest(w, msgEmptyText)
		return
	}
	if req.TimeoutSeconds != nil && *req.TimeoutSeconds < 0 {
		handlers.RespondBadRequest(w, msgInvalidTimeout)
		return
	}

	msg := req.ToMessage(h.defaults)
	if h.maxTimeout > 0 && msg.Timeout > h.maxTimeout {
		msg.Timeout = h.maxTimeout
	}

	report, err := h.service.Log(r.Context(), msg)
	if err != nil {
		if errors.Is(err, tglogger.ErrInvalidParseMode) {
			handlers.RespondBadRequest(w, msgInvalidParseMode)
			return
		}

		h.logger.Error("Failed to send message: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !report.Delivered() {
		h.logger.Warn("Message not delivered (status: %s, attempts: %d)", report.Status, report.Attempts)
		handlers.RespondJSON(w, http.StatusBadGateway, models.FromReport(report))
		return
	}

	h.logger.Info("Message delivered (attempts: %d, elapsed: %s)", report.Attempts, report.Elapsed)
	handlers.RespondJSON(w, http.StatusOK, models.FromReport(report))
}
