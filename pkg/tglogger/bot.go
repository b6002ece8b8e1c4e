package tglogger

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	// DefaultRequestTimeout таймаут одного HTTP запроса к Bot API
	DefaultRequestTimeout = 30 * time.Second

	defaultUpdatesBuffer = 100
)

type botOptions struct {
	endpoint   string
	httpClient tgbotapi.HTTPClient
	timeout    time.Duration
}

// BotOption настройка клиента Bot API
type BotOption func(*botOptions)

// WithAPIEndpoint задаёт шаблон адреса Bot API (формат tgbotapi.APIEndpoint)
func WithAPIEndpoint(endpoint string) BotOption {
	return func(o *botOptions) {
		o.endpoint = endpoint
	}
}

// WithHTTPClient задаёт HTTP клиент для запросов к Bot API
func WithHTTPClient(client tgbotapi.HTTPClient) BotOption {
	return func(o *botOptions) {
		o.httpClient = client
	}
}

// WithRequestTimeout задаёт таймаут одного запроса (игнорируется вместе с WithHTTPClient)
func WithRequestTimeout(timeout time.Duration) BotOption {
	return func(o *botOptions) {
		o.timeout = timeout
	}
}

// NewBotAPI создаёт клиент Bot API без обращения к getMe.
// tgbotapi.NewBotAPI завершается ошибкой при недействительном токене,
// здесь проверка токена выполняется в NewSession
func NewBotAPI(token string, opts ...BotOption) *tgbotapi.BotAPI {
	o := botOptions{
		endpoint: tgbotapi.APIEndpoint,
		timeout:  DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	bot := &tgbotapi.BotAPI{
		Token:  token,
		Client: o.httpClient,
		Buffer: defaultUpdatesBuffer,
	}
	bot.SetAPIEndpoint(o.endpoint)

	return bot
}
