package tglogger

import (
	"fmt"
	"os"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/SMC-TelegramLogger/pkg/logger"
)

// DefaultRetryInterval минимальный интервал между повторными попытками отправки
const DefaultRetryInterval = time.Second

// Session сессия бота, привязанная к одному чату назначения.
// После NewSession состояние не изменяется, поэтому Log можно вызывать конкурентно
type Session struct {
	bot           BotAPI
	destination   string
	logger        Logger
	metrics       Metrics
	retryInterval time.Duration

	identity *Identity // Заполняется один раз в NewSession
}

// Option настройка сессии
type Option func(*Session)

// WithLogger задаёт получателя диагностических сообщений (по умолчанию stderr)
func WithLogger(l Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithMetrics задаёт сборщик метрик
func WithMetrics(m Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithRetryInterval задаёт минимальный интервал между попытками.
// 0 - повторять без паузы
func WithRetryInterval(d time.Duration) Option {
	return func(s *Session) {
		if d < 0 {
			d = 0
		}
		s.retryInterval = d
	}
}

// NewSession создаёт сессию и проверяет токен бота через getMe.
// Ошибка проверки не прерывает создание: сессия возвращается без Identity
func NewSession(bot BotAPI, destination string, opts ...Option) *Session {
	s := &Session{
		bot:           bot,
		destination:   destination,
		retryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.NewWithWriter(os.Stderr, "info")
	}
	if s.metrics == nil {
		s.metrics = nopMetrics{}
	}

	me, err := s.bot.GetMe()
	if err != nil {
		s.logger.Error("Error while creating a bot: %v", fmt.Errorf("%w: %v", ErrGetMe, err))
		return s
	}

	s.identity = &Identity{
		UserName: me.UserName,
		ID:       me.ID,
	}
	s.logger.Info("%s (id%d) successfully created", me.UserName, me.ID)

	return s
}

// Identity возвращает данные бота. false, если проверка токена не удалась
func (s *Session) Identity() (Identity, bool) {
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Verified сообщает, прошла ли проверка токена
func (s *Session) Verified() bool {
	return s.identity != nil
}

// Destination возвращает идентификатор чата назначения
func (s *Session) Destination() string {
	return s.destination
}

// String описание сессии для диагностики. Токен не выводится
func (s *Session) String() string {
	name, id := "<unknown>", "<unknown>"
	if s.identity != nil {
		name = s.identity.UserName
		id = strconv.FormatInt(s.identity.ID, 10)
	}
	return fmt.Sprintf("Session. Bot name: %s. Bot id: %s. Chat id: %s", name, id, s.destination)
}

// newMessageConfig формирует запрос sendMessage.
// Числовой идентификатор - chat_id, остальное (например @channel) - username канала
func (s *Session) newMessageConfig(msg Message) tgbotapi.MessageConfig {
	var cfg tgbotapi.MessageConfig
	if chatID, err := strconv.ParseInt(s.destination, 10, 64); err == nil {
		cfg = tgbotapi.NewMessage(chatID, msg.Text)
	} else {
		cfg = tgbotapi.NewMessageToChannel(s.destination, msg.Text)
	}

	cfg.ParseMode = string(msg.ParseMode)
	cfg.DisableNotification = msg.DisableNotification

	return cfg
}

type nopMetrics struct{}

func (nopMetrics) ObserveSendAttempt(string) {}
func (nopMetrics) ObserveDelivery(string, time.Duration) {}
