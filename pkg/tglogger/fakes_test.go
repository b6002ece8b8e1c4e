package tglogger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var errRemote = errors.New("Bad Request: chat not found")

// fakeBot подменяет Bot API: sendErrs задаёт результат по номеру попытки,
// после их исчерпания возвращается alwaysErr
type fakeBot struct {
	mu sync.Mutex

	me         tgbotapi.User
	meErr      error
	getMeCalls int

	sendErrs  []error
	alwaysErr error
	sendDelay time.Duration // имитация сетевой задержки одной попытки
	sent      []tgbotapi.Chattable
}

func (b *fakeBot) GetMe() (tgbotapi.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.getMeCalls++
	return b.me, b.meErr
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.sendDelay > 0 {
		time.Sleep(b.sendDelay)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.sent = append(b.sent, c)
	idx := len(b.sent) - 1
	if idx < len(b.sendErrs) {
		return tgbotapi.Message{MessageID: idx + 1}, b.sendErrs[idx]
	}
	return tgbotapi.Message{MessageID: idx + 1}, b.alwaysErr
}

func (b *fakeBot) sendCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sent)
}

func (b *fakeBot) lastMessage() tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sent[len(b.sent)-1].(tgbotapi.MessageConfig)
}

// recordingLogger сохраняет диагностические строки по уровням
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
	errs  []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, fmt.Sprintf(format, v...))
}

type fakeMetrics struct {
	mu         sync.Mutex
	attempts   map[string]int
	deliveries map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{
		attempts:   make(map[string]int),
		deliveries: make(map[string]int),
	}
}

func (m *fakeMetrics) ObserveSendAttempt(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[outcome]++
}

func (m *fakeMetrics) ObserveDelivery(status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deliveries[status]++
}

func newTestSession(bot *fakeBot, log *recordingLogger, opts ...Option) *Session {
	if bot.me.ID == 0 && bot.meErr == nil {
		bot.me = tgbotapi.User{ID: 42, UserName: "log_bot", IsBot: true}
	}
	opts = append([]Option{WithLogger(log), WithRetryInterval(0)}, opts...)
	return NewSession(bot, "100500", opts...)
}
