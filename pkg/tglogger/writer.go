package tglogger

import (
	"context"
	"strings"
)

// Writer адаптер io.Writer: каждый Write отправляет одно сообщение.
// Позволяет использовать сессию как вывод для log.Logger, zerolog и т.п.
type Writer struct {
	session  *Session
	template Message
}

// NewWriter создаёт адаптер. Параметры отправки берутся из template, текст - из Write
func NewWriter(session *Session, template Message) *Writer {
	return &Writer{
		session:  session,
		template: template,
	}
}

// Write не возвращает ошибки доставки: они уже записаны в лог сессии,
// а логгер-источник не должен падать из-за недоступности Telegram
func (w *Writer) Write(p []byte) (int, error) {
	text := strings.TrimRight(string(p), "\r\n")
	if strings.TrimSpace(text) == "" {
		return len(p), nil
	}

	msg := w.template
	msg.Text = text

	if _, err := w.session.Log(context.Background(), msg); err != nil {
		// Некорректный шаблон - ошибка программиста, сообщаем вызывающему коду
		return 0, err
	}

	return len(p), nil
}
