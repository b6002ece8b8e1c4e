package tglogger

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	attemptOK    = "ok"
	attemptError = "error"
)

// Log отправляет сообщение в чат назначения.
//
// Без Timeout выполняется ровно одна попытка. С Timeout попытки повторяются,
// пока сообщение не будет доставлено или пока с первой попытки не пройдёт Timeout.
// Между попытками выдерживается интервал сессии, а при ответе 429 - retry_after.
//
// Ошибки удалённого сервиса не возвращаются: они пишутся в лог и попадают в Report.
// Единственная возвращаемая ошибка - ErrInvalidParseMode, до сетевого вызова
func (s *Session) Log(ctx context.Context, msg Message) (*Report, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	cfg := s.newMessageConfig(msg)
	report := &Report{}
	start := time.Now()

	defer func() {
		report.Elapsed = time.Since(start)
		s.metrics.ObserveDelivery(string(report.Status), report.Elapsed)
	}()

	if msg.Timeout <= 0 {
		report.Attempts = 1
		if err := s.send(cfg); err != nil {
			report.Status = StatusFailed
			report.Err = err
			s.logger.Error("Error while sending a message: %v", err)
			return report, nil
		}

		report.Status = StatusDelivered
		return report, nil
	}

	limiter := s.newLimiter()
	for {
		report.Attempts++
		err := s.send(cfg)
		if err == nil {
			report.Status = StatusDelivered
			report.Err = nil
			return report, nil
		}
		report.Err = err

		elapsed := time.Since(start)
		if elapsed >= msg.Timeout {
			report.Status = StatusTimeout
			s.logger.Error("Timeout exceeded after %d attempts. Error while sending a message: %v", report.Attempts, err)
			return report, nil
		}

		// Ожидание не выходит за пределы оставшегося времени:
		// после него выполняется последняя попытка
		delay := nextDelay(limiter, err)
		if remaining := msg.Timeout - elapsed; delay > remaining {
			delay = remaining
		}

		if err := wait(ctx, delay); err != nil {
			report.Status = StatusCanceled
			s.logger.Error("Sending canceled after %d attempts: %v (last error: %v)", report.Attempts, err, report.Err)
			return report, nil
		}
	}
}

// send выполняет одну попытку отправки
func (s *Session) send(cfg tgbotapi.MessageConfig) error {
	if _, err := s.bot.Send(cfg); err != nil {
		s.metrics.ObserveSendAttempt(attemptError)
		return fmt.Errorf("%w: %w", ErrSendMessage, err)
	}

	s.metrics.ObserveSendAttempt(attemptOK)
	return nil
}

// newLimiter создаёт лимитер попыток одного вызова Log.
// Токен первой попытки расходуется сразу
func (s *Session) newLimiter() *rate.Limiter {
	limit := rate.Inf
	if s.retryInterval > 0 {
		limit = rate.Every(s.retryInterval)
	}

	limiter := rate.NewLimiter(limit, 1)
	limiter.Allow()

	return limiter
}

// nextDelay возвращает паузу перед следующей попыткой
func nextDelay(limiter *rate.Limiter, err error) time.Duration {
	delay := limiter.Reserve().Delay()

	if after := retryAfter(err); after > delay {
		delay = after
	}

	return delay
}

// retryAfter извлекает retry_after из ответа Telegram (HTTP 429)
func retryAfter(err error) time.Duration {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) && tgErr.RetryAfter > 0 {
		return time.Duration(tgErr.RetryAfter) * time.Second
	}
	return 0
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
