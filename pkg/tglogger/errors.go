package tglogger

import "errors"

var (
	// ErrInvalidParseMode возвращается при parse mode, отличном от Markdown и HTML.
	// Это ошибка вызывающего кода, сетевой вызов в этом случае не выполняется
	ErrInvalidParseMode = errors.New("tglogger: invalid parse mode, only \"Markdown\" and \"HTML\" are available")

	// ErrSendMessage оборачивает ошибку удалённого сервиса при отправке
	ErrSendMessage = errors.New("tglogger: failed to send message")

	// ErrGetMe оборачивает ошибку проверки токена
	ErrGetMe = errors.New("tglogger: failed to get bot identity")
)
