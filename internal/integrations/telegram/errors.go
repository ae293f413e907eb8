package telegram

import "errors"

var (
	// ErrNotConfigured не заданы токен бота или чат
	ErrNotConfigured = errors.New("telegram: bot token or chat id not configured")

	// ErrSend ошибка отправки сообщения через Bot API
	ErrSend = errors.New("telegram: failed to send message")
)
