package resend

import "errors"

var (
	// ErrNotConfigured не заданы API-ключ или адрес администратора
	ErrNotConfigured = errors.New("resend: api key or admin email not configured")

	// ErrInternal ошибка подготовки запроса
	ErrInternal = errors.New("resend: internal error")

	// ErrInvalidResponse неуспешный ответ API
	ErrInvalidResponse = errors.New("resend: invalid response")
)
