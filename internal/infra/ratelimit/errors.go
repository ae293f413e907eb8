package ratelimit

import "errors"

// ErrBackend возвращается при недоступности хранилища счетчиков
var ErrBackend = errors.New("ratelimit: backend error")
