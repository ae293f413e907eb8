package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена или снята
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrSlotTaken возвращается при возврате отмененной записи на занятый слот
	ErrSlotTaken = errors.New("bookings: slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
