package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заказ не найден
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса (только строгий режим)
	ErrInvalidTransition = errors.New("bookings: status transition is not allowed")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("bookings: storage error")
)
