package get_recommendations

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заказ не найден
	ErrBookingNotFound = errors.New("get_recommendations: booking not found")

	// ErrInvalidInput возвращается при пустом ID заказа
	ErrInvalidInput = errors.New("get_recommendations: invalid input data")

	// ErrStorage возвращается, когда заказ не удалось прочитать
	ErrStorage = errors.New("get_recommendations: storage error")
)
