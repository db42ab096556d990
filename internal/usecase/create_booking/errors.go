package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей или неизвестных значениях опций
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStorage возвращается, когда заказ не удалось сохранить. Частично созданного заказа нет.
	ErrStorage = errors.New("create_booking: storage error")
)
