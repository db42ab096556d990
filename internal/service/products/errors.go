package products

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден или неактивен
	ErrProductNotFound = errors.New("products: product not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("products: invalid input data")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("products: storage error")
)
