package paymentgateway

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidRequest возвращается, когда шлюз отклонил запрос (4xx)
	ErrInvalidRequest = errors.New("paymentgateway client: invalid request")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Заказ остается созданным, ссылка на оплату не выдается.
	ErrServiceDegraded = errors.New("paymentgateway unavailable: graceful degradation applied")
)
