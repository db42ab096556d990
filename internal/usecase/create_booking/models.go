package create_booking

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Request модель запроса на создание заказа. Опции хранятся в сыром виде, пустая строка = не указано.
type Request struct {
	Name    string
	Phone   string
	Address string
	Service string

	PickupDate   *time.Time
	DeliveryDate *time.Time

	Detergent        string
	Bleach           string
	UseBag           string
	DryCleaningItems bool
	Notes            string
	PaymentMethod    string
}

// Response модель ответа с созданным заказом
type Response struct {
	Booking             *domain.Booking
	RecommendedProducts []*domain.Product // не nil, может быть пустым

	// PaymentRequired выставляется для онлайн-оплаты: клиент должен перейти к шагу оплаты
	PaymentRequired bool
	PaymentURL      *string // только если шлюз выдал ссылку
}
