package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/integrations/paymentgateway"
)

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Recommender подбор сопутствующих товаров. Не возвращает ошибок.
type Recommender interface {
	Recommend(ctx context.Context, booking *domain.Booking) []*domain.Product
}

// PaymentGatewayClient интерфейс клиента платежного шлюза
type PaymentGatewayClient interface {
	CreateCheckoutWithGracefulDegradation(ctx context.Context, checkout paymentgateway.CheckoutRequest) (*paymentgateway.Checkout, error)
}

// Metrics метрики создания заказов
type Metrics interface {
	IncBookingsCreated(paymentMethod string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
