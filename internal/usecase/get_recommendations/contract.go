package get_recommendations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

// Recommender подбор сопутствующих товаров
type Recommender interface {
	Recommend(ctx context.Context, booking *domain.Booking) []*domain.Product
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
