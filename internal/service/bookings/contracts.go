package bookings

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// BookingRepository интерфейс репозитория заказов
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Booking, error)
	FindByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus *domain.PaymentStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, statuses ...domain.BookingStatus) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
