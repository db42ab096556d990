package get_recommendations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

type GetRecommendationsUseCase interface {
	Execute(ctx context.Context, bookingID string) ([]*domain.Product, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
