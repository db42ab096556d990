package products

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ProductRepository чтение каталога товаров
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindActiveByRecommendFor(ctx context.Context, category *domain.ProductCategory, serviceTag string, limit int) ([]*domain.Product, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
