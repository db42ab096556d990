package catalogseed

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ProductRepository интерфейс для заполнения каталога
type ProductRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
