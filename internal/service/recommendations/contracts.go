package recommendations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// CatalogRepository чтение каталога товаров
type CatalogRepository interface {
	FindActiveByCategory(ctx context.Context, category domain.ProductCategory, sortKey domain.ProductSortKey, limit int) ([]*domain.Product, error)
}

// Metrics метрики рекомендаций
type Metrics interface {
	IncRecommendationsDegraded()
	ObserveRecommendedProducts(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
