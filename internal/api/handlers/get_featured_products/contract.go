package get_featured_products

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

type ProductService interface {
	Featured(ctx context.Context, kind models.FeaturedKind, limit int) ([]models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
