package get_service_recommendations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

type ProductService interface {
	ByServiceType(ctx context.Context, serviceType string, limit int) ([]models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
