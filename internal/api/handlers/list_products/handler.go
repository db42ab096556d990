package list_products

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/products"
)

const (
	msgInvalidQuery = "Tham số lọc không hợp lệ"
	msgLoadFailed   = "Lỗi server khi lấy sản phẩm"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/products?category=&search=&minPrice=&maxPrice=&sort=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /products - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInvalidInput):
			h.logger.Warn("GET /products - Invalid filter: %v", err)
			handlers.RespondErrorWithDetail(w, http.StatusBadRequest, msgInvalidQuery, err.Error())

		default:
			h.logger.Error("GET /products - Failed to list products: %v", err)
			handlers.RespondInternalError(w, msgLoadFailed)
		}
		return
	}

	h.logger.Info("GET /products - Products retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: result, Count: len(result)})
}
