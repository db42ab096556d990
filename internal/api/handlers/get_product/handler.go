package get_product

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/products"
	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

const msgNotFound = "Không tìm thấy sản phẩm"

// Response {success, data}
type Response struct {
	Success bool                    `json:"success"`
	Data    *models.ProductResponse `json:"data"`
}

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

// Handle GET /api/products/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrProductNotFound):
			h.logger.Warn("GET /products/{id} - Product not found: product_id=%s", productID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /products/{id} - Failed to get product: product_id=%s, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id} - Product retrieved: product_id=%s", productID)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}
