package get_featured_products

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/products"
	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

const msgUnknownKind = "Danh mục nổi bật không tồn tại"

// Response {success, data[]}
type Response struct {
	Success bool                     `json:"success"`
	Data    []models.ProductResponse `json:"data"`
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

// Handle GET /api/products/featured/{kind}?limit=, kind: bestsellers | new | discounted
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := models.FeaturedKind(mux.Vars(r)["kind"])
	limit := handlers.QueryInt(r, "limit")

	result, err := h.service.Featured(r.Context(), kind, limit)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInvalidInput):
			h.logger.Warn("GET /products/featured/{kind} - Unknown kind: %s", kind)
			handlers.RespondNotFound(w, msgUnknownKind)

		default:
			h.logger.Error("GET /products/featured/{kind} - Failed: kind=%s, error=%v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/featured/{kind} - %d products for kind=%s", len(result), kind)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}
