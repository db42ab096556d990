package get_service_recommendations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/products"
	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
)

const msgInvalidServiceType = "Thiếu loại dịch vụ"

// Response {success, data[], serviceType}
type Response struct {
	Success     bool                     `json:"success"`
	Data        []models.ProductResponse `json:"data"`
	ServiceType string                   `json:"serviceType"`
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

// Handle GET /api/products/recommendations/{serviceType}?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceType := mux.Vars(r)["serviceType"]
	limit := handlers.QueryInt(r, "limit")

	result, err := h.service.ByServiceType(r.Context(), serviceType, limit)
	if err != nil {
		switch {
		case errors.Is(err, products.ErrInvalidInput):
			h.logger.Warn("GET /products/recommendations/{serviceType} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceType)

		default:
			h.logger.Error("GET /products/recommendations/{serviceType} - Failed: service=%s, error=%v", serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/recommendations/{serviceType} - %d products for service=%s", len(result), serviceType)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: result, ServiceType: serviceType})
}
