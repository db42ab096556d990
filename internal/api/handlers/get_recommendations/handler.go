package get_recommendations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/products/models"
	getRecommendations "github.com/m04kA/SMC-LaundryService/internal/usecase/get_recommendations"
)

const (
	msgInvalidBookingID = "Thiếu mã đơn hàng"
	msgNotFound         = "Không tìm thấy đơn hàng"
)

// Response {success, data[]}
type Response struct {
	Success bool                     `json:"success"`
	Data    []models.ProductResponse `json:"data"`
}

type Handler struct {
	useCase GetRecommendationsUseCase
	logger  Logger
}

func NewHandler(useCase GetRecommendationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/recommendations/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	products, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, getRecommendations.ErrInvalidInput):
			h.logger.Warn("GET /recommendations/{bookingId} - Invalid booking id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, getRecommendations.ErrBookingNotFound):
			h.logger.Warn("GET /recommendations/{bookingId} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /recommendations/{bookingId} - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /recommendations/{bookingId} - %d products for booking_id=%s", len(products), bookingID)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: models.FromDomainProductList(products)})
}
