package find_bookings_by_phone

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
)

const (
	msgMissingPhone = "Thiếu số điện thoại"
	msgSearchFailed = "Lỗi khi tìm kiếm"
)

// Response {success, data[], count}
type Response struct {
	Success bool                     `json:"success"`
	Data    []models.BookingResponse `json:"data"`
	Count   int                      `json:"count"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/phone/{phone}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	result, err := h.service.FindByPhone(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/phone/{phone} - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgMissingPhone)

		default:
			h.logger.Error("GET /bookings/phone/{phone} - Failed to search: phone=%s, error=%v", phone, err)
			handlers.RespondInternalError(w, msgSearchFailed)
		}
		return
	}

	h.logger.Info("GET /bookings/phone/{phone} - Found %d bookings: phone=%s", len(result), phone)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Data: result, Count: len(result)})
}
