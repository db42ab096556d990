package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
)

const msgLoadFailed = "Lỗi khi tải đơn hàng"

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

// Handle GET /api/bookings?page=&limit=
// Нечисловые page и limit заменяются значениями по умолчанию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{
		Page:  handlers.QueryInt(r, "page"),
		Limit: handlers.QueryInt(r, "limit"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: page=%d, limit=%d, error=%v", req.Page, req.Limit, err)
		handlers.RespondInternalError(w, msgLoadFailed)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: page=%d, count=%d, total=%d",
		result.Pagination.CurrentPage, len(result.Bookings), result.Pagination.TotalItems)
	handlers.RespondJSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       result.Bookings,
		Pagination: result.Pagination,
	})
}
