package update_booking_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "Dữ liệu gửi lên không hợp lệ"
	msgMissingStatus      = "Thiếu trạng thái"
	msgInvalidStatus      = "Trạng thái không hợp lệ"
	msgInvalidTransition  = "Không thể chuyển sang trạng thái này"
	msgNotFound           = "Không tìm thấy đơn hàng"
	msgUpdateFailed       = "Lỗi khi cập nhật trạng thái"
	msgUpdated            = "Đã cập nhật trạng thái"
)

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

// Handle PATCH /api/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Status) == "" {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing status: booking_id=%s", bookingID)
		handlers.RespondBadRequest(w, msgMissingStatus)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondErrorWithDetail(w, http.StatusBadRequest, msgInvalidStatus, err.Error())

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Transition rejected: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%s, status=%s", bookingID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Message: msgUpdated, Data: booking})
}
