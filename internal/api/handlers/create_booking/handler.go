package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-LaundryService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Dữ liệu gửi lên không hợp lệ"
	msgInvalidDate        = "Ngày không hợp lệ, định dạng YYYY-MM-DD"
	msgMissingFields      = "Vui lòng điền đầy đủ họ tên, số điện thoại, địa chỉ và dịch vụ"
	msgCreateFailed       = "Lỗi khi tạo đơn hàng"
	msgCreated            = "Đặt lịch thành công"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/create-booking, POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: phone=%s, error=%v", req.Phone, err)
			handlers.RespondErrorWithDetail(w, http.StatusBadRequest, msgMissingFields, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", req.Phone, err)
			handlers.RespondInternalError(w, msgCreateFailed)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, recommended=%d, payment_required=%t",
		result.Booking.ID, len(result.RecommendedProducts), result.PaymentRequired)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgCreated))
}
