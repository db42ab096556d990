package update_booking_status

import "github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status        string  `json:"status"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// Response {success, message, data}
type Response struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    *models.BookingResponse `json:"data"`
}

func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:        r.Status,
		PaymentStatus: r.PaymentStatus,
	}
}
