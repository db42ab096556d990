package list_bookings

import "github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"

// Response {success, data[], pagination}
type Response struct {
	Success    bool                     `json:"success"`
	Data       []models.BookingResponse `json:"data"`
	Pagination models.Pagination        `json:"pagination"`
}
