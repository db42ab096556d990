package create_booking

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	bookingModels "github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
	productModels "github.com/m04kA/SMC-LaundryService/internal/service/products/models"
	createBooking "github.com/m04kA/SMC-LaundryService/internal/usecase/create_booking"
)

var errInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC 3339")

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	Service          string  `json:"service"`
	PickupDate       *string `json:"pickupDate,omitempty"`   // "2025-10-15" или RFC 3339
	DeliveryDate     *string `json:"deliveryDate,omitempty"` // "2025-10-17" или RFC 3339
	Detergent        string  `json:"detergent,omitempty"`
	Bleach           string  `json:"bleach,omitempty"`
	UseBag           string  `json:"useBag,omitempty"`
	DryCleaningItems bool    `json:"dryCleaningItems,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	PaymentMethod    string  `json:"paymentMethod,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success             bool                            `json:"success"`
	Message             string                          `json:"message"`
	Booking             *bookingModels.BookingResponse  `json:"booking"`
	Data                *bookingModels.BookingResponse  `json:"data"`
	RecommendedProducts []productModels.ProductResponse `json:"recommendedProducts"`
	PaymentRequired     bool                            `json:"paymentRequired,omitempty"`
	PaymentURL          *string                         `json:"paymentUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	pickup, err := parseDate(r.PickupDate)
	if err != nil {
		return nil, err
	}

	delivery, err := parseDate(r.DeliveryDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:             r.Name,
		Phone:            r.Phone,
		Address:          r.Address,
		Service:          r.Service,
		PickupDate:       pickup,
		DeliveryDate:     delivery,
		Detergent:        r.Detergent,
		Bleach:           r.Bleach,
		UseBag:           r.UseBag,
		DryCleaningItems: r.DryCleaningItems,
		Notes:            r.Notes,
		PaymentMethod:    r.PaymentMethod,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, message string) *CreateBookingResponse {
	booking := bookingModels.FromDomainBooking(resp.Booking)

	return &CreateBookingResponse{
		Success:             true,
		Message:             message,
		Booking:             booking,
		Data:                booking,
		RecommendedProducts: productModels.FromDomainProductList(resp.RecommendedProducts),
		PaymentRequired:     resp.PaymentRequired,
		PaymentURL:          resp.PaymentURL,
	}
}

// parseDate пустое значение или null означает "не указано"
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}

	value := strings.TrimSpace(*s)
	for _, layout := range []string{domain.DateFormat, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}

	return nil, errInvalidDate
}
