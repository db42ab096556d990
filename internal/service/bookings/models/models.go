package models

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос страницы заказов
type ListBookingsRequest struct {
	Page  int
	Limit int
}

// UpdateStatusRequest запрос на обновление статуса заказа
type UpdateStatusRequest struct {
	Status        string  `json:"status"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// Response модели

// BookingResponse заказ в формате API
type BookingResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	Service          string  `json:"service"`
	PickupDate       *string `json:"pickupDate"`   // ISO 8601
	DeliveryDate     *string `json:"deliveryDate"` // ISO 8601
	Detergent        string  `json:"detergent"`
	Bleach           string  `json:"bleach"`
	UseBag           string  `json:"useBag"`
	DryCleaningItems bool    `json:"dryCleaningItems"`
	Notes            string  `json:"notes"`
	PaymentMethod    string  `json:"paymentMethod"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pagination блок пагинации списка
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// BookingPageResponse страница заказов
type BookingPageResponse struct {
	Bookings   []BookingResponse
	Pagination Pagination
}

// StatsResponse количество заказов по статусам
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:               b.ID,
		Name:             b.Name,
		Phone:            b.Phone,
		Address:          b.Address,
		Service:          b.Service,
		PickupDate:       formatTime(b.PickupDate),
		DeliveryDate:     formatTime(b.DeliveryDate),
		Detergent:        b.Detergent,
		Bleach:           string(b.Bleach),
		UseBag:           string(b.UseBag),
		DryCleaningItems: b.DryCleaningItems,
		Notes:            b.Notes,
		PaymentMethod:    string(b.PaymentMethod),
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO, nil превращается в пустой список
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp = append(resp, *FromDomainBooking(b))
	}
	return resp
}

// NewPagination рассчитывает блок пагинации
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
