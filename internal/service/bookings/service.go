package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
)

// Options настройки сервиса заказов
type Options struct {
	// StrictStatusTransitions включает проверку переходов по таблице domain.
	// По умолчанию любой статус может смениться любым другим.
	StrictStatusTransitions bool
	DefaultPageSize         int
	MaxPageSize             int
}

// Service сервис для работы с заказами
type Service struct {
	bookingRepo BookingRepository
	opts        Options
	logger      Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(bookingRepo BookingRepository, opts Options, logger Logger) *Service {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = domain.DefaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = domain.MaxPageSize
	}

	return &Service{
		bookingRepo: bookingRepo,
		opts:        opts,
		logger:      logger,
	}
}

// GetByID получает заказ по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает страницу заказов, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingPageResponse, error) {
	page, limit := s.normalizePage(req.Page, req.Limit)
	s.logger.Info("List: fetching bookings page=%d, limit=%d", page, limit)

	var bookings []*domain.Booking
	if offset, ok := pageOffset(page, limit); ok {
		var err error
		bookings, err = s.bookingRepo.List(ctx, offset, limit)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return nil, fmt.Errorf("%w: List - repository error: %v", ErrStorage, err)
		}
	} else {
		s.logger.Warn("List: page=%d is beyond the last possible page, returning empty page", page)
	}

	total, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("List: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: List - count bookings: %v", ErrStorage, err)
	}

	s.logger.Info("List: successfully fetched %d of %d bookings", len(bookings), total)
	return &models.BookingPageResponse{
		Bookings:   models.FromDomainBookingList(bookings),
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// FindByPhone ищет заказы по подстроке номера телефона без учета регистра
func (s *Service) FindByPhone(ctx context.Context, phone string) ([]models.BookingResponse, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		s.logger.Warn("FindByPhone: empty phone")
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	s.logger.Info("FindByPhone: searching bookings by phone=%s", phone)

	bookings, err := s.bookingRepo.FindByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("FindByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: FindByPhone - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("FindByPhone: found %d bookings for phone=%s", len(bookings), phone)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус заказа и, опционально, статус оплаты.
// Повторная установка того же статуса не считается ошибкой.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	newStatus, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	var paymentStatus *domain.PaymentStatus
	if req.PaymentStatus != nil {
		ps, err := domain.ParsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			s.logger.Warn("UpdateStatus: invalid paymentStatus=%q for booking id=%s", *req.PaymentStatus, id)
			return nil, fmt.Errorf("%w: invalid payment status %q", ErrInvalidInput, *req.PaymentStatus)
		}
		paymentStatus = &ps
	}

	if s.opts.StrictStatusTransitions {
		current, err := s.getBooking(ctx, "UpdateStatus", id)
		if err != nil {
			return nil, err
		}
		if !current.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%s", current.Status, newStatus, id)
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, newStatus, paymentStatus)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, newStatus)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет заказ (административная операция)
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStorage, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}

// Stats считает заказы по статусам. В confirmed входят и заказы в обработке.
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: counting bookings by status")

	stats := &models.StatsResponse{}
	counts := []struct {
		dst      *int
		statuses []domain.BookingStatus
	}{
		{&stats.Total, nil},
		{&stats.Pending, []domain.BookingStatus{domain.StatusPending}},
		{&stats.Confirmed, []domain.BookingStatus{domain.StatusConfirmed, domain.StatusProcessing}},
		{&stats.Completed, []domain.BookingStatus{domain.StatusCompleted}},
		{&stats.Cancelled, []domain.BookingStatus{domain.StatusCancelled}},
	}

	for _, c := range counts {
		n, err := s.bookingRepo.CountByStatus(ctx, c.statuses...)
		if err != nil {
			s.logger.Error("Stats: repository error for statuses=%v: %v", c.statuses, err)
			return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrStorage, err)
		}
		*c.dst = n
	}

	s.logger.Info("Stats: total=%d, pending=%d, confirmed=%d, completed=%d, cancelled=%d",
		stats.Total, stats.Pending, stats.Confirmed, stats.Completed, stats.Cancelled)
	return stats, nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrStorage, op, err)
	}
	return booking, nil
}

// pageOffset смещение для страницы, false если оно превышает domain.MaxListOffset
func pageOffset(page, limit int) (int, bool) {
	if page-1 > domain.MaxListOffset/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// normalizePage применяет значения по умолчанию и ограничивает размер страницы
func (s *Service) normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 {
		limit = s.opts.DefaultPageSize
	}
	if limit > s.opts.MaxPageSize {
		limit = s.opts.MaxPageSize
	}
	return page, limit
}
