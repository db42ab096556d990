package bookings

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
	"github.com/m04kA/SMC-LaundryService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[string]*domain.Booking
	err      error
	updates  int
	lastList [2]int
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[string]*domain.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) sorted() []*domain.Booking {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeRepo) List(_ context.Context, offset, limit int) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastList = [2]int{offset, limit}
	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeRepo) FindByPhone(_ context.Context, phone string) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Booking
	for _, b := range r.sorted() {
		if strings.Contains(strings.ToLower(b.Phone), strings.ToLower(phone)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, paymentStatus *domain.PaymentStatus) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	r.updates++
	b.Status = status
	if paymentStatus != nil {
		b.PaymentStatus = *paymentStatus
	}
	b.UpdatedAt = b.UpdatedAt.Add(time.Minute)
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) CountByStatus(_ context.Context, statuses ...domain.BookingStatus) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(statuses) == 0 {
		return len(r.bookings), nil
	}
	n := 0
	for _, b := range r.bookings {
		for _, s := range statuses {
			if b.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func booking(id, phone string, status domain.BookingStatus, age time.Duration) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Name:          "Nguyen Van A",
		Phone:         phone,
		Address:       "12 Le Loi",
		Service:       "giat-say",
		Status:        status,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedAt:     baseTime.Add(-age),
		UpdatedAt:     baseTime.Add(-age),
	}
}

func newService(repo *fakeRepo, strict bool) *Service {
	return NewService(repo, Options{StrictStatusTransitions: strict}, logger.NewNop())
}

func TestUpdateStatus_CompletedTwiceSucceeds(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusPending, 0))
	svc := newService(repo, false)

	for i := 0; i < 2; i++ {
		resp, err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	}

	assert.Equal(t, 2, repo.updates)
	assert.Equal(t, domain.StatusCompleted, repo.bookings["b1"].Status)
}

func TestUpdateStatus_PermissiveAllowsRegression(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusCompleted, 0))
	svc := newService(repo, false)

	resp, err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, false)

	_, err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, repo.bookings)
}

func TestUpdateStatus_InvalidInput(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusPending, 0))
	svc := newService(repo, false)

	_, err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed", PaymentStatus: ptr.Ptr("refunded")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.updates)
}

func TestUpdateStatus_WithPaymentStatus(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusPending, 0))
	svc := newService(repo, false)

	resp, err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "confirmed", PaymentStatus: ptr.Ptr("paid")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
}

func TestUpdateStatus_Strict(t *testing.T) {
	repo := newFakeRepo(
		booking("done", "0900000000", domain.StatusCompleted, 0),
		booking("new", "0900000001", domain.StatusPending, 0),
	)
	svc := newService(repo, true)

	_, err := svc.UpdateStatus(context.Background(), "done", &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), "done", &models.UpdateStatusRequest{Status: "completed"})
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "new", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_StorageError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection reset")
	svc := newService(repo, false)

	_, err := svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestList_Pagination(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 25; i++ {
		b := booking(string(rune('a'+i)), "0900000000", domain.StatusPending, time.Duration(i)*time.Hour)
		repo.bookings[b.ID] = b
	}
	svc := newService(repo, false)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Page: 3})
	require.NoError(t, err)

	assert.Equal(t, [2]int{20, 10}, repo.lastList)
	assert.Len(t, resp.Bookings, 5)
	assert.Equal(t, models.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, ItemsPerPage: 10}, resp.Pagination)

	first, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a", first.Bookings[0].ID)
}

func TestList_LimitCapped(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, false)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Page: -1, Limit: 1000})
	require.NoError(t, err)

	assert.Equal(t, [2]int{0, domain.MaxPageSize}, repo.lastList)
	assert.NotNil(t, resp.Bookings)
	assert.Equal(t, 1, resp.Pagination.CurrentPage)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}

func TestList_PageBeyondMaxOffset(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusPending, 0))
	svc := newService(repo, false)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Page: math.MaxInt, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, [2]int{}, repo.lastList)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, math.MaxInt, resp.Pagination.CurrentPage)
	assert.Equal(t, 1, resp.Pagination.TotalItems)
}

func TestFindByPhone(t *testing.T) {
	repo := newFakeRepo(
		booking("b1", "0901234567", domain.StatusPending, 2*time.Hour),
		booking("b2", "0912345678", domain.StatusPending, time.Hour),
		booking("b3", "0987654321", domain.StatusPending, 0),
	)
	svc := newService(repo, false)

	found, err := svc.FindByPhone(context.Background(), "1234")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "b2", found[0].ID)
	assert.Equal(t, "b1", found[1].ID)

	_, err = svc.FindByPhone(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByIDAndDelete(t *testing.T) {
	repo := newFakeRepo(booking("b1", "0900000000", domain.StatusPending, 0))
	svc := newService(repo, false)

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", resp.Name)

	require.NoError(t, svc.Delete(context.Background(), "b1"))

	_, err = svc.GetByID(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "b1"), ErrBookingNotFound)
}

func TestStats(t *testing.T) {
	repo := newFakeRepo(
		booking("b1", "1", domain.StatusPending, 0),
		booking("b2", "2", domain.StatusConfirmed, 0),
		booking("b3", "3", domain.StatusProcessing, 0),
		booking("b4", "4", domain.StatusCompleted, 0),
		booking("b5", "5", domain.StatusCancelled, 0),
		booking("b6", "6", domain.StatusCancelled, 0),
	)
	svc := newService(repo, false)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.StatsResponse{Total: 6, Pending: 1, Confirmed: 2, Completed: 1, Cancelled: 2}, stats)
}
