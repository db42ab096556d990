package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/service/bookings/models"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
)

type fakeService struct {
	got *models.ListBookingsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingPageResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingPageResponse{
		Bookings:   []models.BookingResponse{{ID: "b1"}},
		Pagination: models.NewPagination(2, 5, 11),
	}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings?page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 5, svc.got.Limit)

	var out Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	assert.Len(t, out.Data, 1)
	assert.Equal(t, models.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 11, ItemsPerPage: 5}, out.Pagination)
}

func TestHandle_LenientParams(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings?page=abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.got.Page)
	assert.Zero(t, svc.got.Limit)
}

func TestHandle_LeadingZerosAreDecimal(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings?page=010&limit=08", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, svc.got.Page)
	assert.Equal(t, 8, svc.got.Limit)
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: errors.New("db")}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoadFailed)
}
