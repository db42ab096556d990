package get_recommendations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	getRecommendations "github.com/m04kA/SMC-LaundryService/internal/usecase/get_recommendations"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
)

type fakeUseCase struct {
	products []*domain.Product
	err      error
}

func (f *fakeUseCase) Execute(_ context.Context, _ string) ([]*domain.Product, error) {
	return f.products, f.err
}

func serve(uc *fakeUseCase) *httptest.ResponseRecorder {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/recommendations/b1", nil), map[string]string{"bookingId": "b1"})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, r)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeUseCase{products: []*domain.Product{{ID: "p1", Category: domain.CategoryBag}}})
	require.Equal(t, http.StatusOK, rec.Code)

	var out Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Success)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "bag", out.Data[0].Category)
}

func TestHandle_EmptyIsArray(t *testing.T) {
	rec := serve(&fakeUseCase{products: []*domain.Product{}})
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeUseCase{err: getRecommendations.ErrBookingNotFound}).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{err: getRecommendations.ErrInvalidInput}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeUseCase{err: errors.New("db")}).Code)
}
