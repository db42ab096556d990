package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/pkg/ptr"
)

const testBookingID = "7f1c8a8e-2d1e-4c3b-9a63-0b7f5a1e9c11"

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRow(id string, status domain.BookingStatus, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).AddRow(
		id, "An", "0901234567", "12 Lê Lợi", "giat-say",
		nil, nil,
		"Omo", string(domain.BleachUse), string(domain.BagYes), true, false, "",
		"cod", string(status), "unpaid",
		createdAt, createdAt,
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(sqlmock.AnyArg(), "An", "0901234567", "12 Lê Lợi", "giat-say", nil, nil,
			"Omo", domain.BleachUse, domain.BagYes, true, false, "", domain.PaymentCOD, domain.StatusPending, domain.PaymentUnpaid).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		Name:            "An",
		Phone:           "0901234567",
		Address:         "12 Lê Lợi",
		Service:         "giat-say",
		Detergent:       "Omo",
		Bleach:          domain.BleachUse,
		UseBag:          domain.BagYes,
		UseBagDefaulted: true,
		PaymentMethod:   domain.PaymentCOD,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), &domain.Booking{Name: "An"})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
		WithArgs(testBookingID).
		WillReturnRows(bookingRow(testBookingID, domain.StatusConfirmed, now))

	b, err := repo.GetByID(context.Background(), testBookingID)
	require.NoError(t, err)
	assert.Equal(t, testBookingID, b.ID)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, domain.BagYes, b.UseBag)
	assert.True(t, b.UseBagDefaulted)
	assert.True(t, b.NeedsBag())
	assert.Nil(t, b.PickupDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(testBookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), testBookingID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_MalformedID(t *testing.T) {
	repo, mock := newMock(t)

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	rows := bookingRow(testBookingID, domain.StatusPending, now)
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 20").
		WillReturnRows(rows)

	bookings, err := repo.List(context.Background(), 20, 10)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NegativeOffset(t *testing.T) {
	repo, mock := newMock(t)

	_, err := repo.List(context.Background(), -10, 10)
	assert.ErrorIs(t, err, ErrBuildQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPhone_EscapesPattern(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE phone ILIKE \\$1").
		WithArgs(`%09\_1%`).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.FindByPhone(context.Background(), "09_1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE bookings SET status = \\$1, updated_at = NOW\\(\\), payment_status = \\$2 WHERE id = \\$3 RETURNING").
		WithArgs(domain.StatusCompleted, domain.PaymentPaid, testBookingID).
		WillReturnRows(bookingRow(testBookingID, domain.StatusCompleted, now))

	b, err := repo.UpdateStatus(context.Background(), testBookingID, domain.StatusCompleted, ptr.Ptr(domain.PaymentPaid))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("UPDATE bookings").
		WithArgs(domain.StatusCompleted, testBookingID).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.UpdateStatus(context.Background(), testBookingID, domain.StatusCompleted, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM bookings WHERE id = \\$1").
		WithArgs(testBookingID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), testBookingID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE status IN \\(\\$1,\\$2\\)").
		WithArgs("confirmed", "processing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByStatus(context.Background(), domain.StatusConfirmed, domain.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings$").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
