package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"name",
	"phone",
	"address",
	"service",
	"pickup_date",
	"delivery_date",
	"detergent",
	"bleach",
	"use_bag",
	"use_bag_defaulted",
	"dry_cleaning_items",
	"notes",
	"payment_method",
	"status",
	"payment_status",
	"created_at",
	"updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый заказ.
// ID генерируется репозиторием, created_at и updated_at выставляет БД.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"name",
			"phone",
			"address",
			"service",
			"pickup_date",
			"delivery_date",
			"detergent",
			"bleach",
			"use_bag",
			"use_bag_defaulted",
			"dry_cleaning_items",
			"notes",
			"payment_method",
			"status",
			"payment_status",
		).
		Values(
			booking.ID,
			booking.Name,
			booking.Phone,
			booking.Address,
			booking.Service,
			booking.PickupDate,
			booking.DeliveryDate,
			booking.Detergent,
			booking.Bleach,
			booking.UseBag,
			booking.UseBagDefaulted,
			booking.DryCleaningItems,
			booking.Notes,
			booking.PaymentMethod,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает заказ по ID.
// ID не в формате UUID считается несуществующим.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает страницу заказов, новые первыми
func (r *Repository) List(ctx context.Context, offset, limit int) ([]*domain.Booking, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: List - negative offset=%d or limit=%d", ErrBuildQuery, offset, limit)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindByPhone ищет заказы по подстроке номера телефона без учета регистра, новые первыми
func (r *Repository) FindByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.ILike{"phone": "%" + likeEscaper.Replace(phone) + "%"}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус (и опционально статус оплаты) и возвращает обновленный заказ.
// Последняя запись побеждает, проверки конкурентных изменений нет.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.BookingStatus,
	paymentStatus *domain.PaymentStatus,
) (*domain.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrBookingNotFound
	}

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()"))

	if paymentStatus != nil {
		updateBuilder = updateBuilder.Set("payment_status", *paymentStatus)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// Delete удаляет заказ (физическое удаление, административная операция)
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrBookingNotFound
	}

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus считает заказы с любым из указанных статусов.
// Без статусов считает все заказы.
func (r *Repository) CountByStatus(ctx context.Context, statuses ...domain.BookingStatus) (int, error) {
	selectBuilder := psqlbuilder.Select("COUNT(*)").From(tableBookings)

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": values})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в заказ (порядок колонок bookingColumns)
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Phone,
		&booking.Address,
		&booking.Service,
		&booking.PickupDate,
		&booking.DeliveryDate,
		&booking.Detergent,
		&booking.Bleach,
		&booking.UseBag,
		&booking.UseBagDefaulted,
		&booking.DryCleaningItems,
		&booking.Notes,
		&booking.PaymentMethod,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс заказов
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
