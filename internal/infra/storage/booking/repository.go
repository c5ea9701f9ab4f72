package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// bookingColumns колонки бронирования вместе с денормализованными
// атрибутами номера из JOIN на rooms
var bookingColumns = []string{
	"b.id",
	"b.room_id",
	"b.guest_id",
	"b.check_in",
	"b.check_out",
	"b.status",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
	"r.room_number",
	"r.type",
	"r.price",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её - так
// вставка попадает в ту же serializable транзакцию, что и проверка
// пересечений, и гонка двух конкурентных броней невозможна
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"guest_id",
			"check_in",
			"check_out",
			"status",
		).
		Values(
			booking.RoomID,
			booking.GuestID,
			booking.CheckIn,
			booking.CheckOut,
			string(booking.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с атрибутами номера
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByGuestID получает список бронирований гостя, сначала свежие
// Отменённые включаются только при includeCancelled = true
func (r *Repository) GetByGuestID(ctx context.Context, guestID int64, includeCancelled bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.Eq{"b.guest_id": guestID}).
		OrderBy("b.check_in DESC", "b.id DESC")

	if !includeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": string(domain.BookingStatusCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetActiveByGuestID получает текущие и предстоящие бронирования гостя:
// статус confirmed/checked_in и дата выезда не раньше today
func (r *Repository) GetActiveByGuestID(ctx context.Context, guestID int64, today time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		activeStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.Eq{"b.guest_id": guestID}).
		Where(squirrel.Eq{"b.status": activeStatuses}).
		Where(squirrel.GtOrEq{"b.check_out": today}).
		OrderBy("b.check_in ASC", "b.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByGuestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByGuestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetOverlappingForRoom получает активные бронирования номера,
// пересекающие полуоткрытый интервал [checkIn, checkOut)
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE) - это
// часть проверки доступности при создании бронирования. JOIN здесь
// не делается намеренно: для конфликт-проверки атрибуты номера не
// нужны, а FOR UPDATE с JOIN блокировал бы и строки rooms.
func (r *Repository) GetOverlappingForRoom(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"room_id",
		"guest_id",
		"check_in",
		"check_out",
		"status",
		"cancelled_at",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		OrderBy("check_in ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingForRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingForRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.GuestID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.Status,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverlappingForRoom - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingForRoom - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetIntersectingWindow получает неотменённые бронирования, чей интервал
// задевает отчётное окно [start, end] (обе границы включительно)
// Используется отчётами по заполняемости и выручке
func (r *Repository) GetIntersectingWindow(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("rooms r ON r.id = b.room_id").
		Where(squirrel.NotEq{"b.status": string(domain.BookingStatusCancelled)}).
		Where(squirrel.LtOrEq{"b.check_in": end}).
		Where(squirrel.GtOrEq{"b.check_out": start}).
		OrderBy("b.check_in ASC", "b.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование, фиксируя момент отмены
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.BookingStatusCancelled)).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountActive возвращает количество неотменённых бронирований
// Используется дашбордом админки
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.NotEq{"status": string(domain.BookingStatusCancelled)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanBooking сканирует одну строку бронирования с атрибутами номера
// Возвращает sql.ErrNoRows как есть - вызывающий мапит его на ErrBookingNotFound
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.GuestID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
		&booking.RoomNumber,
		&booking.RoomType,
		&booking.RoomPrice,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.GuestID,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.Status,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
			&booking.RoomNumber,
			&booking.RoomType,
			&booking.RoomPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
