package roomservice

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

// requestColumns колонки запроса вместе с данными бронирования и номера
var requestColumns = []string{
	"s.id",
	"s.booking_id",
	"s.service_type",
	"s.notes",
	"s.status",
	"s.requested_at",
	"s.completed_at",
	"b.guest_id",
	"r.room_number",
}

// Repository репозиторий запросов рум-сервиса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рум-сервиса
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запрос рум-сервиса
func (r *Repository) Create(ctx context.Context, request *domain.RoomServiceRequest) (*domain.RoomServiceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_service_requests").
		Columns("booking_id", "service_type", "notes", "status").
		Values(request.BookingID, request.ServiceType, request.Notes, string(request.Status)).
		Suffix("RETURNING id, requested_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var requestedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&request.ID, &requestedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.RequestedAt = requestedAt.Time

	return request, nil
}

// GetByID получает запрос рум-сервиса по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomServiceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRequests().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var request domain.RoomServiceRequest
	var requestedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.BookingID,
		&request.ServiceType,
		&request.Notes,
		&request.Status,
		&requestedAt,
		&request.CompletedAt,
		&request.GuestID,
		&request.RoomNumber,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	request.RequestedAt = requestedAt.Time

	return &request, nil
}

// GetByGuestID получает запросы рум-сервиса гостя, сначала свежие
func (r *Repository) GetByGuestID(ctx context.Context, guestID int64) ([]*domain.RoomServiceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectRequests().
		Where(squirrel.Eq{"b.guest_id": guestID}).
		OrderBy("s.requested_at DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGuestID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRequests(rows)
}

// List получает запросы рум-сервиса, опционально по статусу
func (r *Repository) List(ctx context.Context, status *domain.RoomServiceStatus) ([]*domain.RoomServiceRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectRequests().
		OrderBy("s.requested_at DESC", "s.id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": string(*status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRequests(rows)
}

// CountCompletedByBooking возвращает количество выполненных запросов
// по бронированию - используется при расчёте счёта
func (r *Repository) CountCompletedByBooking(ctx context.Context, bookingID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("room_service_requests").
		Where(squirrel.Eq{"booking_id": bookingID}).
		Where(squirrel.Eq{"status": string(domain.RoomServiceStatusCompleted)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCompletedByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCompletedByBooking - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус запроса
// Для статуса completed фиксируется момент завершения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomServiceStatus, completedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("room_service_requests").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id})

	if completedAt != nil {
		updateBuilder = updateBuilder.Set("completed_at", *completedAt)
	}

	query, args, err := updateBuilder.ToSql()
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
		return ErrRequestNotFound
	}

	return nil
}

// selectRequests базовый SELECT запросов с JOIN на bookings и rooms
func (r *Repository) selectRequests() squirrel.SelectBuilder {
	return psqlbuilder.Select(requestColumns...).
		From("room_service_requests s").
		Join("bookings b ON b.id = s.booking_id").
		Join("rooms r ON r.id = b.room_id")
}

// scanRequests сканирует результаты запроса в слайс запросов рум-сервиса
func (r *Repository) scanRequests(rows *sql.Rows) ([]*domain.RoomServiceRequest, error) {
	requests := make([]*domain.RoomServiceRequest, 0)

	for rows.Next() {
		var request domain.RoomServiceRequest
		var requestedAt sql.NullTime

		err := rows.Scan(
			&request.ID,
			&request.BookingID,
			&request.ServiceType,
			&request.Notes,
			&request.Status,
			&requestedAt,
			&request.CompletedAt,
			&request.GuestID,
			&request.RoomNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRequests - scan row: %v", ErrScanRow, err)
		}

		request.RequestedAt = requestedAt.Time

		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRequests - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}
