package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = pq.ErrorCode("23505")

var roomColumns = []string{
	"id",
	"room_number",
	"type",
	"price",
	"capacity",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает номер в каталоге
// Нарушение уникальности room_number возвращается как ErrRoomNumberTaken
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("room_number", "type", "price", "capacity", "status").
		Values(room.RoomNumber, string(room.Type), room.Price, room.Capacity, string(room.Status)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrRoomNumberTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает номер по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентные
// попытки бронирования одного номера выполнялись последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanRoom(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает номера каталога с опциональной фильтрацией по статусу и типу
func (r *Repository) List(ctx context.Context, filter domain.RoomsFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("room_number ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": string(*filter.Type)})
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

	return r.scanRooms(rows)
}

// ListAvailable получает номера, свободные на полуоткрытый интервал [checkIn, checkOut)
//
// Номер свободен, если на него нет ни одного бронирования в статусе
// confirmed/checked_in, чей интервал пересекает запрошенный:
// пересечение [a,b) и [c,d) есть тогда и только тогда, когда a < d и c < b.
// Кэшированный room.status в запросе не участвует.
//
// Результат упорядочен по цене, затем по room_number - детерминированно
// для пагинации и тестов.
func (r *Repository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, roomType *domain.RoomType) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveBookingStatuses))
	for i, s := range domain.ActiveBookingStatuses {
		activeStatuses[i] = string(s)
	}

	// Подзапрос собирается с плейсхолдерами "?" и встраивается через Expr:
	// внешний билдер перенумерует их в $N при финальном ToSql
	subQuery, subArgs, err := squirrel.Select("b.room_id").
		From("bookings b").
		Where(squirrel.Eq{"b.status": activeStatuses}).
		Where(squirrel.Lt{"b.check_in": checkOut}).
		Where(squirrel.Gt{"b.check_out": checkIn}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build subquery: %v", ErrBuildQuery, err)
	}

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Expr("id NOT IN ("+subQuery+")", subArgs...)).
		OrderBy("price ASC", "room_number ASC")

	if roomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": string(*roomType)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// Update частично обновляет атрибуты номера
func (r *Repository) Update(ctx context.Context, id int64, upd domain.RoomUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rooms").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Type != nil {
		updateBuilder = updateBuilder.Set("type", string(*upd.Type))
	}
	if upd.Price != nil {
		updateBuilder = updateBuilder.Set("price", *upd.Price)
	}
	if upd.Capacity != nil {
		updateBuilder = updateBuilder.Set("capacity", *upd.Capacity)
	}
	if upd.Status != nil {
		updateBuilder = updateBuilder.Set("status", string(*upd.Status))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// UpdateStatus обновляет кэшированный статус номера
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
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
		return ErrRoomNotFound
	}

	return nil
}

// CountAll возвращает общее количество номеров в каталоге
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus возвращает количество номеров с указанным кэшированным статусом
func (r *Repository) CountByStatus(ctx context.Context, status domain.RoomStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"status": string(status)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanRoom сканирует одну строку номера
func (r *Repository) scanRoom(row *sql.Row, op string) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Type,
		&room.Price,
		&room.Capacity,
		&room.Status,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс номеров
func (r *Repository) scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.Type,
			&room.Price,
			&room.Capacity,
			&room.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
