package housekeeping

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

// taskColumns колонки задачи вместе с денормализованными данными
// номера и сотрудника из JOIN
var taskColumns = []string{
	"t.id",
	"t.room_id",
	"t.employee_id",
	"t.task_date",
	"t.notes",
	"t.status",
	"t.completed_at",
	"t.created_at",
	"r.room_number",
	"e.name",
}

// Repository репозиторий задач уборки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач уборки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает задачу уборки
func (r *Repository) Create(ctx context.Context, task *domain.HousekeepingTask) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("housekeeping_tasks").
		Columns("room_id", "employee_id", "task_date", "notes", "status").
		Values(task.RoomID, task.EmployeeID, task.TaskDate, task.Notes, string(task.Status)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	task.CreatedAt = createdAt.Time

	return task, nil
}

// GetByID получает задачу уборки по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectTasks().
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var task domain.HousekeepingTask
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&task.ID,
		&task.RoomID,
		&task.EmployeeID,
		&task.TaskDate,
		&task.Notes,
		&task.Status,
		&task.CompletedAt,
		&createdAt,
		&task.RoomNumber,
		&task.EmployeeName,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	task.CreatedAt = createdAt.Time

	return &task, nil
}

// List получает задачи уборки с опциональной фильтрацией по статусу и дате
func (r *Repository) List(ctx context.Context, filter domain.HousekeepingFilter) ([]*domain.HousekeepingTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectTasks().
		OrderBy("t.task_date ASC", "t.id ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.task_date": *filter.Date})
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

	tasks := make([]*domain.HousekeepingTask, 0)
	for rows.Next() {
		var task domain.HousekeepingTask
		var createdAt sql.NullTime

		err := rows.Scan(
			&task.ID,
			&task.RoomID,
			&task.EmployeeID,
			&task.TaskDate,
			&task.Notes,
			&task.Status,
			&task.CompletedAt,
			&createdAt,
			&task.RoomNumber,
			&task.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		task.CreatedAt = createdAt.Time

		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}

// UpdateStatus обновляет статус задачи
// Для статуса completed фиксируется момент завершения
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.HousekeepingStatus, completedAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("housekeeping_tasks").
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
		return ErrTaskNotFound
	}

	return nil
}

// CountByEmployee возвращает количество задач, закреплённых за сотрудником
// Используется при проверке возможности удаления сотрудника
func (r *Repository) CountByEmployee(ctx context.Context, employeeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("housekeeping_tasks").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByEmployee - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByEmployee - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// selectTasks базовый SELECT задач с JOIN на rooms и employees
func (r *Repository) selectTasks() squirrel.SelectBuilder {
	return psqlbuilder.Select(taskColumns...).
		From("housekeeping_tasks t").
		Join("rooms r ON r.id = t.room_id").
		Join("employees e ON e.id = t.employee_id")
}
