package employee

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var employeeColumns = []string{
	"id",
	"name",
	"position",
	"department",
	"contact",
	"created_at",
}

// Repository репозиторий персонала отеля
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория персонала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет сотрудника
func (r *Repository) Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("employees").
		Columns("name", "position", "department", "contact").
		Values(employee.Name, employee.Position, employee.Department, employee.Contact).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	employee.CreatedAt = createdAt.Time

	return employee, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var employee domain.Employee
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Position,
		&employee.Department,
		&employee.Contact,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %v", ErrScanRow, err)
	}

	employee.CreatedAt = createdAt.Time

	return &employee, nil
}

// List получает сотрудников, опционально по отделу
func (r *Repository) List(ctx context.Context, department *string) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		OrderBy("name ASC", "id ASC")

	if department != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"department": *department})
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

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		var createdAt sql.NullTime

		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Position,
			&employee.Department,
			&employee.Contact,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		employee.CreatedAt = createdAt.Time

		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return employees, nil
}

// Update частично обновляет данные сотрудника
func (r *Repository) Update(ctx context.Context, id int64, upd domain.EmployeeUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("employees").
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		updateBuilder = updateBuilder.Set("name", *upd.Name)
	}
	if upd.Position != nil {
		updateBuilder = updateBuilder.Set("position", *upd.Position)
	}
	if upd.Department != nil {
		updateBuilder = updateBuilder.Set("department", *upd.Department)
	}
	if upd.Contact != nil {
		updateBuilder = updateBuilder.Set("contact", *upd.Contact)
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
		return ErrEmployeeNotFound
	}

	return nil
}

// Delete удаляет сотрудника
// Ссылочную целостность с задачами уборки проверяет сервисный слой
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// CountAll возвращает общее количество сотрудников
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("employees").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
