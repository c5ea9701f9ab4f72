package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var itemColumns = []string{
	"id",
	"name",
	"category",
	"quantity",
	"created_at",
	"updated_at",
}

// orderColumns колонки заказа вместе с денормализованными данными позиции
var orderColumns = []string{
	"o.id",
	"o.item_id",
	"o.quantity",
	"o.status",
	"o.created_at",
	"o.updated_at",
	"i.name",
	"i.category",
}

// Repository репозиторий склада: позиции и заказы на пополнение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория склада
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateItem добавляет позицию склада
func (r *Repository) CreateItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inventory_items").
		Columns("name", "category", "quantity").
		Values(item.Name, item.Category, item.Quantity).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateItem - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateItem - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// GetItemByID получает позицию склада по ID
// Внутри транзакции строка блокируется (FOR UPDATE): приёмка заказа
// меняет остаток, конкурентные приёмки не должны терять инкременты
func (r *Repository) GetItemByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From("inventory_items").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItemByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanItem(executor.QueryRowContext(ctx, query, args...), "GetItemByID")
}

// GetItemByName получает позицию склада по уникальному названию
func (r *Repository) GetItemByName(ctx context.Context, name string) (*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From("inventory_items").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItemByName - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanItem(executor.QueryRowContext(ctx, query, args...), "GetItemByName")
}

// ListItems получает позиции склада с опциональной фильтрацией
func (r *Repository) ListItems(ctx context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From("inventory_items").
		OrderBy("category ASC", "name ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.LowStock {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"quantity": domain.LowStockThreshold})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.InventoryItem, 0)
	for rows.Next() {
		var item domain.InventoryItem
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.Quantity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListItems - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// SetItemQuantity устанавливает остаток позиции
func (r *Repository) SetItemQuantity(ctx context.Context, id int64, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("inventory_items").
		Set("quantity", quantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetItemQuantity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetItemQuantity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetItemQuantity - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// CountLowStock возвращает количество позиций с остатком ниже порога
func (r *Repository) CountLowStock(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("inventory_items").
		Where(squirrel.Lt{"quantity": domain.LowStockThreshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountLowStock - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountLowStock - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CreateOrder создает заказ на пополнение
func (r *Repository) CreateOrder(ctx context.Context, order *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("purchase_orders").
		Columns("item_id", "quantity", "status").
		Values(order.ItemID, order.Quantity, string(order.Status)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateOrder - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetOrderByID получает заказ на пополнение по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetOrderByID(ctx context.Context, id int64) (*domain.PurchaseOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("purchase_orders o").
		Join("inventory_items i ON i.id = o.item_id").
		Where(squirrel.Eq{"o.id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF o")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrderByID - build select query: %v", ErrBuildQuery, err)
	}

	var order domain.PurchaseOrder
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&order.ID,
		&order.ItemID,
		&order.Quantity,
		&order.Status,
		&createdAt,
		&updatedAt,
		&order.ItemName,
		&order.ItemCategory,
	)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrderByID - scan order: %v", ErrScanRow, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

// ListOrders получает заказы на пополнение, опционально по статусу
func (r *Repository) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]*domain.PurchaseOrder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("purchase_orders o").
		Join("inventory_items i ON i.id = o.item_id").
		OrderBy("o.created_at DESC", "o.id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"o.status": string(*status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOrders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.PurchaseOrder, 0)
	for rows.Next() {
		var order domain.PurchaseOrder
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&order.ID,
			&order.ItemID,
			&order.Quantity,
			&order.Status,
			&createdAt,
			&updatedAt,
			&order.ItemName,
			&order.ItemCategory,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListOrders - scan row: %v", ErrScanRow, err)
		}

		order.CreatedAt = createdAt.Time
		order.UpdatedAt = updatedAt.Time

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// UpdateOrderStatus обновляет статус заказа на пополнение
func (r *Repository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("purchase_orders").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateOrderStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateOrderStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateOrderStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// CountOrdersByStatus возвращает количество заказов в указанном статусе
func (r *Repository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("purchase_orders").
		Where(squirrel.Eq{"status": string(status)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOrdersByStatus - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOrdersByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanItem сканирует одну строку позиции склада
func (r *Repository) scanItem(row *sql.Row, op string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Quantity,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}
