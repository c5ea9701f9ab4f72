package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

// Service сервис склада: позиции и заказы на пополнение
type Service struct {
	repo      InventoryRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса склада
func NewService(repo InventoryRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListItems получает позиции склада с опциональной фильтрацией
func (s *Service) ListItems(ctx context.Context, req *models.ListItemsRequest) (*models.ItemListResponse, error) {
	s.logger.Info("ListItems: category=%v, lowStock=%v", req.Category, req.LowStock)

	items, err := s.repo.ListItems(ctx, domain.InventoryFilter{
		Category: req.Category,
		LowStock: req.LowStock,
	})
	if err != nil {
		s.logger.Error("ListItems: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListItems - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(items), nil
}

// AddItem добавляет позицию склада
// Существующая позиция с таким названием пополняется, а не дублируется
func (s *Service) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("AddItem: name=%s, category=%s, quantity=%d", req.Name, req.Category, req.Quantity)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	existing, err := s.repo.GetItemByName(ctx, req.Name)
	if err != nil && !errors.Is(err, inventoryRepo.ErrItemNotFound) {
		s.logger.Error("AddItem: failed to look up item by name: %v", err)
		return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + req.Quantity
		if err := s.repo.SetItemQuantity(ctx, existing.ID, newQuantity); err != nil {
			s.logger.Error("AddItem: failed to update quantity for item id=%d: %v", existing.ID, err)
			return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
		}
		existing.Quantity = newQuantity

		s.logger.Info("AddItem: incremented item id=%d to quantity=%d", existing.ID, newQuantity)
		return models.FromDomainItem(existing), nil
	}

	item := &domain.InventoryItem{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		s.logger.Error("AddItem: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddItem: successfully created item id=%d", created.ID)
	return models.FromDomainItem(created), nil
}

// AdjustQuantity изменяет остаток позиции на delta
// Списание, превышающее остаток, отклоняется
func (s *Service) AdjustQuantity(ctx context.Context, id int64, req *models.AdjustQuantityRequest) (*models.ItemResponse, error) {
	s.logger.Info("AdjustQuantity: item id=%d, delta=%d", id, req.Delta)

	var result *domain.InventoryItem

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := s.repo.GetItemByID(txCtx, id)
		if err != nil {
			if errors.Is(err, inventoryRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: AdjustQuantity - repository error: %v", ErrInternal, err)
		}

		newQuantity := item.Quantity + req.Delta
		if newQuantity < 0 {
			s.logger.Warn("AdjustQuantity: item id=%d has %d in stock, requested delta=%d",
				id, item.Quantity, req.Delta)
			return ErrInsufficientStock
		}

		if err := s.repo.SetItemQuantity(txCtx, id, newQuantity); err != nil {
			return fmt.Errorf("%w: AdjustQuantity - repository error: %v", ErrInternal, err)
		}

		item.Quantity = newQuantity
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainItem(result), nil
}

// PlaceOrder создает заказ на пополнение позиции
func (s *Service) PlaceOrder(ctx context.Context, req *models.PlaceOrderRequest) (*models.OrderResponse, error) {
	s.logger.Info("PlaceOrder: item=%d, quantity=%d", req.ItemID, req.Quantity)

	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	item, err := s.repo.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, inventoryRepo.ErrItemNotFound) {
			s.logger.Warn("PlaceOrder: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("PlaceOrder: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: PlaceOrder - repository error: %v", ErrInternal, err)
	}

	order := &domain.PurchaseOrder{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Status:   domain.OrderStatusPending,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("PlaceOrder: repository error: %v", err)
		return nil, fmt.Errorf("%w: PlaceOrder - repository error: %v", ErrInternal, err)
	}

	created.ItemName = item.Name
	created.ItemCategory = item.Category

	s.logger.Info("PlaceOrder: successfully created order id=%d", created.ID)
	return models.FromDomainOrder(created), nil
}

// ListOrders получает заказы на пополнение, опционально по статусу
func (s *Service) ListOrders(ctx context.Context, status *string) (*models.OrderListResponse, error) {
	s.logger.Info("ListOrders: status=%v", status)

	var orderStatus *domain.OrderStatus
	if status != nil {
		st := domain.OrderStatus(*status)
		if !domain.IsValidOrderStatus(st) {
			return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, *status)
		}
		orderStatus = &st
	}

	orders, err := s.repo.ListOrders(ctx, orderStatus)
	if err != nil {
		s.logger.Error("ListOrders: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOrders - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrderList(orders), nil
}

// UpdateOrderStatus обновляет статус заказа на пополнение
//
// Переход в received увеличивает остаток позиции; смена статуса и
// инкремент остатка выполняются в одной транзакции
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.OrderResponse, error) {
	s.logger.Info("UpdateOrderStatus: order id=%d, status=%s", id, status)

	newStatus := domain.OrderStatus(status)
	if !domain.IsValidOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, status)
	}

	var result *domain.PurchaseOrder

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		order, err := s.repo.GetOrderByID(txCtx, id)
		if err != nil {
			if errors.Is(err, inventoryRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: UpdateOrderStatus - repository error: %v", ErrInternal, err)
		}

		if order.IsTerminal() {
			s.logger.Warn("UpdateOrderStatus: order id=%d is already %s", id, order.Status)
			return ErrOrderFinalized
		}

		if err := s.repo.UpdateOrderStatus(txCtx, id, newStatus); err != nil {
			return fmt.Errorf("%w: UpdateOrderStatus - repository error: %v", ErrInternal, err)
		}

		if newStatus == domain.OrderStatusReceived {
			item, err := s.repo.GetItemByID(txCtx, order.ItemID)
			if err != nil {
				return fmt.Errorf("%w: UpdateOrderStatus - repository error: %v", ErrInternal, err)
			}
			if err := s.repo.SetItemQuantity(txCtx, item.ID, item.Quantity+order.Quantity); err != nil {
				return fmt.Errorf("%w: UpdateOrderStatus - repository error: %v", ErrInternal, err)
			}
			s.logger.Info("UpdateOrderStatus: received order id=%d, item id=%d restocked by %d",
				id, item.ID, order.Quantity)
		}

		order.Status = newStatus
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainOrder(result), nil
}
