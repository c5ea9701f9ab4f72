package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-HotelService/internal/service/inventory/models"
)

type fakeInventoryRepo struct {
	items      map[int64]*domain.InventoryItem
	orders     map[int64]*domain.PurchaseOrder
	nextItemID int64
	nextOrder  int64
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{
		items:      make(map[int64]*domain.InventoryItem),
		orders:     make(map[int64]*domain.PurchaseOrder),
		nextItemID: 1,
		nextOrder:  1,
	}
}

func (f *fakeInventoryRepo) CreateItem(_ context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	created := *item
	created.ID = f.nextItemID
	f.nextItemID++
	f.items[created.ID] = &created
	return &created, nil
}

func (f *fakeInventoryRepo) GetItemByID(_ context.Context, id int64) (*domain.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, inventoryRepo.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeInventoryRepo) GetItemByName(_ context.Context, name string) (*domain.InventoryItem, error) {
	for _, item := range f.items {
		if item.Name == name {
			copied := *item
			return &copied, nil
		}
	}
	return nil, inventoryRepo.ErrItemNotFound
}

func (f *fakeInventoryRepo) ListItems(_ context.Context, filter domain.InventoryFilter) ([]*domain.InventoryItem, error) {
	var result []*domain.InventoryItem
	for _, item := range f.items {
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.LowStock && !item.IsLowStock() {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeInventoryRepo) SetItemQuantity(_ context.Context, id int64, quantity int) error {
	item, ok := f.items[id]
	if !ok {
		return inventoryRepo.ErrItemNotFound
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeInventoryRepo) CreateOrder(_ context.Context, order *domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	created := *order
	created.ID = f.nextOrder
	f.nextOrder++
	f.orders[created.ID] = &created
	return &created, nil
}

func (f *fakeInventoryRepo) GetOrderByID(_ context.Context, id int64) (*domain.PurchaseOrder, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, inventoryRepo.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (f *fakeInventoryRepo) ListOrders(_ context.Context, status *domain.OrderStatus) ([]*domain.PurchaseOrder, error) {
	var result []*domain.PurchaseOrder
	for _, order := range f.orders {
		if status != nil && order.Status != *status {
			continue
		}
		result = append(result, order)
	}
	return result, nil
}

func (f *fakeInventoryRepo) UpdateOrderStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return inventoryRepo.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeInventoryRepo) *Service {
	return NewService(repo, &fakeTxManager{}, nopLogger{})
}

func seedItem(repo *fakeInventoryRepo, name string, quantity int) *domain.InventoryItem {
	item, _ := repo.CreateItem(context.Background(), &domain.InventoryItem{
		Name:     name,
		Category: "linen",
		Quantity: quantity,
	})
	return item
}

func TestAddItemCreatesNew(t *testing.T) {
	repo := newFakeInventoryRepo()
	svc := newTestService(repo)

	resp, err := svc.AddItem(context.Background(), &models.AddItemRequest{
		Name:     "towels",
		Category: "linen",
		Quantity: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, "towels", resp.Name)
	assert.Equal(t, 40, resp.Quantity)
	assert.False(t, resp.LowStock)
}

func TestAddItemIncrementsExisting(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "towels", 10)
	svc := newTestService(repo)

	resp, err := svc.AddItem(context.Background(), &models.AddItemRequest{
		Name:     "towels",
		Category: "linen",
		Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, 15, resp.Quantity)
	assert.Equal(t, 15, repo.items[item.ID].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	svc := newTestService(newFakeInventoryRepo())

	_, err := svc.AddItem(context.Background(), &models.AddItemRequest{Name: "", Quantity: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddItem(context.Background(), &models.AddItemRequest{Name: "soap", Quantity: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdjustQuantity(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "soap", 10)
	svc := newTestService(repo)

	resp, err := svc.AdjustQuantity(context.Background(), item.ID, &models.AdjustQuantityRequest{Delta: -4})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Quantity)

	// Списание до нуля допустимо
	resp, err = svc.AdjustQuantity(context.Background(), item.ID, &models.AdjustQuantityRequest{Delta: -6})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Quantity)
}

func TestAdjustQuantityInsufficientStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "soap", 3)
	svc := newTestService(repo)

	_, err := svc.AdjustQuantity(context.Background(), item.ID, &models.AdjustQuantityRequest{Delta: -4})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, repo.items[item.ID].Quantity)
}

func TestAdjustQuantityItemNotFound(t *testing.T) {
	svc := newTestService(newFakeInventoryRepo())

	_, err := svc.AdjustQuantity(context.Background(), 99, &models.AdjustQuantityRequest{Delta: 1})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestPlaceOrder(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "towels", 2)
	svc := newTestService(repo)

	resp, err := svc.PlaceOrder(context.Background(), &models.PlaceOrderRequest{ItemID: item.ID, Quantity: 20})
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusPending), resp.Status)
	assert.Equal(t, "towels", resp.ItemName)

	_, err = svc.PlaceOrder(context.Background(), &models.PlaceOrderRequest{ItemID: 99, Quantity: 20})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.PlaceOrder(context.Background(), &models.PlaceOrderRequest{ItemID: item.ID, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateOrderStatusReceivedRestocks(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "towels", 2)
	svc := newTestService(repo)

	order, err := svc.PlaceOrder(context.Background(), &models.PlaceOrderRequest{ItemID: item.ID, Quantity: 20})
	require.NoError(t, err)

	resp, err := svc.UpdateOrderStatus(context.Background(), order.ID, string(domain.OrderStatusReceived))
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusReceived), resp.Status)
	// Приёмка пополнила остаток
	assert.Equal(t, 22, repo.items[item.ID].Quantity)
}

func TestUpdateOrderStatusFinalized(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo, "towels", 2)
	svc := newTestService(repo)

	order, err := svc.PlaceOrder(context.Background(), &models.PlaceOrderRequest{ItemID: item.ID, Quantity: 20})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, string(domain.OrderStatusCancelled))
	require.NoError(t, err)

	// Терминальный заказ больше не меняется
	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, string(domain.OrderStatusOrdered))
	assert.ErrorIs(t, err, ErrOrderFinalized)
}

func TestUpdateOrderStatusUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeInventoryRepo())

	_, err := svc.UpdateOrderStatus(context.Background(), 1, "shipped")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListItemsLowStockFilter(t *testing.T) {
	repo := newFakeInventoryRepo()
	seedItem(repo, "towels", 2)
	seedItem(repo, "soap", 100)
	svc := newTestService(repo)

	resp, err := svc.ListItems(context.Background(), &models.ListItemsRequest{LowStock: true})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "towels", resp.Items[0].Name)
	assert.True(t, resp.Items[0].LowStock)
}
