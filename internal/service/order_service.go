package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"restaurant-pos/internal/ledger"
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/validation"
)

// firstOrderID is where order numbering starts.
const firstOrderID = 1000

// OrderService drives the order lifecycle: booking a table, building the
// order against catalog snapshots, billing, persisting, and releasing the
// table. The table is freed exactly once, by Finalize or Abort.
type OrderService struct {
	menu       repository.MenuRepository
	tables     *repository.TableRegistry
	orders     *ledger.OrderLedger
	surcharges []models.Surcharge
	log        *slog.Logger

	mu          sync.Mutex
	nextOrderID int
}

// NewOrderService creates a new order service. Surcharges apply to every bill
// this service produces.
func NewOrderService(menu repository.MenuRepository, tables *repository.TableRegistry, orders *ledger.OrderLedger, surcharges []models.Surcharge, log *slog.Logger) *OrderService {
	return &OrderService{
		menu:        menu,
		tables:      tables,
		orders:      orders,
		surcharges:  surcharges,
		log:         log,
		nextOrderID: firstOrderID,
	}
}

// Open books the requested table and opens an empty order for the customer.
// Booking is atomic: if the table is occupied or unknown, no state changes
// and ErrTableUnavailable is returned.
func (s *OrderService) Open(ctx context.Context, req validation.OpenOrderRequest) (*models.Order, error) {
	if err := validation.Validate(req); err != nil {
		return nil, err
	}
	if !s.tables.Book(req.TableID) {
		return nil, ErrTableUnavailable
	}

	s.mu.Lock()
	id := s.nextOrderID
	s.nextOrderID++
	s.mu.Unlock()

	order := models.NewOrder(id, req.CustomerName, req.TableID)
	s.log.Info("order opened",
		"order_id", order.ID,
		"session_id", uuid.NewString(),
		"customer", order.CustomerName,
		"table_id", order.TableID,
	)
	return order, nil
}

// AddItem snapshots the catalog item onto the order. The item must exist and
// be available; the quantity must be positive.
func (s *OrderService) AddItem(ctx context.Context, order *models.Order, itemID, quantity int) error {
	item, err := s.menu.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return ErrItemUnavailable
	}
	return order.AddLine(*item, quantity)
}

// Bill renders the order with the configured surcharges.
func (s *OrderService) Bill(order *models.Order) models.Bill {
	return order.Bill(s.surcharges)
}

// Finalize persists the order, closes it, and frees its table. If the
// durability step fails the order stays open, its table stays booked, and the
// error is returned so the caller can retry or abort — the table is never
// silently freed past a failed write.
func (s *OrderService) Finalize(ctx context.Context, order *models.Order) (models.Bill, error) {
	if len(order.Lines) == 0 {
		return models.Bill{}, ErrEmptyOrder
	}
	if order.Closed() {
		return models.Bill{}, models.ErrOrderClosed
	}

	if err := s.orders.Append(ctx, order); err != nil {
		s.log.Error("order persistence failed", "order_id", order.ID, "error", err)
		return models.Bill{}, fmt.Errorf("persist order %d: %w", order.ID, err)
	}

	bill := s.Bill(order)
	order.Close()
	s.tables.Free(order.TableID)
	s.log.Info("order finalized",
		"order_id", order.ID,
		"table_id", order.TableID,
		"total", bill.Total.StringFixed(2),
	)
	return bill, nil
}

// Abort abandons an open order and frees its table. Finalized orders are left
// alone so the table release stays exactly-once.
func (s *OrderService) Abort(ctx context.Context, order *models.Order) {
	if order.Closed() {
		return
	}
	order.Close()
	s.tables.Free(order.TableID)
	s.log.Info("order aborted", "order_id", order.ID, "table_id", order.TableID)
}

// FreeTables lists the tables currently open for booking.
func (s *OrderService) FreeTables() []int {
	return s.tables.ListFree()
}
