package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// OrderService implements the order lifecycle: creation, partial updates with
// the paid-implies-served coupling, the pay shortcut, the deletion guard and
// aggregate statistics.
type OrderService struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, menu: menu, logger: logger}
}

// List returns all orders, newest first, with item details populated.
func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateItems(ctx, orders...); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create validates and persists a new order.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	items, err := validateItems(in.Items)
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.OrderPending
	}
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidTransition
	}

	payment := in.PaymentStatus
	if payment == "" {
		payment = domain.PaymentUnpaid
	}
	// Paid on arrival still lands on served.
	if payment == domain.PaymentPaid {
		status = domain.OrderServed
	}

	now := time.Now().UTC()
	order := &domain.Order{
		CustomerName:  in.CustomerName,
		TableNumber:   in.TableNumber,
		Items:         items,
		Total:         in.Total,
		Status:        status,
		PaymentStatus: payment,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}
	if err := s.populateItems(ctx, created); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("customer", created.CustomerName).
		Int("table", created.TableNumber).
		Float64("total", created.Total).
		Msg("order created")
	return created, nil
}

// Update applies a partial update. Setting PaymentStatus to Paid forces the
// status to served in the same write; the forced value wins over any supplied
// status. Other status changes must follow the state machine.
func (s *OrderService) Update(ctx context.Context, id string, in ports.UpdateOrderInput) (*domain.Order, error) {
	current, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := ports.OrderUpdate{
		CustomerName: in.CustomerName,
		TableNumber:  in.TableNumber,
		Total:        in.Total,
	}

	if in.Items != nil {
		items, err := validateItems(in.Items)
		if err != nil {
			return nil, err
		}
		update.Items = items
	}

	if in.PaymentStatus != nil {
		update.PaymentStatus = in.PaymentStatus
		if *in.PaymentStatus == domain.PaymentPaid {
			served := domain.OrderServed
			update.Status = &served
		}
	}

	// The paid coupling above wins over whatever status came in.
	if update.Status == nil && in.Status != nil {
		next := *in.Status
		if !domain.ValidOrderStatus(next) || !current.Status.CanTransitionTo(next) {
			return nil, domain.ErrInvalidTransition
		}
		update.Status = &next
	}

	updated, err := s.orders.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if err := s.populateItems(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", updated.ID).
		Str("status", string(updated.Status)).
		Str("payment_status", string(updated.PaymentStatus)).
		Msg("order updated")
	return updated, nil
}

// Pay marks the order paid and served in one write.
func (s *OrderService) Pay(ctx context.Context, id string) (*domain.Order, error) {
	current, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.PaymentStatus == domain.PaymentPaid {
		return nil, domain.ErrAlreadyPaid
	}

	paid := domain.PaymentPaid
	served := domain.OrderServed
	updated, err := s.orders.Update(ctx, id, ports.OrderUpdate{
		PaymentStatus: &paid,
		Status:        &served,
	})
	if err != nil {
		return nil, err
	}
	if err := s.populateItems(ctx, updated); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", updated.ID).
		Str("customer", updated.CustomerName).
		Float64("total", updated.Total).
		Msg("order paid and served")
	return updated, nil
}

// Delete removes an order unless it is paid or served.
func (s *OrderService) Delete(ctx context.Context, id string) (*ports.DeletedOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Deletable() {
		s.logger.Warn().
			Str("order_id", order.ID).
			Str("status", string(order.Status)).
			Str("payment_status", string(order.PaymentStatus)).
			Msg("delete blocked")
		return nil, fmt.Errorf("%w: order %s for %s at table %d",
			domain.ErrOrderNotDeletable, order.ID, order.CustomerName, order.TableNumber)
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Str("customer", order.CustomerName).Msg("order deleted")
	return &ports.DeletedOrder{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		TableNumber:  order.TableNumber,
		Total:        order.Total,
		Status:       string(order.Status),
	}, nil
}

// Stats returns today's totals plus per-status and per-payment breakdowns.
func (s *OrderService) Stats(ctx context.Context) (*ports.OrderStats, error) {
	start, end := dayBounds(time.Now().UTC())
	return s.orders.Stats(ctx, start, end)
}

// populateItems fills item name/price/category from the menu collection.
// Items referencing deleted menu entries keep their stored id and quantity.
func (s *OrderService) populateItems(ctx context.Context, orders ...*domain.Order) error {
	idSet := make(map[string]struct{})
	for _, o := range orders {
		for _, it := range o.Items {
			idSet[it.MenuItemID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	found, err := s.menu.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, o := range orders {
		for i := range o.Items {
			if mi, ok := found[o.Items[i].MenuItemID]; ok {
				o.Items[i].Name = mi.Name
				o.Items[i].Price = mi.Price
				o.Items[i].Category = mi.CategoryID
			}
		}
	}
	return nil
}

func validateItems(in []ports.OrderItemInput) ([]domain.OrderItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	items := make([]domain.OrderItem, 0, len(in))
	for i, it := range in {
		if it.MenuItemID == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d needs a menu item and a positive quantity", domain.ErrInvalidOrderItem, i+1)
		}
		items = append(items, domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}
	return items, nil
}

func dayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
