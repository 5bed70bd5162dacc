package handler

import (
	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

// --- Request → Service input ---

func toItemInputs(items []orderItemRequest) []ports.OrderItemInput {
	out := make([]ports.OrderItemInput, len(items))
	for i, it := range items {
		out[i] = ports.OrderItemInput{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		}
	}
	return out
}

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		Items:         toItemInputs(req.Items),
		Total:         req.Total,
		Status:        domain.OrderStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	}
}

func toUpdateOrderInput(req updateOrderRequest) ports.UpdateOrderInput {
	in := ports.UpdateOrderInput{
		CustomerName:  req.CustomerName,
		TableNumber:   req.TableNumber,
		Total:         req.Total,
		Status:        statusPtr(req.Status),
		PaymentStatus: paymentPtr(req.PaymentStatus),
	}
	if req.Items != nil {
		in.Items = toItemInputs(req.Items)
	}
	return in
}

// --- Domain → HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemResponse{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
			Name:       it.Name,
			Price:      it.Price,
			Category:   it.Category,
		}
	}
	return orderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		TableNumber:   o.TableNumber,
		Items:         items,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
	}
}

func toListOrdersResponse(orders []*domain.Order) listOrdersResponse {
	items := make([]orderResponse, len(orders))
	for i, o := range orders {
		items[i] = toOrderResponse(o)
	}
	return listOrdersResponse{Data: items, Count: len(items)}
}

func toDeleteOrderResponse(d *ports.DeletedOrder) deleteOrderResponse {
	var resp deleteOrderResponse
	resp.Message = "order deleted"
	resp.Order.ID = d.ID
	resp.Order.CustomerName = d.CustomerName
	resp.Order.TableNumber = d.TableNumber
	resp.Order.Total = d.Total
	resp.Order.Status = d.Status
	return resp
}
