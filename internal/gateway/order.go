package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nourhanadel/pharma-admin-BE/internal/model"
)

// ListOrders fetches all orders without their line items.
func (g *Gateway) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := g.get(ctx, "list orders", "/api/dorders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one full order including its line items. The
// returned total is the server's authoritative recomputation.
func (g *Gateway) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	order := new(model.Order)
	path := fmt.Sprintf("/api/dorders/%d", id)
	if err := g.get(ctx, "get order", path, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrder persists the whole order object (header fields).
func (g *Gateway) UpdateOrder(ctx context.Context, order model.Order) error {
	path := fmt.Sprintf("/api/dorders/%d", order.ID)
	return g.write(ctx, "update order", http.MethodPut, path, order)
}

type updateOrderItemQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// UpdateOrderItemQuantity persists only the changed item's quantity.
func (g *Gateway) UpdateOrderItemQuantity(ctx context.Context, itemID int64, quantity int64) error {
	path := fmt.Sprintf("/api/order-items/%d", itemID)
	body := updateOrderItemQuantityRequest{Quantity: quantity}
	return g.write(ctx, "update order item quantity", http.MethodPut, path, body)
}

// DeleteOrder removes one order on the server.
func (g *Gateway) DeleteOrder(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/dorders/%d", id)
	return g.write(ctx, "delete order", http.MethodDelete, path, nil)
}
