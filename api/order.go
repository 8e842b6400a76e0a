package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/editor"
	"github.com/nourhanadel/pharma-admin-BE/internal/util"
	"github.com/shopspring/decimal"
)

// listOrders returns the orders panel's visible window.
func (server *Server) listOrders(ctx *gin.Context) {
	panelVisible(ctx, server.orders)
}

// refreshOrders reloads the orders list from the remote API.
func (server *Server) refreshOrders(ctx *gin.Context) {
	if err := server.orders.Load(ctx); err != nil {
		server.notices.Failure("Failed to load orders")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}
	panelVisible(ctx, server.orders)
}

// getOrderDetails opens one order in the editor and returns its
// snapshot. A failed fetch leaves any previously open order untouched.
func (server *Server) getOrderDetails(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.orderEditor.Open(ctx, orderID); err != nil {
		server.notices.Failure("Failed to fetch order details")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.orderSnapshot(ctx)
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity" binding:"min=0"`
}

// updateOrderItemQuantity changes one line item's quantity in the
// open order. The response carries the optimistic or reconciled
// snapshot depending on how far the edit got.
func (server *Server) updateOrderItemQuantity(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.orderEditor.SetQuantity(ctx, index, req.Quantity); err != nil {
		server.notices.Failure("Failed to update item quantity")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.notices.Success("Order updated successfully")
	server.orderSnapshot(ctx)
}

// beginOrderHeaderEdit captures the dirty-tracking baseline for the
// open order's header form.
func (server *Server) beginOrderHeaderEdit(ctx *gin.Context) {
	if err := server.orderEditor.BeginHeaderEdit(); err != nil {
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"dirty": false})
}

type headerDraftRequest struct {
	Address       string          `json:"address"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
}

// setOrderHeaderDraft replaces the header form's current values and
// reports whether the save action should be enabled. Editing a field
// back to its original value disables it again.
func (server *Server) setOrderHeaderDraft(ctx *gin.Context) {
	var req headerDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	draft := editor.HeaderDraft{
		Address:       req.Address,
		TotalPrice:    req.TotalPrice,
		PaymentMethod: req.PaymentMethod,
	}
	if err := server.orderEditor.SetHeaderDraft(draft); err != nil {
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"dirty": server.orderEditor.HeaderDirty()})
}

// saveOrderHeader persists the header fields in one call. It refuses
// when nothing changed.
func (server *Server) saveOrderHeader(ctx *gin.Context) {
	if err := server.orderEditor.SaveHeader(ctx); err != nil {
		server.notices.Failure("Failed to update order")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.notices.Success("Order updated successfully")
	server.orderSnapshot(ctx)
}

// deleteOrder removes one order and drops it from the list. On
// failure the order remains listed.
func (server *Server) deleteOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := server.orderEditor.Delete(ctx, orderID); err != nil {
		server.notices.Failure("Failed to delete order")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	if err := server.orders.Load(ctx); err != nil {
		server.notices.Failure("Failed to reload orders")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.notices.Success("Order deleted successfully")
	ctx.Status(http.StatusNoContent)
}

func (server *Server) orderSnapshot(ctx *gin.Context) {
	order, phase, open := server.orderEditor.Snapshot()
	if !open {
		ctx.JSON(http.StatusOK, gin.H{"open": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"open":          true,
		"order":         order,
		"phase":         phase.String(),
		"total_display": util.FormatEGP(order.TotalPrice),
	})
}
