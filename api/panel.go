package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/gateway"
	"github.com/nourhanadel/pharma-admin-BE/internal/model"
	"github.com/nourhanadel/pharma-admin-BE/internal/panel"
)

// setupPanels instantiates the generic CRUD panel once per console
// resource. Every screen of the original console repeated the same
// list/search/edit/delete state machine; here only the configuration
// record differs per resource.
func (server *Server) setupPanels() {
	pageSize := server.config.PanelPageSize

	server.orders = panel.New(panel.Config[model.Order]{
		Fetch:  server.gw.ListOrders,
		Update: server.gw.UpdateOrder,
		Delete: server.gw.DeleteOrder,
		ID:     func(o model.Order) int64 { return o.ID },
		Match: func(o model.Order, term string) bool {
			return containsFold(o.Address, term) ||
				containsFold(o.PaymentMethod, term) ||
				strings.Contains(o.TotalPrice.String(), term)
		},
		Equal: func(a, b model.Order) bool {
			return a.ID == b.ID &&
				a.Address == b.Address &&
				a.PaymentMethod == b.PaymentMethod &&
				a.TotalPrice.Equal(b.TotalPrice)
		},
		PageSize: pageSize,
	})

	users := gateway.NewResource[model.User](server.gw, "users", "/api/users")
	server.users = panel.New(panel.Config[model.User]{
		Fetch:  users.List,
		Update: resourceUpdate(users, func(u model.User) int64 { return u.ID }),
		Delete: users.Delete,
		ID:     func(u model.User) int64 { return u.ID },
		Match: func(u model.User, term string) bool {
			return containsFold(u.Name, term) ||
				containsFold(u.Email, term) ||
				containsFold(u.Phone, term)
		},
		PageSize: pageSize,
	})

	products := gateway.NewResource[model.Product](server.gw, "medicines", "/api/medicines")
	server.products = panel.New(panel.Config[model.Product]{
		Fetch:  products.List,
		Update: resourceUpdate(products, func(p model.Product) int64 { return p.ID }),
		Delete: products.Delete,
		ID:     func(p model.Product) int64 { return p.ID },
		Match: func(p model.Product, term string) bool {
			return containsFold(p.MedicineName, term) ||
				strings.Contains(p.MedicineNameAr, term) ||
				containsFold(p.Category, term)
		},
		Equal: func(a, b model.Product) bool {
			return a.ID == b.ID &&
				a.MedicineName == b.MedicineName &&
				a.MedicineNameAr == b.MedicineNameAr &&
				a.Description == b.Description &&
				a.Stock == b.Stock &&
				a.Category == b.Category &&
				a.Price.Equal(b.Price)
		},
		PageSize: pageSize,
	})

	feedback := gateway.NewResource[model.Feedback](server.gw, "feedback", "/api/feedback")
	server.feedback = panel.New(panel.Config[model.Feedback]{
		Fetch:  feedback.List,
		Update: resourceUpdate(feedback, func(f model.Feedback) int64 { return f.ID }),
		Delete: feedback.Delete,
		ID:     func(f model.Feedback) int64 { return f.ID },
		Match: func(f model.Feedback, term string) bool {
			return containsFold(f.UserName, term) || containsFold(f.Comment, term)
		},
		PageSize: pageSize,
	})

	contacts := gateway.NewResource[model.ContactMessage](server.gw, "contact messages", "/api/contacts")
	server.contacts = panel.New(panel.Config[model.ContactMessage]{
		Fetch:  contacts.List,
		Update: resourceUpdate(contacts, func(m model.ContactMessage) int64 { return m.ID }),
		Delete: contacts.Delete,
		ID:     func(m model.ContactMessage) int64 { return m.ID },
		Match: func(m model.ContactMessage, term string) bool {
			return containsFold(m.Name, term) ||
				containsFold(m.Email, term) ||
				containsFold(m.Subject, term)
		},
		PageSize: pageSize,
	})

	rareMedicines := gateway.NewResource[model.RareMedicineRequest](server.gw, "rare medicine requests", "/api/rare-medicines")
	server.rareMedicines = panel.New(panel.Config[model.RareMedicineRequest]{
		Fetch:  rareMedicines.List,
		Update: resourceUpdate(rareMedicines, func(r model.RareMedicineRequest) int64 { return r.ID }),
		Delete: rareMedicines.Delete,
		ID:     func(r model.RareMedicineRequest) int64 { return r.ID },
		Match: func(r model.RareMedicineRequest, term string) bool {
			return containsFold(r.UserName, term) ||
				containsFold(r.MedicineName, term) ||
				containsFold(r.Status, term)
		},
		PageSize: pageSize,
	})
}

// resourceUpdate adapts a typed gateway resource to the panel's
// row-based update signature.
func resourceUpdate[T any](r *gateway.Resource[T], id func(T) int64) func(ctx context.Context, row T) error {
	return func(ctx context.Context, row T) error {
		return r.Update(ctx, id(row), row)
	}
}

// registerPanelRoutes wires one panel's screen operations under a
// route group.
func registerPanelRoutes[T any](server *Server, group *gin.RouterGroup, name string, p *panel.Panel[T]) {
	group.GET("", func(ctx *gin.Context) {
		panelVisible(ctx, p)
	})

	group.POST("/refresh", func(ctx *gin.Context) {
		if err := p.Load(ctx); err != nil {
			server.notices.Failure("Failed to load " + name)
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		panelVisible(ctx, p)
	})

	group.POST("/view-more", func(ctx *gin.Context) {
		p.ViewMore()
		panelVisible(ctx, p)
	})

	group.POST("/view-less", func(ctx *gin.Context) {
		p.ViewLess()
		panelVisible(ctx, p)
	})

	group.POST(":id/edit", func(ctx *gin.Context) {
		id, ok := rowID(ctx)
		if !ok {
			return
		}
		if err := p.BeginEdit(id); err != nil {
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"dirty": false})
	})

	group.PUT(":id/draft", func(ctx *gin.Context) {
		var draft T
		if err := ctx.ShouldBindJSON(&draft); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		if err := p.SetDraft(draft); err != nil {
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"dirty": p.Dirty()})
	})

	group.POST("/save", func(ctx *gin.Context) {
		if err := p.SaveEdit(ctx); err != nil {
			server.notices.Failure("Failed to update " + name)
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		server.notices.Success("Updated " + name + " successfully")

		// The row is persisted at this point; a reload failure is a
		// separate problem and must not read as a failed save.
		if err := p.Load(ctx); err != nil {
			server.notices.Failure("Failed to reload " + name)
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		panelVisible(ctx, p)
	})

	group.POST("/cancel-edit", func(ctx *gin.Context) {
		p.CancelEdit()
		ctx.Status(http.StatusNoContent)
	})

	group.POST(":id/delete-request", func(ctx *gin.Context) {
		id, ok := rowID(ctx)
		if !ok {
			return
		}
		if err := p.RequestDelete(id); err != nil {
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		ctx.Status(http.StatusNoContent)
	})

	group.POST("/delete-confirm", func(ctx *gin.Context) {
		if err := p.ConfirmDelete(ctx); err != nil {
			server.notices.Failure("Failed to delete " + name)
			ctx.JSON(statusForError(err), errorResponse(err))
			return
		}
		server.notices.Success("Deleted " + name + " successfully")
		panelVisible(ctx, p)
	})

	group.POST("/delete-cancel", func(ctx *gin.Context) {
		p.CancelDelete()
		ctx.Status(http.StatusNoContent)
	})
}

// panelVisible applies the search query, then returns the filtered
// rows limited to the current window.
func panelVisible[T any](ctx *gin.Context, p *panel.Panel[T]) {
	if term, ok := ctx.GetQuery("search"); ok {
		p.SetSearch(term)
	}

	rows, total := p.Visible()
	ctx.JSON(http.StatusOK, gin.H{
		"rows":    rows,
		"total":   total,
		"visible": len(rows),
	})
}

func rowID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return 0, false
	}
	return id, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
