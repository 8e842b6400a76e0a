package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/editor"
	"github.com/nourhanadel/pharma-admin-BE/internal/event"
	"github.com/nourhanadel/pharma-admin-BE/internal/gateway"
	"github.com/nourhanadel/pharma-admin-BE/internal/model"
	"github.com/nourhanadel/pharma-admin-BE/internal/notice"
	"github.com/nourhanadel/pharma-admin-BE/internal/panel"
	"github.com/nourhanadel/pharma-admin-BE/internal/tracker"
	"github.com/nourhanadel/pharma-admin-BE/internal/util"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router        *gin.Engine
	config        *util.Config
	gw            *gateway.Gateway
	tracker       *tracker.Tracker
	orderEditor   *editor.Editor
	orders        *panel.Panel[model.Order]
	users         *panel.Panel[model.User]
	products      *panel.Panel[model.Product]
	feedback      *panel.Panel[model.Feedback]
	contacts      *panel.Panel[model.ContactMessage]
	rareMedicines *panel.Panel[model.RareMedicineRequest]
	notices       *notice.Center
	eventSender   event.EventSender
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(gw *gateway.Gateway, config *util.Config, eventSender event.EventSender) (*Server, error) {
	notices := notice.NewCenter(func(n notice.Notice) {
		eventSender.Broadcast(event.Event{
			Topic: event.TopicNotices,
			Type:  event.EventTypeNotice,
			Data:  n,
		})
	})

	// The sidebar badge never mutates the count; it only receives it
	// here, after every settled mutation.
	notificationTracker := tracker.New(gw, func(unread int) {
		eventSender.Broadcast(event.Event{
			Topic: event.TopicBadge,
			Type:  event.EventTypeUnreadCount,
			Data:  gin.H{"unread_count": unread},
		})
	})
	log.Info().Msg("Notification tracker created successfully ✅")

	orderEditor := editor.New(gw, func(state editor.State) {
		eventSender.Broadcast(event.Event{
			Topic: event.TopicOrder,
			Type:  event.EventTypeOrderState,
			Data: gin.H{
				"order": state.Order,
				"phase": state.Phase.String(),
			},
		})
	})
	log.Info().Msg("Order editor created successfully ✅")

	server := &Server{
		config:      config,
		gw:          gw,
		tracker:     notificationTracker,
		orderEditor: orderEditor,
		notices:     notices,
		eventSender: eventSender,
	}
	server.setupPanels()
	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	notificationGroup := v1.Group("/notifications")
	{
		notificationGroup.GET("", server.listNotifications)
		notificationGroup.POST("/refresh", server.refreshNotifications)
		notificationGroup.POST(":id/toggle", server.toggleNotification)
		notificationGroup.PATCH(":id/read", server.markNotificationRead)
		notificationGroup.PATCH(":id/unread", server.markNotificationUnread)
		notificationGroup.PATCH("mark-all-read", server.markAllNotificationsRead)
		notificationGroup.PATCH("mark-all-unread", server.markAllNotificationsUnread)
		notificationGroup.DELETE(":id", server.deleteNotification)
	}

	v1.GET("/badge", server.getBadge)
	v1.GET("/badge/stream", server.streamBadgeEvents)

	orderGroup := v1.Group("/dorders")
	{
		orderGroup.GET("", server.listOrders)
		orderGroup.POST("/refresh", server.refreshOrders)
		orderGroup.GET(":id", server.getOrderDetails)
		orderGroup.DELETE(":id", server.deleteOrder)

		// The open order's edit session
		orderGroup.PATCH("current/items/:index", server.updateOrderItemQuantity)
		orderGroup.POST("current/header/edit", server.beginOrderHeaderEdit)
		orderGroup.PUT("current/header", server.setOrderHeaderDraft)
		orderGroup.POST("current/header/save", server.saveOrderHeader)
	}

	registerPanelRoutes(server, v1.Group("/users"), "users", server.users)
	registerPanelRoutes(server, v1.Group("/medicines"), "medicines", server.products)
	registerPanelRoutes(server, v1.Group("/feedback"), "feedback", server.feedback)
	registerPanelRoutes(server, v1.Group("/contacts"), "contact messages", server.contacts)
	registerPanelRoutes(server, v1.Group("/rare-medicines"), "rare medicine requests", server.rareMedicines)

	noticeGroup := v1.Group("/notices")
	{
		noticeGroup.GET("", server.listNotices)
		noticeGroup.GET("/stream", server.streamNoticeEvents)
		noticeGroup.DELETE(":id", server.dismissNotice)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
