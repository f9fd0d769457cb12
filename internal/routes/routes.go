package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/grandora/hotel-manager/internal/audit"
	"github.com/grandora/hotel-manager/internal/chat"
	"github.com/grandora/hotel-manager/internal/chat/history"
	"github.com/grandora/hotel-manager/internal/config"
	"github.com/grandora/hotel-manager/internal/handlers"
	infraRepo "github.com/grandora/hotel-manager/internal/infra/repository"
	"github.com/grandora/hotel-manager/internal/middleware"
	"github.com/grandora/hotel-manager/internal/models"
	"github.com/grandora/hotel-manager/internal/payments"
	ucBooking "github.com/grandora/hotel-manager/internal/usecase/booking"
	ucPayment "github.com/grandora/hotel-manager/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	promotionRepo := infraRepo.NewPromotionGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var gateway *payments.CheckoutGateway
	if cfg.MercadoPagoToken != "" {
		g, err := payments.NewCheckoutGateway(cfg.MercadoPagoToken, cfg.CheckoutBackURL)
		if err != nil {
			log.Println("checkout gateway disabled:", err)
		} else {
			gateway = g
		}
	}

	var historyStore history.Store
	if cfg.RedisAddr != "" {
		historyStore = history.NewRedisStore(cfg.RedisAddr, cfg.ChatHistoryTTL)
	} else {
		historyStore = history.NewMemoryStore(cfg.ChatHistoryTTL)
	}

	chatBackend := chat.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiTimeout)
	chatRunner := chat.NewGormQueryRunner(db)
	assistant := chat.NewAssistant(chatBackend, chatRunner, historyStore)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	createWalkInUC := ucBooking.NewCreateWalkInBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	checkInUC := ucBooking.NewCheckInBooking(bookingRepo, auditDispatcher)
	checkOutUC := ucBooking.NewCheckOutBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	recordPaymentUC := ucPayment.NewRecordPayment(paymentRepo, promotionRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	roomHandler := handlers.NewRoomHandler(db, bookingRepo)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		createBookingUC,
		cancelBookingUC,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		bookingRepo,
		createWalkInUC,
		checkInUC,
		checkOutUC,
		cancelBookingUC,
		deleteBookingUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		db,
		paymentRepo,
		bookingRepo,
		promotionRepo,
		recordPaymentUC,
		gateway,
	)

	promotionHandler := handlers.NewPromotionHandler(promotionRepo)
	maintenanceHandler := handlers.NewMaintenanceHandler(db, bookingRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	chatHandler := handlers.NewChatHandler(assistant)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/rooms", roomHandler.List)
		api.GET("/rooms/:id", roomHandler.Get)
		api.GET("/rooms/:id/availability", roomHandler.CheckAvailability)

		api.POST("/chat", chatHandler.Message)

		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED (ANY ROLE)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.MyBookings)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			secured.POST("/bookings/:id/checkout", paymentHandler.CreateCheckout)
		}

		// ------------------------------
		// STAFF (FRONT DESK)
		// ------------------------------
		staff := api.Group("/admin")
		staff.Use(middleware.AuthMiddleware(cfg))
		staff.Use(middleware.RequireRoles(
			models.RoleAdmin,
			models.RoleManager,
			models.RoleStaff,
		))
		{
			staff.GET("/bookings", adminBookingHandler.List)
			staff.GET("/bookings/:id", adminBookingHandler.Get)
			staff.POST("/bookings/walk-in", adminBookingHandler.CreateWalkIn)
			staff.PATCH("/bookings/:id/check-in", adminBookingHandler.CheckIn)
			staff.PATCH("/bookings/:id/check-out", adminBookingHandler.CheckOut)
			staff.PATCH("/bookings/:id/cancel", adminBookingHandler.Cancel)

			staff.POST("/payments", paymentHandler.Record)
			staff.GET("/bookings/:id/payments", paymentHandler.ListForBooking)
			staff.GET("/promotions/validate", paymentHandler.ValidatePromotion)

			staff.GET("/rooms/stats", roomHandler.Stats)

			staff.POST("/maintenance", maintenanceHandler.Schedule)
			staff.PATCH("/maintenance/:id/complete", maintenanceHandler.Complete)
			staff.GET("/maintenance", maintenanceHandler.List)
		}

		// ------------------------------
		// MANAGEMENT
		// ------------------------------
		management := api.Group("/admin")
		management.Use(middleware.AuthMiddleware(cfg))
		management.Use(middleware.RequireRoles(
			models.RoleAdmin,
			models.RoleManager,
		))
		{
			management.POST("/rooms", roomHandler.Create)
			management.PUT("/rooms/:id", roomHandler.Update)

			management.POST("/promotions", promotionHandler.Create)
			management.GET("/promotions", promotionHandler.List)

			management.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// ADMIN ONLY
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.DELETE("/bookings/:id", adminBookingHandler.Delete)
		}
	}
}
