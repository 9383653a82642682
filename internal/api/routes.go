package api

import (
	"os"
	"path/filepath"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/middleware"
	"github.com/roobux/backend/internal/service"
	"github.com/roobux/backend/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Auth        service.AuthService
	User        service.UserService
	Package     service.PackageService
	Request     service.RequestService
	Approval    service.ApprovalService
	Content     service.ContentService
	Referral    service.ReferralService
	Testimonial service.TestimonialService
	Message     service.MessageService
	Chat        service.ChatService
	Price       service.PriceService
	Audit       service.AuditService
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc Services, wsHandler *ws.WebSocketHandler) {
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	authHandler := NewAuthHandler(svc.Auth)
	userHandler := NewUserHandler(svc.User, svc.Audit)
	packageHandler := NewPackageHandler(svc.Package, svc.Audit)
	transactionHandler := NewTransactionHandler(svc.Request, svc.Approval, svc.Audit)
	contentHandler := NewContentHandler(svc.Content, svc.Audit)
	referralHandler := NewReferralHandler(svc.Referral, svc.Content, svc.Audit)
	testimonialHandler := NewTestimonialHandler(svc.Testimonial, svc.Audit)
	messageHandler := NewMessageHandler(svc.Message, svc.Audit)
	chatHandler := NewChatHandler(svc.Chat)
	priceHandler := NewPriceHandler(svc.Price)
	auditHandler := NewAuditHandler(svc.Audit)

	if wd, err := os.Getwd(); err == nil {
		swaggerJSONPath := filepath.Join(wd, "docs", "swagger.json")
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/docs/swagger.json")))
		r.GET("/docs/swagger.json", func(c *gin.Context) {
			c.File(swaggerJSONPath)
		})
	}

	userAuth := middleware.UserAuthMiddleware(cfg, svc.User)
	adminAuth := middleware.AdminAuthMiddleware(cfg)

	v1 := r.Group("/api/v1")
	{
		// Reachable during maintenance: operators log in through these.
		v1.GET("/status", contentHandler.GetStatus)
		v1.POST("/auth/login", authHandler.Login)

		open := v1.Group("/").Use(middleware.MaintenanceMiddleware(cfg, svc.Content))
		{
			open.POST("/auth/signup", authHandler.Signup)
			open.GET("/content/main", contentHandler.GetSiteContent)
			open.GET("/content/theme", contentHandler.GetTheme)
			open.GET("/packages", packageHandler.GetVisiblePackages)
			open.GET("/packages/:id/projection", packageHandler.Project)
			open.GET("/testimonials", testimonialHandler.GetVisible)
			open.GET("/prices", priceHandler.GetQuotes)
			open.POST("/contact", messageHandler.Submit)
		}

		user := v1.Group("/").Use(middleware.MaintenanceMiddleware(cfg, svc.Content), userAuth)
		{
			user.GET("/users/me", userHandler.GetMe)
			user.POST("/deposits", transactionHandler.CreateDeposit)
			user.GET("/deposits", transactionHandler.GetUserDeposits)
			user.POST("/withdrawals", transactionHandler.CreateWithdrawal)
			user.GET("/withdrawals", transactionHandler.GetUserWithdrawals)
			user.GET("/referrals", referralHandler.GetSummary)
			user.GET("/chat/messages", chatHandler.GetHistory)
			user.POST("/chat/messages", chatHandler.SendMessage)
			user.PUT("/chat/read", chatHandler.MarkRead)
		}

		admin := v1.Group("/admin").Use(adminAuth)
		{
			admin.GET("/stats", userHandler.GetStats)
			admin.GET("/users", userHandler.GetAllUsers)
			admin.GET("/users/export", userHandler.ExportUsers)
			admin.PUT("/users/:id/balance", userHandler.SetBalance)
			admin.PUT("/users/:id/ban", userHandler.SetBanned)
			admin.DELETE("/users/:id", userHandler.DeleteUser)

			admin.GET("/packages", packageHandler.GetAllPackages)
			admin.POST("/packages", packageHandler.CreatePackage)
			admin.PUT("/packages/:id", packageHandler.UpdatePackage)
			admin.DELETE("/packages/:id", packageHandler.DeletePackage)

			admin.GET("/deposits", transactionHandler.GetAllDeposits)
			admin.PUT("/deposits/:id/approve", transactionHandler.ApproveDeposit)
			admin.PUT("/deposits/:id/reject", transactionHandler.RejectDeposit)
			admin.GET("/withdrawals", transactionHandler.GetAllWithdrawals)
			admin.PUT("/withdrawals/:id/approve", transactionHandler.ApproveWithdrawal)
			admin.PUT("/withdrawals/:id/reject", transactionHandler.RejectWithdrawal)

			admin.GET("/referrals", referralHandler.GetRecent)
			admin.GET("/referrals/settings", referralHandler.GetSettings)
			admin.PUT("/referrals/settings", referralHandler.SetSettings)

			admin.PUT("/content/main", contentHandler.SetSiteContent)
			admin.PUT("/content/theme", contentHandler.SetTheme)
			admin.PUT("/status/maintenance", contentHandler.SetMaintenance)

			admin.GET("/testimonials", testimonialHandler.GetAll)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PUT("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

			admin.GET("/messages", messageHandler.GetAll)
			admin.PUT("/messages/:id/read", messageHandler.MarkRead)
			admin.DELETE("/messages/read", messageHandler.DeleteRead)
			admin.DELETE("/messages/:id", messageHandler.Delete)

			admin.GET("/chats", chatHandler.GetAllChats)
			admin.GET("/chats/:user_id", chatHandler.OpenChat)
			admin.POST("/chats/:user_id", chatHandler.Reply)

			admin.GET("/logs", auditHandler.GetLogs)
		}
	}

	r.GET("/ws", wsHandler.HandleConnection)
}
