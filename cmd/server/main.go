package main

import (
	"context"
	"fmt"
	"time"

	"github.com/roobux/backend/internal/api"
	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/repository"
	"github.com/roobux/backend/internal/service"
	"github.com/roobux/backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logrus.WithError(err).Fatal("failed to ping MongoDB")
	}

	userRepo := repository.NewUserRepository(client, cfg.DBName, "users")
	depositRepo := repository.NewDepositRepository(client, cfg.DBName, "deposits")
	withdrawalRepo := repository.NewWithdrawalRepository(client, cfg.DBName, "withdrawals")
	packageRepo := repository.NewPackageRepository(client, cfg.DBName, "packages")
	referralRepo := repository.NewReferralRepository(client, cfg.DBName, "referrals")
	testimonialRepo := repository.NewTestimonialRepository(client, cfg.DBName, "testimonials")
	messageRepo := repository.NewMessageRepository(client, cfg.DBName, "messages")
	chatRepo := repository.NewChatRepository(client, cfg.DBName, "support_chats", "chat_messages")
	contentRepo := repository.NewContentRepository(client, cfg.DBName, "site_content", "site_status")
	adminLogRepo := repository.NewAdminLogRepository(client, cfg.DBName, "admin_logs")
	priceRepo := repository.NewPriceRepository()

	if err := ensureAdmin(userRepo, cfg); err != nil {
		logrus.WithError(err).Fatal("failed to bootstrap admin account")
	}

	hub := ws.NewHub()
	go hub.Run()
	wsHandler := ws.NewWebSocketHandler(hub, cfg)

	geoService := service.NewGeoService()
	priceService := service.NewPriceServiceWithBaseURL(priceRepo, hub, cfg.PriceAPIBase)

	svc := api.Services{
		Auth:        service.NewAuthService(userRepo, contentRepo, geoService, cfg, logrus.StandardLogger()),
		User:        service.NewUserService(userRepo, depositRepo, withdrawalRepo),
		Package:     service.NewPackageService(packageRepo),
		Request:     service.NewRequestService(depositRepo, withdrawalRepo, packageRepo, userRepo),
		Approval:    service.NewApprovalService(depositRepo, withdrawalRepo, userRepo, referralRepo, contentRepo),
		Content:     service.NewContentService(contentRepo),
		Referral:    service.NewReferralService(referralRepo, userRepo, contentRepo),
		Testimonial: service.NewTestimonialService(testimonialRepo),
		Message:     service.NewMessageService(messageRepo),
		Chat:        service.NewChatService(chatRepo, userRepo, hub),
		Price:       priceService,
		Audit:       service.NewAuditService(adminLogRepo),
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logrus.WithError(err).Fatal("failed to create scheduler")
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(60*time.Second),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := priceService.Refresh(ctx); err != nil {
				logrus.WithError(err).Warn("price refresh failed, keeping stale quotes")
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to schedule price job")
	}
	scheduler.Start()
	defer func() { _ = scheduler.Shutdown() }()

	r := gin.New()
	r.Use(gin.Recovery())

	api.SetupRoutes(r, cfg, svc, wsHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	logrus.WithField("addr", addr).Info("starting server")
	logrus.Infof("WebSocket endpoint available at ws://%s/ws", addr)
	logrus.Infof("Swagger UI available at %s/swagger/index.html", cfg.BaseURL)

	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

// ensureAdmin creates the operator account on first start.
func ensureAdmin(userRepo repository.UserRepository, cfg *config.Config) error {
	existing, err := userRepo.GetUserByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
		ReferralCode: uuid.New().String()[:8],
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := userRepo.SaveUser(admin); err != nil {
		return err
	}
	logrus.WithField("email", cfg.AdminEmail).Info("created admin account")
	return nil
}
