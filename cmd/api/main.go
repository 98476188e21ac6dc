package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/linyuchen/phone-lottery-backend/api/routes"
	"github.com/linyuchen/phone-lottery-backend/internal/config"
	"github.com/linyuchen/phone-lottery-backend/internal/handlers"
	mongorepo "github.com/linyuchen/phone-lottery-backend/internal/repositories/mongodb"
	"github.com/linyuchen/phone-lottery-backend/internal/services"
	mongodb "github.com/linyuchen/phone-lottery-backend/pkg/mongodb"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Refuse to start with a broken admin surface rather than serve it
	// unauthenticated.
	if cfg.JWT.Secret == "" || cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		log.Fatal("JWT.Secret, Admin.Email and Admin.PasswordHash must be configured")
	}

	campaignTZ, err := time.LoadLocation(cfg.Campaign.Timezone)
	if err != nil {
		log.Fatalf("Invalid campaign timezone %q: %v", cfg.Campaign.Timezone, err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Initialize repositories
	settingRepo := mongorepo.NewSettingRepository(db, cfg.MongoDB.Timeout)
	prizeRepo := mongorepo.NewPrizeRepository(db, cfg.MongoDB.Timeout)
	recordRepo := mongorepo.NewRecordRepository(db, cfg.MongoDB.Timeout)

	// The unique (phone, drawDay) index is what makes concurrent draws for
	// the same phone collapse into a single record. Refuse to start without it.
	if err := recordRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to ensure record indexes: %v", err)
	}

	// Initialize services
	campaignService := services.NewCampaignService(settingRepo, prizeRepo)
	drawService := services.NewDrawService(settingRepo, prizeRepo, recordRepo, campaignTZ)
	authService := services.NewAuthService(cfg)

	// Initialize handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		CampaignHandler: handlers.NewCampaignHandler(campaignService),
		DrawHandler:     handlers.NewDrawHandler(drawService),
		AdminHandler:    handlers.NewAdminHandler(campaignService, drawService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
