package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"formbuilder/internal/cache"
	"formbuilder/internal/config"
	"formbuilder/internal/repository"
	"formbuilder/internal/service"
	"formbuilder/internal/transport/rest"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	formRepo := repository.NewFormRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize caches
	formCache := cache.NewFormCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	formSvc := service.NewFormService(formRepo, responseRepo, formCache)
	responseSvc := service.NewResponseService(responseRepo, formSvc)

	// Create router with container
	container := &rest.Container{
		AuthService:     authSvc,
		FormService:     formSvc,
		ResponseService: responseSvc,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/auth/register")
		log.Println("  POST /api/auth/login")
		log.Println("  POST/GET /api/forms")
		log.Println("  GET/PUT/DELETE /api/forms/{formId}")
		log.Println("  GET  /api/forms/{formId}/render")
		log.Println("  POST/GET /api/forms/{formId}/responses")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
