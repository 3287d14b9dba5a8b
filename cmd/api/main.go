package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectz/internal/config"
	"github.com/iamasit07/connectz/internal/events"
	"github.com/iamasit07/connectz/internal/repository/ledger"
	"github.com/iamasit07/connectz/internal/repository/redis"
	"github.com/iamasit07/connectz/internal/service/cleanup"
	"github.com/iamasit07/connectz/internal/service/replay"
	transportHttp "github.com/iamasit07/connectz/internal/transport/http"
	"github.com/iamasit07/connectz/internal/transport/http/middleware"
	"github.com/iamasit07/connectz/internal/transport/websocket"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Verdict ledger (optional)
	var verdictLedger replay.Ledger
	var cleanupWorker *cleanup.Worker
	if cfg.DatabaseURL != "" {
		db, err := ledger.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.ConnMaxLifetime())
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := ledger.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		repo := ledger.NewVerdictRepo(db, cfg.DBDriver)
		verdictLedger = repo
		cleanupWorker = cleanup.NewWorker(repo, cfg.LedgerRetentionDays)
	} else {
		log.Println("[LEDGER] DATABASE_URL not set, verdicts will not be recorded")
	}

	// 2. Verdict cache (optional)
	var cache replay.CacheRepository
	if cfg.RedisURL != "" {
		if client, ok := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); ok {
			defer client.Close()
			cache = redis.NewRedisCache(client)
		}
	}

	// 3. Verdict events
	producer := events.NewProducer(cfg.KafkaEnabled, cfg.KafkaBroker, cfg.KafkaTopic)
	defer producer.Close()

	// 4. Services and workers
	replayService := replay.NewService(verdictLedger, cache, producer, cfg.CacheTTL())
	if cleanupWorker != nil {
		cleanupWorker.Start()
		defer cleanupWorker.Stop()
	}

	// 5. Handlers
	connManager := websocket.NewConnectionManager()
	replayHandler := transportHttp.NewReplayHandler(replayService, cfg.MaxUploadBytes)
	wsHandler := websocket.NewHandler(connManager, cfg.JWTSecret, cfg.MaxUploadBytes)
	healthHandler := &transportHttp.HealthHandler{
		LedgerEnabled: verdictLedger != nil,
		CacheEnabled:  cache != nil,
		EventsEnabled: producer.Enabled(),
		Streams:       connManager.Count,
	}

	if cfg.JWTSecret == "" {
		log.Println("[AUTH] JWT_SECRET not set, API routes are open")
	}

	// 6. Setup Gin Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/api/health", healthHandler.Health)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.POST("/replays", replayHandler.Upload)
		protected.GET("/replays", replayHandler.List)
		protected.GET("/replays/:id", replayHandler.Get)
	}

	// WebSocket Route (auth handled inside the WS handler itself)
	router.GET("/ws/replay", gin.WrapF(wsHandler.HandleWebSocket))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connManager.CloseAll()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
