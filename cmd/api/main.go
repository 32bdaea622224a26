package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/biased-app/biased-api/internal/application"
	appanalysis "github.com/biased-app/biased-api/internal/application/analysis"
	"github.com/biased-app/biased-api/internal/config"
	domain "github.com/biased-app/biased-api/internal/domain/analysis"
	aiopenai "github.com/biased-app/biased-api/internal/infra/ai/openai"
	mysqlp "github.com/biased-app/biased-api/internal/infra/db/mysql"
	postgresp "github.com/biased-app/biased-api/internal/infra/db/postgres"
	"github.com/biased-app/biased-api/internal/infra/httpserver"
	minioStore "github.com/biased-app/biased-api/internal/infra/storage"
	"github.com/biased-app/biased-api/internal/middleware"
)

func main() {
	// .env is optional, real env always wins
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal("config load error", zap.Error(err))
	}
	if cfg.AI.APIKey == "" {
		log.Fatal("ai.apiKey (or OPENAI_API_KEY) is required")
	}

	ctx := context.Background()

	// connect record store
	var db *sql.DB
	var repo interface {
		domain.Repository
		EnsureSchema(ctx context.Context) error
	}
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatal("postgres connect error", zap.Error(err))
		}
		repo = postgresp.NewAnalysisRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatal("mysql connect error", zap.Error(err))
		}
		repo = mysqlp.NewAnalysisRepository(db)
	}
	defer db.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("schema init error", zap.Error(err))
	}

	// audio archive is optional; transcription still works without it
	var audio domain.AudioArchive
	if cfg.Minio.Endpoint != "" {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatal("minio init error", zap.Error(err))
		}
		audio = store
	}

	gateway := aiopenai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)

	svc := &appanalysis.Service{
		Gateway: gateway,
		Repo:    repo,
		Audio:   audio,
		Clock:   application.SystemClock{},
		Log:     log,
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	health := middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpserver.NewRouter(svc, limiter, health, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
