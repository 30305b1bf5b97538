package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/config"
	apphttp "github.com/zone3577/Test-Web/internal/http"
	"github.com/zone3577/Test-Web/internal/mailer"
	"github.com/zone3577/Test-Web/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.FromEnv()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	if cfg.Admin.JWTSecret == "" {
		log.Fatal("ADMIN_JWT_SECRET environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Notifications degrade to polling without pub/sub; keep serving.
		logger.Warn("redis unavailable", slog.String("addr", cfg.Redis.Addr), slog.Any("err", err))
	}

	store, err := storage.FromConfig(context.Background(), cfg.Store)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", slog.String("driver", store.Driver))

	var mail mailer.Service
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.Warn("SMTP_HOST unset, outgoing mail is discarded")
		mail = &mailer.Mock{}
	}

	r := apphttp.NewRouter(apphttp.Deps{
		Logger: logger,
		DB:     db,
		Redis:  rdb,
		Config: cfg,
		Store:  store.Storage,
		Mailer: mail,
	})

	logger.Info("listening", slog.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
