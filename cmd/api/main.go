package main

import (
	"context"
	"time"

	"todoapp/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todoapp/internal/adapter/db"
	httpadapter "todoapp/internal/adapter/http"
	"todoapp/internal/adapter/http/handlers"
	httpmiddleware "todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/views"
	"todoapp/internal/adapter/session"
	"todoapp/internal/app/service"
	"todoapp/internal/config"
	"todoapp/internal/core/ports"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	store := newSessionStore(cfg, logger)
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL)
	if cfg.SessionSecret == "change-me" {
		logger.Warn("SESSION_SECRET is not set, using the development default")
	}

	authService := service.NewAuthService(dbadapter.NewUserRepository(db), cfg.BcryptCost)
	taskService := service.NewTaskService(dbadapter.NewTaskRepository(db))

	templates, err := views.Load()
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}
	r.SetHTMLTemplate(templates)
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))

	httpadapter.RegisterRoutes(r, sessions, httpmiddleware.NewRateLimiter(cfg.LoginRatePerMin, cfg.LoginBurst), httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, store),
		Auth:   handlers.NewAuthHandler(authService, sessions, cfg.SessionSecure),
		Tasks:  handlers.NewTaskHandler(taskService),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("db_driver", cfg.DbDriver), zap.String("session_backend", cfg.SessionBackend))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newSessionStore(cfg *config.Config, logger *zap.Logger) ports.SessionStore {
	if cfg.SessionBackend != config.SessionBackendRedis {
		return session.NewMemoryStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := session.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return session.NewRedisStore(rdb)
}
