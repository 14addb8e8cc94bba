package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"worker-management/constants"
	"worker-management/controllers"
	"worker-management/infra"
	"worker-management/middlewares"
	"worker-management/repositories"
	"worker-management/services"
	"worker-management/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config, logger *zap.Logger) (*gin.Engine, error) {
	roleRepository := repositories.NewRoleRepository(db)
	roleService := services.NewRoleService(roleRepository)
	roleController := controllers.NewRoleController(roleService, logger)

	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository, roleRepository, cfg.RolesReseedOnMissing, logger)
	userController := controllers.NewUserController(userService, logger)

	authService := services.NewAuthService(cfg.Auth.SecretKey, cfg.Auth.AnonymousRole)
	sessionController := controllers.NewSessionController()

	r := gin.New()
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Logger(logger))
	r.Use(middlewares.Recovery(logger))
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	r.GET("/health", func(ctx *gin.Context) {
		if err := infra.Ping(ctx.Request.Context(), db); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	if err := web.Register(r); err != nil {
		return nil, fmt.Errorf("register ui: %w", err)
	}

	// /api配下はIdentityを解決してからRequestGateで変更系を制限する
	apiRouter := r.Group("/api",
		middlewares.AuthMiddleware(authService, logger),
		middlewares.RequestGate(constants.UsersPath, logger, constants.RoleAdmin),
	)
	userRouter := apiRouter.Group("/users")

	apiRouter.GET("/session", sessionController.Current)
	apiRouter.GET("/roles", roleController.FindAll)

	userRouter.GET("", userController.FindAll)
	userRouter.GET("/:id", userController.FindById)
	userRouter.POST("", userController.Create)
	userRouter.PUT("/:id", userController.Update)
	userRouter.DELETE("/:id", userController.Delete)

	return r, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID"}

	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = allowedOrigins
	return config
}

func initDB(cfg *infra.Config, logger *zap.Logger) *gorm.DB {
	db, err := infra.SetupDB(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database migrated and roles seeded")
	}

	return db
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.LogLevel, cfg.IsProd())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Auth.SecretKey == "" {
		logger.Warn("SECRET_KEY is not set; every caller is treated as anonymous",
			zap.String("anonymous_role", cfg.Auth.AnonymousRole))
	}

	db := initDB(cfg, logger)
	defer infra.CloseDB(db)

	r, err := setupRouter(db, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to setup router", zap.Error(err))
	}

	var handler http.Handler = r
	if cfg.RateLimitPerMinute > 0 {
		handler = httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute)(r)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
