package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumecoach-api/internal/config"
	"github.com/yourusername/resumecoach-api/internal/handler"
	"github.com/yourusername/resumecoach-api/internal/middleware"
	"github.com/yourusername/resumecoach-api/internal/repository"
	"github.com/yourusername/resumecoach-api/internal/service"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("Starting ResumeCoach API")

	// ── Database ─────────────────────────────────────────
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Database connected")

	// ── Repositories ─────────────────────────────────────
	userRepo := repository.NewUserRepo(pool)
	resumeRepo := repository.NewResumeRepo(pool)
	chatRepo := repository.NewChatRepo(pool)
	interviewRepo := repository.NewInterviewRepo(pool)

	// ── Services ─────────────────────────────────────────
	contextSvc := service.NewContextService(resumeRepo)
	gemini := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)

	// ── Middleware ────────────────────────────────────────
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(userRepo, authMiddleware)
	resumeHandler := handler.NewResumeHandler(userRepo, resumeRepo, chatRepo)
	chatHandler := handler.NewChatHandler(chatRepo, contextSvc, gemini)
	interviewHandler := handler.NewInterviewHandler(interviewRepo, resumeRepo, contextSvc, gemini)

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check (unauthenticated)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "resumecoach-api",
			"time":    time.Now().UTC(),
		})
	})

	// ── Public Routes ────────────────────────────────────
	auth := r.Group("/api/auth", rateLimiter.Limit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// ── Authenticated Routes ─────────────────────────────
	api := r.Group("/api", authMiddleware.Authenticate(), rateLimiter.Limit())
	{
		// Account
		api.GET("/auth/me", authHandler.Me)
		api.PUT("/auth/me", authHandler.UpdateMe)

		// Resumes
		api.POST("/resume/upload", resumeHandler.Upload)
		api.GET("/resume", resumeHandler.List)
		api.GET("/resume/latest", resumeHandler.Latest)
		api.GET("/resume/:id", resumeHandler.Get)
		api.DELETE("/resume/:id", resumeHandler.Delete)

		// Chat
		api.POST("/chat", chatHandler.Send)
		api.GET("/chat/history", chatHandler.History)
		api.DELETE("/chat/history", chatHandler.Clear)

		// Interview practice
		api.POST("/interview/start", interviewHandler.Start)
		api.GET("/interview", interviewHandler.List)
		api.GET("/interview/:id", interviewHandler.Get)
		api.POST("/interview/:id/answer", interviewHandler.Answer)
		api.POST("/interview/:id/complete", interviewHandler.Complete)
	}

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Bool("ai", gemini.Available()).Msg("ResumeCoach API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

// requestLogger logs every request with zerolog
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= 400 {
			event = log.Warn()
		}
		if status >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("ip", c.ClientIP()).
			Msg(fmt.Sprintf("%s %s", c.Request.Method, path))
	}
}
