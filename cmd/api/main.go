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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/Sushmeta1/Skill-Synch/pkg/validator"

	"github.com/Sushmeta1/Skill-Synch/internal/adapter/handler"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/cache"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/external/speech"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/media"
	"github.com/Sushmeta1/Skill-Synch/internal/infrastructure/storage"
	interviewuse "github.com/Sushmeta1/Skill-Synch/internal/usecase/interview"
	pkgai "github.com/Sushmeta1/Skill-Synch/pkg/ai"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// @title           SkillSync Interview Analysis API
// @version         1.0
// @description     API for analyzing interview practice recordings: audio extraction, transcription, speech/sentiment/content scoring and AI feedback

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize media stage
	log.Println("🎬 Initializing media tools...")
	prober := media.NewProber(&cfg.Media, logger)
	extractor := media.NewExtractor(&cfg.Media, logger)
	if !prober.Available() {
		log.Println("⚠️  ffprobe not found - video metadata will be unavailable")
	}
	if !extractor.Available() {
		log.Println("⚠️  ffmpeg not found - video uploads will fall back to demo analysis")
	}

	// Initialize speech recognition
	log.Println("🎙️ Initializing speech recognition...")
	transcriber := speech.NewTranscriber(&cfg.Speech, extractor, logger)

	// Initialize report cache: Redis when configured, in-memory otherwise
	var reports cache.ReportStore
	if cfg.Redis.Addr != "" {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		reports = redisStore
	} else {
		log.Println("📦 Redis not configured - using in-memory report store")
		reports = cache.NewMemoryStore()
	}

	// Initialize optional recording archive
	var archive *storage.RecordingArchive
	if cfg.Storage.Enabled() {
		log.Println("🗄️  Initializing recording archive...")
		archive, err = storage.NewRecordingArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize recording archive: %v", err)
		}
	} else {
		log.Println("🗄️  Recording archive not configured - uploads are not retained")
	}

	// Initialize analysis service
	log.Println("🧠 Initializing analysis service...")
	validator := interviewuse.NewValidator(prober, &cfg.Upload, logger)
	analysisService := interviewuse.NewAnalysisService(
		validator,
		extractor,
		transcriber,
		reports,
		archive,
		cfg,
		logger,
	)

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)
	if geminiClient.Enabled() {
		log.Println("✅ Gemini AI enabled")
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set - AI feedback runs in demo mode")
	}

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	interviewHandler := handler.NewInterview(analysisService, &cfg.Upload, logger)
	aiController := handler.NewAIController(geminiClient, analysisService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, interviewHandler, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
