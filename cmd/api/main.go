package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"samiksha/presentation-evaluator/internal/config"
	"samiksha/presentation-evaluator/internal/handlers"
	"samiksha/presentation-evaluator/internal/repositories"
	"samiksha/presentation-evaluator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := config.InitLogger(cfg)
	log.Info("config loaded")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Info("database connected and migrated")

	// Initialize repositories
	mediaRepo := repositories.NewMediaRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("failed to create upload directory: %v", err)
	}

	ingestor := services.NewMediaIngestorService(storageService, cfg.Storage.MaxFileSize)

	parser, err := services.NewEvaluationParser()
	if err != nil {
		log.Fatalf("failed to compile report schema: %v", err)
	}
	scorer := services.NewScorerService()

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		log,
	)
	if err != nil {
		log.Fatalf("failed to initialize Gemini: %v", err)
	}
	log.Info("gemini client initialized")

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		log,
	)
	if err != nil {
		log.Fatalf("failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("failed to initialize Qdrant collection: %v", err)
	}
	log.Info("qdrant initialized")

	// Initialize similarity indexer
	indexer := services.NewWorker(
		evalRepo,
		geminiService,
		qdrantService,
		cfg.Worker.Concurrency,
		log,
	)

	evaluatorService := services.NewEvaluatorService(
		ingestor,
		mediaRepo,
		evalRepo,
		geminiService,
		parser,
		scorer,
		indexer,
		cfg.Gemini.RequestTimeout,
		log,
	)
	log.Info("evaluator service initialized")

	// Start indexer
	ctx := context.Background()
	indexer.Start(ctx)

	// Initialize handlers
	evaluateHandler := handlers.NewEvaluateHandler(evaluatorService)
	resultHandler := handlers.NewResultHandler(evalRepo, scorer, geminiService, qdrantService)
	rubricHandler := handlers.NewRubricHandler()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Samiksha Presentation Evaluator API",
		// The evaluation pipeline waits on the AI capability, so the write
		// deadline has to outlive the Gemini timeout.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.RequestTimeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Owner-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/evaluations", evaluateHandler.HandleEvaluate)
	api.Get("/evaluations", resultHandler.HandleListResults)
	api.Get("/evaluations/:id", resultHandler.HandleGetResult)
	api.Get("/evaluations/:id/similar", resultHandler.HandleGetSimilar)
	api.Get("/rubric", rubricHandler.HandleGetRubric)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Samiksha Presentation Evaluator API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/evaluations",
				"GET /api/v1/evaluations",
				"GET /api/v1/evaluations/:id",
				"GET /api/v1/evaluations/:id/similar",
				"GET /api/v1/rubric",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		indexer.Stop()
		if err := app.Shutdown(); err != nil {
			log.Errorf("server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
