package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skillpath/career-advisor/internal/config"
	"skillpath/career-advisor/internal/handlers"
	"skillpath/career-advisor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	advisorService := services.NewAdvisorService(
		geminiService,
		cfg.Gemini.Model,
		cfg.Retry.MaxAttempts,
		cfg.Retry.Delay,
	)
	summarizerService := services.NewSummarizerService(geminiService, cfg.Gemini.SummaryModel)
	resumeRenderer := services.NewResumeRenderer()
	pdfExporter := services.NewChromePDFExporter(cfg.PDF.ChromePath)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	chatHandler := handlers.NewChatHandler(advisorService)
	recommendationHandler := handlers.NewRecommendationHandler(advisorService)
	certificationHandler := handlers.NewCertificationHandler(advisorService)
	jobHandler := handlers.NewJobHandler(advisorService)
	interviewHandler := handlers.NewInterviewHandler(advisorService)
	resumeHandler := handlers.NewResumeHandler(summarizerService, resumeRenderer, pdfExporter)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Career Advisor API",
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/chat", chatHandler.HandleChat)
	api.Post("/recommendations", recommendationHandler.HandleRecommendations)
	api.Post("/certifications", certificationHandler.HandleCertifications)
	api.Post("/job-listings", jobHandler.HandleJobListings)
	api.Post("/interview-questions", interviewHandler.HandleInterviewQuestions)
	api.Post("/resume-builder/summary", resumeHandler.HandleSummary)
	api.Post("/resume-builder/html", resumeHandler.HandleHTML)
	api.Post("/resume-builder/pdf", resumeHandler.HandlePDF)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Career Advisor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/chat",
				"POST /api/recommendations",
				"POST /api/certifications",
				"POST /api/job-listings",
				"POST /api/interview-questions",
				"POST /api/resume-builder/summary",
				"POST /api/resume-builder/html",
				"POST /api/resume-builder/pdf",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
