package main

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/fadilmartias/sustainability-judge/internal/domain/fiber/handler"
	"github.com/fadilmartias/sustainability-judge/internal/middleware"
	"github.com/fadilmartias/sustainability-judge/internal/model"
	"github.com/fadilmartias/sustainability-judge/internal/repository"
	"github.com/fadilmartias/sustainability-judge/internal/service"
	"github.com/fadilmartias/sustainability-judge/internal/usecase"
	"github.com/fadilmartias/sustainability-judge/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.FiberErrorHandler,
	})
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	// Use middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, appConfig.RateLimitWindow))

	lists, history := openStores(appConfig)

	gemini, err := service.NewGeminiService(ctx, config.LoadGeminiConfig())
	if err != nil {
		log.Printf("Gemini unavailable: %v", err)
	}
	llm := selectLLM(appConfig.LLMProvider, gemini)

	// a nil *GeminiService must not become a non-nil interface
	var embedder service.EmbeddingServiceInterface
	if gemini != nil {
		embedder = gemini
	}

	judgeUC := usecase.NewJudgeUsecase(llm, embedder, history, appConfig.SimilarityThreshold)
	listUC := usecase.NewListUsecase(lists, history)
	summaryUC := usecase.NewSummaryUsecase(llm, lists)

	handler.NewSystemHandler(appConfig).RegisterRoutes(app)
	handler.NewJudgeHandler(judgeUC).RegisterRoutes(app)
	handler.NewListHandler(listUC).RegisterRoutes(app)
	handler.NewSummaryHandler(summaryUC, listUC).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
			if gemini != nil {
				if errs, open := gemini.GetCircuitBreakerStatus(); open {
					log.Printf("Gemini circuit breaker open after %d consecutive errors", errs)
				}
			}
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func selectLLM(provider string, gemini *service.GeminiService) service.LLMServiceInterface {
	switch strings.ToLower(provider) {
	case "openrouter":
		cfg := config.LoadOpenRouterConfig()
		if cfg.APIKey == "" {
			log.Fatal("LLM_PROVIDER is openrouter but OPENROUTER_API_KEY is not set")
		}
		log.Printf("Using OpenRouter model %s", cfg.Model)
		return service.NewOpenRouterService(cfg)
	case "", "gemini":
		if gemini == nil {
			log.Fatal("LLM_PROVIDER is gemini but the Gemini client could not be created")
		}
		log.Printf("Using Gemini model %s", gemini.Model)
		return gemini
	default:
		log.Fatalf("Unknown LLM_PROVIDER %q", provider)
		return nil
	}
}

// openStores returns Postgres repositories when a database is configured and
// the JSON file store otherwise.
func openStores(appConfig *config.AppConfig) (repository.ListRepository, repository.HistoryRepository) {
	if !config.LoadDBConfig().Enabled() {
		log.Printf("DB_HOST not set, storing data in %s", appConfig.DataFile)
		store := repository.NewFileStore(appConfig.DataFile)
		return store, store
	}
	db := ConnectDB()
	return repository.NewGormListRepository(db), repository.NewGormHistoryRepository(db)
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("could not enable pgvector: ", err)
	}
	err = db.AutoMigrate(&model.ListItem{}, &model.JudgmentHistory{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
