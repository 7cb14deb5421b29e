// @title           Quotation Management RAG API
// @version         1.0
// @description     API for managing quotations with vector embeddings and natural language Q&A.

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "backend/docs"
	"backend/handlers"
	"backend/services"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// External collaborators: embedding model and vector database. Both are
	// constructed once and shared across requests.
	embedder := services.NewEmbeddingsClientFromEnv()
	store, err := services.NewChromaStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to connect to vector database: %v", err)
	}
	svc := services.NewEmbeddingService(embedder, store)
	log.Printf("Initialized embedding service with model: %s", embedder.ModelName())

	// Optional Postgres mirror of quotation_items, used by the DB sync endpoint.
	if storage.DBConfigured() {
		storage.InitGormDB()
		db := storage.InitDB()

		if spec := os.Getenv("SYNC_CRON"); spec != "" {
			c := cron.New()
			_, err := c.AddFunc(spec, func() {
				count, err := handlers.RunDBSync(db, svc)
				if err != nil {
					log.Printf("Scheduled DB sync failed: %v", err)
					return
				}
				log.Printf("Scheduled DB sync indexed %d quotation items", count)
			})
			if err != nil {
				log.Fatalf("Failed to schedule DB sync cron job: %v", err)
			}
			c.Start()
			defer c.Stop()
		}
	}

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	// ==================== 1. SERVICE META ====================
	r.GET("/", handlers.Root())
	r.GET("/health", handlers.HealthCheck())
	r.GET("/stats", handlers.GetStats(svc))

	// ==================== 2. QUOTATIONS ====================
	r.POST("/quotations/add", handlers.AddQuotation(svc))
	r.POST("/quotations/bulk-add", handlers.BulkAddQuotations(svc))
	r.POST("/quotations/import-excel", handlers.ImportQuotationsExcel(svc))
	r.POST("/quotations/sync-from-db", handlers.SyncQuotationsFromDB(svc))
	r.DELETE("/quotations/:item_id", handlers.DeleteQuotation(svc))

	// ==================== 3. QUERY ====================
	r.POST("/query", handlers.QueryQuotations(svc))
	r.GET("/query-simple", handlers.QuerySimple(svc))

	// ==================== 4. DOCS ====================
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Quotation RAG API listening on :%s", port)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
