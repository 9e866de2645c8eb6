// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/dcastano/go-shopchat/internal/config"
	"github.com/dcastano/go-shopchat/internal/database"
	"github.com/dcastano/go-shopchat/internal/handlers"
	"github.com/dcastano/go-shopchat/internal/middleware"
	"github.com/dcastano/go-shopchat/internal/repository/chatmemory"
	"github.com/dcastano/go-shopchat/internal/repository/product"
	"github.com/dcastano/go-shopchat/internal/services"
	"github.com/dcastano/go-shopchat/internal/services/ai"
)

const serviceVersion = "1.0.0"

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("go_shopchat")

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}
	if err := database.SeedProducts(db); err != nil {
		log.Fatalf("DB Seed Error: %v", err)
	}

	// --- Repositories ---
	productRepo := product.NewProductRepository(db)
	chatRepo := chatmemory.NewChatRepository(db)

	// --- Services ---
	aiConfig := ai.DefaultConfig()
	aiConfig.APIKey = cfg.AIAPIKey
	aiConfig.BaseURL = cfg.AIBaseURL
	aiConfig.Model = cfg.AIModel

	aiProvider, err := ai.NewOpenAIProvider(aiConfig)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize AI provider: %v", err)
	}

	productService := services.NewProductService(productRepo, logger)

	chatService, err := services.NewChatService(chatRepo, productRepo, aiProvider, cfg.HistoryWindow, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize chat service: %v", err)
	}

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	chatHandler := handlers.NewChatHandler(chatService)
	healthHandler := handlers.NewHealthHandler(aiProvider, serviceVersion)

	// --- Router Setup ---
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Bienvenido a la API del E-commerce con Chat Inteligente","version":"` + serviceVersion + `"}`))
	}).Methods("GET")
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	// --- Product Routes ---
	r.HandleFunc("/products", productHandler.GetAllProducts).Methods("GET")
	r.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	r.HandleFunc("/products/available", productHandler.GetAvailableProducts).Methods("GET")
	r.HandleFunc("/products/search", productHandler.SearchProducts).Methods("GET")
	r.HandleFunc("/products/{id:[0-9]+}", productHandler.GetProductByID).Methods("GET")
	r.HandleFunc("/products/{id:[0-9]+}", productHandler.UpdateProduct).Methods("PUT")
	r.HandleFunc("/products/{id:[0-9]+}", productHandler.DeleteProduct).Methods("DELETE")
	r.HandleFunc("/products/{id:[0-9]+}/stock", productHandler.AdjustStock).Methods("PATCH")

	// --- Chat Routes ---
	r.HandleFunc("/chat", chatHandler.ProcessMessage).Methods("POST")
	r.HandleFunc("/chat/history/{session_id}", chatHandler.GetHistory).Methods("GET")
	r.HandleFunc("/chat/history/{session_id}", chatHandler.ClearHistory).Methods("DELETE")

	// --- Server Configuration ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	logger.Info("server starting",
		"port", cfg.ServerPort,
		"environment", cfg.Environment,
		"model", cfg.AIModel,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
