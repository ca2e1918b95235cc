package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akashasahu07/Linkedin-Clone/config"
	"github.com/akashasahu07/Linkedin-Clone/database"
	"github.com/akashasahu07/Linkedin-Clone/handlers"
	"github.com/akashasahu07/Linkedin-Clone/middleware"
	"github.com/akashasahu07/Linkedin-Clone/routes"
	"github.com/akashasahu07/Linkedin-Clone/store"
	"github.com/akashasahu07/Linkedin-Clone/token"
)

func main() {
	log.Println("Starting Linkedin-Clone API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	var db *database.DB
	var dbErr error
	for i := 1; i <= 3; i++ {
		if db, dbErr = database.Connect(cfg.MongoURI, cfg.DatabaseName); dbErr != nil {
			log.Printf("MongoDB connection attempt %d failed: %v", i, dbErr)
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}
	defer db.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create indexes: ", err)
	}

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ===== WIRING =====
	users := store.NewUsers(db.Users)
	posts := store.NewPosts(db.Posts)
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	handler := handlers.New(users, posts, tokens)

	router := routes.SetupRouter(handler, middleware.RequireAuth(tokens, users), cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped gracefully")
}
