package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/serhatprogramming/notes-backend/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/serhatprogramming/notes-backend/internal/auth"
	"github.com/serhatprogramming/notes-backend/internal/config"
	"github.com/serhatprogramming/notes-backend/internal/db"
	"github.com/serhatprogramming/notes-backend/internal/handler"
	"github.com/serhatprogramming/notes-backend/internal/repository"
	"github.com/serhatprogramming/notes-backend/internal/router"
	"github.com/serhatprogramming/notes-backend/internal/service"
)

// @title Notes API
// @version 1.0
// @description Note-taking backend with per-user notes and JWT authentication.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Initialize repositories
	noteRepo := repository.NewNoteRepository(database)
	userRepo := repository.NewUserRepository(database)

	// Registration depends on the unique username index.
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, noteRepo)
	noteService := service.NewNoteService(noteRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	noteHandler := handler.NewNoteHandler(noteService)

	// Register routes
	router.Register(
		e,
		noteHandler,
		userHandler,
		authHandler,
		jwtService,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("Server running on port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
