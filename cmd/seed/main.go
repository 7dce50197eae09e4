package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/serhatprogramming/notes-backend/internal/config"
	"github.com/serhatprogramming/notes-backend/internal/db"
	"github.com/serhatprogramming/notes-backend/internal/repository"
	"github.com/serhatprogramming/notes-backend/internal/service"
)

const seedUsername = "root"

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Connect to database
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	noteRepo := repository.NewNoteRepository(database)
	userRepo := repository.NewUserRepository(database)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	// Seeding goes through the services so passwords are hashed and notes are
	// linked to their owner exactly as they would be via the API.
	userService := service.NewUserService(userRepo, noteRepo)
	noteService := service.NewNoteService(noteRepo, userRepo)

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "sekret"
	}

	user, err := userService.Register(ctx, seedUsername, "Superuser", password)
	if err != nil {
		log.Fatalf("Failed to create %q user: %v", seedUsername, err)
	}
	log.Printf("Created user %q (%s)", user.Username, user.ID.Hex())

	seedNotes := []struct {
		content   string
		important bool
	}{
		{"HTML is easy", true},
		{"Browser can execute only JavaScript", false},
	}

	for _, n := range seedNotes {
		note, err := noteService.Create(ctx, user.ID.Hex(), n.content, n.important)
		if err != nil {
			log.Fatalf("Failed to create note %q: %v", n.content, err)
		}
		log.Printf("Created note %q (%s)", note.Content, note.ID.Hex())
	}

	log.Println("Seed completed successfully!")
}
