package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
	"github.com/serhatprogramming/notes-backend/internal/repository"
)

const bcryptCost = 10

// UserWithNotes is a user joined with the notes they own.
type UserWithNotes struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name,omitempty"`
	Notes    []UserNote         `json:"notes"`
}

// UserNote is the note projection embedded in user listings.
type UserNote struct {
	ID        primitive.ObjectID `json:"id"`
	Content   string             `json:"content"`
	Important bool               `json:"important"`
}

// UserService handles user registration and listing.
type UserService interface {
	Register(ctx context.Context, username, name, password string) (*model.User, error)
	ListWithNotes(ctx context.Context) ([]UserWithNotes, error)
}

type userService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
}

// NewUserService builds a UserService over the user and note stores.
func NewUserService(userRepo repository.UserRepository, noteRepo repository.NoteRepository) UserService {
	return &userService{
		userRepo: userRepo,
		noteRepo: noteRepo,
	}
}

// Register creates a new user with a hashed password. A taken username fails
// with ErrDuplicateUsername and leaves the store unchanged; the unique index
// backs this check against concurrent registrations.
func (s *userService) Register(ctx context.Context, username, name, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hashedPassword),
		Notes:        []primitive.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListWithNotes returns all users with their owned notes embedded, resolved
// through one batched note lookup.
func (s *userService) ListWithNotes(ctx context.Context) ([]UserWithNotes, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	noteIDs := make([]primitive.ObjectID, 0, len(users))
	for _, u := range users {
		noteIDs = append(noteIDs, u.Notes...)
	}

	byID := make(map[primitive.ObjectID]model.Note, len(noteIDs))
	if len(noteIDs) > 0 {
		notes, err := s.noteRepo.FindByIDs(ctx, noteIDs)
		if err != nil {
			return nil, err
		}
		for _, n := range notes {
			byID[n.ID] = n
		}
	}

	out := make([]UserWithNotes, 0, len(users))
	for _, u := range users {
		item := UserWithNotes{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Notes:    []UserNote{},
		}
		for _, id := range u.Notes {
			note, ok := byID[id]
			if !ok {
				continue
			}
			item.Notes = append(item.Notes, UserNote{
				ID:        note.ID,
				Content:   note.Content,
				Important: note.Important,
			})
		}
		out = append(out, item)
	}
	return out, nil
}
