package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
	"github.com/serhatprogramming/notes-backend/internal/repository"
)

// NoteWithOwner is a note joined with its owner's public fields.
type NoteWithOwner struct {
	ID        primitive.ObjectID `json:"id"`
	Content   string             `json:"content"`
	Important bool               `json:"important"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	User      *NoteOwner         `json:"user,omitempty"`
}

// NoteOwner is the owner projection embedded in note listings.
type NoteOwner struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name,omitempty"`
}

// NoteService exposes the note CRUD operations.
type NoteService interface {
	ListWithOwners(ctx context.Context) ([]NoteWithOwner, error)
	Get(ctx context.Context, id string) (*model.Note, error)
	Create(ctx context.Context, ownerID, content string, important bool) (*model.Note, error)
	Update(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error)
	Delete(ctx context.Context, id string) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

// NewNoteService builds a NoteService over the note and user stores.
func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

// ListWithOwners returns all notes with the owner's username and name
// embedded, resolved through one batched user lookup.
func (s *noteService) ListWithOwners(ctx context.Context) ([]NoteWithOwner, error) {
	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]primitive.ObjectID, 0, len(notes))
	seen := make(map[primitive.ObjectID]struct{}, len(notes))
	for _, n := range notes {
		if _, ok := seen[n.UserID]; ok {
			continue
		}
		seen[n.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, n.UserID)
	}

	owners := make(map[primitive.ObjectID]model.User, len(ownerIDs))
	if len(ownerIDs) > 0 {
		users, err := s.userRepo.FindByIDs(ctx, ownerIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.ID] = u
		}
	}

	out := make([]NoteWithOwner, 0, len(notes))
	for _, n := range notes {
		item := NoteWithOwner{
			ID:        n.ID,
			Content:   n.Content,
			Important: n.Important,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		}
		if owner, ok := owners[n.UserID]; ok {
			item.User = &NoteOwner{
				ID:       owner.ID,
				Username: owner.Username,
				Name:     owner.Name,
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// Get retrieves a single note by id.
func (s *noteService) Get(ctx context.Context, id string) (*model.Note, error) {
	return s.noteRepo.FindByID(ctx, id)
}

// Create resolves the acting user, persists the note, then appends the note
// reference to the owner. The two writes are independent single-document
// updates; a fault between them leaves a note without a back-reference.
func (s *noteService) Create(ctx context.Context, ownerID, content string, important bool) (*model.Note, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if errors.Is(err, apperrors.ErrUserNotFound) || errors.Is(err, apperrors.ErrInvalidID) {
		return nil, apperrors.ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}

	note := &model.Note{
		Content:   content,
		Important: important,
		UserID:    owner.ID,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendNote(ctx, owner.ID, note.ID); err != nil {
		return nil, err
	}

	return note, nil
}

// Update applies a partial update and returns the updated note.
func (s *noteService) Update(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	return s.noteRepo.UpdateByID(ctx, id, update)
}

// Delete removes the note at id; deleting an absent note succeeds.
func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.noteRepo.DeleteByID(ctx, id)
}
