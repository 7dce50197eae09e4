package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
)

// NoteRepository defines note persistence operations. Methods taking a string
// id fail with ErrInvalidID when the id is not a valid object id, which is
// distinct from ErrNoteNotFound.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	FindByID(ctx context.Context, id string) (*model.Note, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Note, error)
	List(ctx context.Context) ([]model.Note, error)
	UpdateByID(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error)
	DeleteByID(ctx context.Context, id string) error
}

type noteRepository struct {
	coll *mongo.Collection
}

// NewNoteRepository builds a Mongo-backed note repository.
func NewNoteRepository(db *mongo.Database) NoteRepository {
	return &noteRepository{coll: db.Collection("notes")}
}

// Create inserts the note, assigning its id and timestamps.
func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	note.ID = primitive.NewObjectID()
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	if _, err := r.coll.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// FindByID retrieves a note by its id.
func (r *noteRepository) FindByID(ctx context.Context, id string) (*model.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var note model.Note
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find note %s: %w", id, err)
	}
	return &note, nil
}

// FindByIDs retrieves the notes matching the given ids in one query. Missing
// ids are skipped, not reported.
func (r *noteRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Note, error) {
	if len(ids) == 0 {
		return []model.Note{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find notes by ids: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// List retrieves all notes.
func (r *noteRepository) List(ctx context.Context) ([]model.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// UpdateByID applies the provided fields and returns the updated note.
func (r *noteRepository) UpdateByID(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Important != nil {
		set["important"] = *update.Important
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note model.Note
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update note %s: %w", id, err)
	}
	return &note, nil
}

// DeleteByID removes the note. Deleting an absent note is not an error.
func (r *noteRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

// parseID validates the store's accepted identifier format.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return oid, nil
}
