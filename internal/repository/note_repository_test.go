package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
)

// testDatabase returns a database handle without touching a server. The
// driver connects lazily, and every case below fails id validation before
// issuing an operation.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	assert.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client.Database("notes_test")
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := parseID(oid.Hex())
	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)

	for _, id := range []string{"", "123", "not-an-object-id", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := parseID(id)
		assert.ErrorIs(t, err, apperrors.ErrInvalidID, "id %q", id)
	}
}

func TestNoteRepository_MalformedID(t *testing.T) {
	repo := NewNoteRepository(testDatabase(t))
	ctx := context.Background()

	tests := []struct {
		name string
		op   func(id string) error
	}{
		{
			name: "FindByID",
			op: func(id string) error {
				_, err := repo.FindByID(ctx, id)
				return err
			},
		},
		{
			name: "UpdateByID",
			op: func(id string) error {
				content := "updated"
				_, err := repo.UpdateByID(ctx, id, model.NoteUpdate{Content: &content})
				return err
			},
		},
		{
			name: "DeleteByID",
			op: func(id string) error {
				return repo.DeleteByID(ctx, id)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op("not-an-object-id")
			assert.ErrorIs(t, err, apperrors.ErrInvalidID)
			assert.NotErrorIs(t, err, apperrors.ErrNoteNotFound)
		})
	}
}
