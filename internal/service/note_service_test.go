package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
	"github.com/serhatprogramming/notes-backend/internal/model"
)

// MockNoteRepository is a mock implementation of NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, id string) (*model.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Note, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) List(ctx context.Context) ([]model.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateByID(ctx context.Context, id string, update model.NoteUpdate) (*model.Note, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestNoteService_Create(t *testing.T) {
	ownerID := primitive.NewObjectID()

	tests := []struct {
		name          string
		ownerID       string
		setupMock     func(*MockNoteRepository, *MockUserRepository)
		expectedError error
		createCalled  bool
	}{
		{
			name:    "successful create",
			ownerID: ownerID.Hex(),
			setupMock: func(mNote *MockNoteRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, ownerID.Hex()).Return(&model.User{
					ID:       ownerID,
					Username: "root",
				}, nil)
				mNote.On("Create", mock.Anything, mock.AnythingOfType("*model.Note")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Note).ID = primitive.NewObjectID()
				}).Return(nil)
				mUser.On("AppendNote", mock.Anything, ownerID, mock.AnythingOfType("primitive.ObjectID")).Return(nil)
			},
			expectedError: nil,
			createCalled:  true,
		},
		{
			name:    "owner does not resolve",
			ownerID: primitive.NewObjectID().Hex(),
			setupMock: func(mNote *MockNoteRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrTokenInvalid,
			createCalled:  false,
		},
		{
			name:    "malformed owner id in token",
			ownerID: "not-an-object-id",
			setupMock: func(mNote *MockNoteRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, "not-an-object-id").Return(nil, apperrors.ErrInvalidID)
			},
			expectedError: apperrors.ErrTokenInvalid,
			createCalled:  false,
		},
		{
			name:    "owner back-reference write fails",
			ownerID: ownerID.Hex(),
			setupMock: func(mNote *MockNoteRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, ownerID.Hex()).Return(&model.User{ID: ownerID}, nil)
				mNote.On("Create", mock.Anything, mock.AnythingOfType("*model.Note")).Return(nil)
				mUser.On("AppendNote", mock.Anything, ownerID, mock.Anything).Return(assert.AnError)
			},
			expectedError: assert.AnError,
			createCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNoteRepo := new(MockNoteRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockNoteRepo, mockUserRepo)

			service := NewNoteService(mockNoteRepo, mockUserRepo)

			note, err := service.Create(context.Background(), tt.ownerID, "HTML is easy", true)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, note)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, note)
				assert.Equal(t, "HTML is easy", note.Content)
				assert.True(t, note.Important)
				assert.Equal(t, ownerID, note.UserID)
			}

			if !tt.createCalled {
				mockNoteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockNoteRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestNoteService_ListWithOwners(t *testing.T) {
	rootID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()

	mockNoteRepo := new(MockNoteRepository)
	mockUserRepo := new(MockUserRepository)

	mockNoteRepo.On("List", mock.Anything).Return([]model.Note{
		{ID: primitive.NewObjectID(), Content: "HTML is easy", Important: true, UserID: rootID},
		{ID: primitive.NewObjectID(), Content: "Browser can execute only JavaScript", Important: false, UserID: rootID},
		{ID: primitive.NewObjectID(), Content: "orphaned", UserID: ghostID},
	}, nil)

	// Two distinct owners referenced across three notes: one batched lookup.
	mockUserRepo.On("FindByIDs", mock.Anything, mock.MatchedBy(func(ids []primitive.ObjectID) bool {
		return len(ids) == 2
	})).Return([]model.User{
		{ID: rootID, Username: "root", Name: "Superuser"},
	}, nil).Once()

	service := NewNoteService(mockNoteRepo, mockUserRepo)

	notes, err := service.ListWithOwners(context.Background())

	assert.NoError(t, err)
	assert.Len(t, notes, 3)

	assert.Equal(t, "HTML is easy", notes[0].Content)
	assert.True(t, notes[0].Important)
	assert.NotNil(t, notes[0].User)
	assert.Equal(t, "root", notes[0].User.Username)
	assert.Equal(t, "Superuser", notes[0].User.Name)

	assert.NotNil(t, notes[1].User)
	assert.Equal(t, "root", notes[1].User.Username)

	// An owner that no longer resolves leaves the note without owner details.
	assert.Nil(t, notes[2].User)

	mockNoteRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestNoteService_ListWithOwners_NoNotes(t *testing.T) {
	mockNoteRepo := new(MockNoteRepository)
	mockUserRepo := new(MockUserRepository)

	mockNoteRepo.On("List", mock.Anything).Return([]model.Note{}, nil)

	service := NewNoteService(mockNoteRepo, mockUserRepo)

	notes, err := service.ListWithOwners(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, notes)
	mockUserRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}
