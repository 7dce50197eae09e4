package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/serhatprogramming/notes-backend/internal/errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := primitive.NewObjectID().Hex()

	token, err := service.GenerateToken("root", userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ValidateToken_Failures(t *testing.T) {
	service := NewJWTService("test-secret")

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username: "root",
		UserID:   primitive.NewObjectID().Hex(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	otherSecret, err := NewJWTService("other-secret").GenerateToken("root", primitive.NewObjectID().Hex())
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage string", token: "not-a-token"},
		{name: "empty string", token: ""},
		{name: "signed with a different secret", token: otherSecret},
		{name: "unsigned token", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		})
	}
}

func TestJWTService_TokenMayCarryEmptyUserID(t *testing.T) {
	// Signature verification and user resolution are separate checks; a signed
	// token without a user id validates here and is rejected downstream.
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("root", "")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Empty(t, claims.UserID)
}
