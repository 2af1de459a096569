package service

import (
	"FoodTracker/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestAuthService_IssueToken(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenService("secret", time.Hour)

	t.Run("email is required", func(t *testing.T) {
		svc := NewAuthService(new(mockUserRepo), tokens, false)
		_, err := svc.IssueToken(ctx, TokenRequest{Email: "  "})
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.EqualError(t, err, "Email is required")
	})

	t.Run("registered email binds user id", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "x@y.com").Return(&model.User{ID: "uid-1", Email: "x@y.com"}, nil).Once()
		svc := NewAuthService(m, tokens, false)

		tok, err := svc.IssueToken(ctx, TokenRequest{Email: "x@y.com", UserID: "spoofed"})
		require.NoError(t, err)
		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "uid-1", claims.UserID)
		m.AssertExpectations(t)
	})

	t.Run("unknown email trusts claims", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, gorm.ErrRecordNotFound).Once()
		svc := NewAuthService(m, tokens, false)

		tok, err := svc.IssueToken(ctx, TokenRequest{Email: "a@b.com"})
		require.NoError(t, err)
		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", claims.Identity())
	})

	t.Run("unknown email ignores client user id", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "evil@x.com").Return(nil, gorm.ErrRecordNotFound).Once()
		svc := NewAuthService(m, tokens, false)

		victim := newID()
		tok, err := svc.IssueToken(ctx, TokenRequest{Email: "evil@x.com", UserID: victim})
		require.NoError(t, err)
		claims, err := tokens.Verify(tok)
		require.NoError(t, err)
		assert.Empty(t, claims.UserID)
		assert.Equal(t, "evil@x.com", claims.Identity())
		m.AssertExpectations(t)
	})

	t.Run("uuid-shaped email is rejected", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewAuthService(m, tokens, false)

		_, err := svc.IssueToken(ctx, TokenRequest{Email: newID()})
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.EqualError(t, err, "Invalid email")
		m.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("strict rejects unknown email", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, gorm.ErrRecordNotFound).Once()
		svc := NewAuthService(m, tokens, true)

		_, err := svc.IssueToken(ctx, TokenRequest{Email: "a@b.com"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("strict checks password", func(t *testing.T) {
		hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "x@y.com").Return(&model.User{ID: "uid-1", Password: string(hash)}, nil)
		svc := NewAuthService(m, tokens, true)

		_, err := svc.IssueToken(ctx, TokenRequest{Email: "x@y.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrBadCredentials)

		tok, err := svc.IssueToken(ctx, TokenRequest{Email: "x@y.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, tok)
	})

	t.Run("repo failure bubbles up", func(t *testing.T) {
		m := new(mockUserRepo)
		m.On("GetByEmail", mock.Anything, "x@y.com").Return(nil, assert.AnError).Once()
		svc := NewAuthService(m, tokens, false)

		_, err := svc.IssueToken(ctx, TokenRequest{Email: "x@y.com"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
