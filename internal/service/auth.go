package service

import (
	"FoodTracker/internal/repo"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenRequest - тело POST /jwt.
type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// AuthService решает, какую идентичность вшить в токен.
type AuthService struct {
	users  repo.UserRepository
	tokens *TokenService
	strict bool
}

// NewAuthService создаёт сервис выдачи токенов. В strict-режиме токен выдаётся
// только зарегистрированному email (и с верным паролем, если он задан).
func NewAuthService(users repo.UserRepository, tokens *TokenService, strict bool) *AuthService {
	return &AuthService{users: users, tokens: tokens, strict: strict}
}

// IssueToken выдаёт токен. userId берётся только из учётной записи с этим email;
// присланный клиентом userId игнорируется. Для незарегистрированного email
// идентичностью становится сам email, поэтому email в форме UUID не принимается.
func (s *AuthService) IssueToken(ctx context.Context, req TokenRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return "", validationError("Email is required")
	}
	if isID(req.Email) {
		return "", validationError("Invalid email")
	}

	userID := ""
	u, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if s.strict && u.Password != "" {
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
				return "", ErrBadCredentials
			}
		}
		userID = u.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		if s.strict {
			return "", ErrBadCredentials
		}
	default:
		return "", err
	}

	return s.tokens.Issue(req.Email, userID)
}
