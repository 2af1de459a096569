package service

import (
	"FoodTracker/internal/model"
	"FoodTracker/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// CreateNoteRequest - тело POST /food/{id}/notes.
type CreateNoteRequest struct {
	Text     string `json:"text" validate:"required"`
	PostedBy string `json:"postedBy" validate:"required"`
}

// NoteService - заметки к продуктам. Существование продукта проверяется по addfood.
type NoteService struct {
	notes repo.NoteRepository
	items repo.FoodRepository
	now   func() time.Time
}

func NewNoteService(notes repo.NoteRepository, items repo.FoodRepository) *NoteService {
	return &NoteService{notes: notes, items: items, now: time.Now}
}

func (s *NoteService) Create(ctx context.Context, foodID string, req CreateNoteRequest) (*model.Note, error) {
	if !isID(foodID) {
		return nil, validationError("Invalid food ID")
	}
	req.Text = strings.TrimSpace(req.Text)
	req.PostedBy = strings.TrimSpace(req.PostedBy)
	if err := validate.Struct(req); err != nil {
		return nil, validationError("Text and postedBy are required")
	}
	if _, err := getFood(ctx, s.items, foodID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	n := &model.Note{
		ID:         newID(),
		FoodID:     foodID,
		Text:       req.Text,
		PostedBy:   req.PostedBy,
		PostedDate: now,
		UpdatedAt:  now,
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

func (s *NoteService) List(ctx context.Context, foodID string) ([]model.Note, error) {
	if !isID(foodID) {
		return nil, validationError("Invalid food ID")
	}
	return s.notes.ListByFood(ctx, foodID)
}

// Delete удаляет заметку по id без проверки автора.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if !isID(id) {
		return validationError("Invalid note ID")
	}
	if _, err := s.notes.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("get note: %w", err)
	}
	if _, err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
