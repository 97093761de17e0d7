package services

import (
	"context"
	"time"

	"tillpoint/internal/adapters/persistence/models"
	"tillpoint/internal/adapters/persistence/repositories"
)

// TillService handles till drawer records
type TillService struct {
	tillRepo repositories.TillRepository
}

// NewTillService creates a new till service
func NewTillService(tillRepo repositories.TillRepository) *TillService {
	return &TillService{tillRepo: tillRepo}
}

// OpenTillInput represents a drawer sign-in
type OpenTillInput struct {
	Amount float64 `json:"amount" validate:"required,gte=0"`
}

// ListTillsOutput represents paginated till listing output
type ListTillsOutput struct {
	Tills []*models.Till `json:"tills"`
	Total int64          `json:"total"`
}

// TillSummary represents an aggregate over till records
type TillSummary struct {
	Since time.Time `json:"since"`
	Count int64     `json:"count"`
	Total float64   `json:"total"`
}

// Open records a drawer sign-in for the authenticated principal
func (s *TillService) Open(ctx context.Context, userID uint, username string, input *OpenTillInput) (*models.Till, error) {
	till := &models.Till{
		UserID:   userID,
		Username: username,
		Amount:   input.Amount,
	}

	if err := s.tillRepo.Create(ctx, till); err != nil {
		return nil, err
	}
	return till, nil
}

// List lists till records with pagination
func (s *TillService) List(ctx context.Context, offset, limit int) (*ListTillsOutput, error) {
	tills, total, err := s.tillRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ListTillsOutput{Tills: tills, Total: total}, nil
}

// TodaySummary aggregates till records since local midnight
func (s *TillService) TodaySummary(ctx context.Context) (*TillSummary, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, total, err := s.tillRepo.SummarySince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	return &TillSummary{Since: midnight, Count: count, Total: total}, nil
}
