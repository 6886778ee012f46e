package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/smementor/internal/client/api"
	"github.com/dmitrijs2005/smementor/internal/client/models"
)

type InvestorScoreService struct {
	api MentorAPI
}

func NewInvestorScoreService(api MentorAPI) *InvestorScoreService {
	return &InvestorScoreService{api: api}
}

// Get returns (nil, nil) when no score has been calculated yet.
func (s *InvestorScoreService) Get(ctx context.Context) (*models.InvestorScore, error) {
	score, err := s.api.GetInvestorScore(ctx)
	if errors.Is(err, api.ErrNotFound) {
		return nil, nil
	}
	return score, err
}

func (s *InvestorScoreService) Recalculate(ctx context.Context) (*models.InvestorScore, error) {
	return s.api.RecalculateScore(ctx)
}
