package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/smementor/internal/client/api"
	"github.com/dmitrijs2005/smementor/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestorScore_Get(t *testing.T) {
	fb := &fakeBackend{score: &models.InvestorScore{ReadinessLevel: models.ReadinessReady}}
	s := NewInvestorScoreService(fb)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ready", got.ReadinessLevel.Label())
}

func TestInvestorScore_GetNotFoundIsEmpty(t *testing.T) {
	fb := &fakeBackend{scoreErr: &api.Error{StatusCode: 404, Detail: "Score not found"}}

	got, err := NewInvestorScoreService(fb).Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvestorScore_GetOtherErrorsSurface(t *testing.T) {
	fb := &fakeBackend{scoreErr: fmt.Errorf("wrapped: %w", api.ErrUnavailable)}

	_, err := NewInvestorScoreService(fb).Get(context.Background())
	require.ErrorIs(t, err, api.ErrUnavailable)
}

func TestInvestorScore_Recalculate(t *testing.T) {
	fb := &fakeBackend{recalcScore: &models.InvestorScore{OverallScore: 81}}

	got, err := NewInvestorScoreService(fb).Recalculate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(81), got.OverallScore)
}
