package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/smementor/internal/client/models"
)

// MentorEndpoints groups /api/ai-mentor.
type MentorEndpoints struct {
	c *Client
}

func (e *MentorEndpoints) Chat(ctx context.Context, message string, chatCtx models.ChatContext) (*models.ChatMessage, error) {
	in := models.ChatRequest{Message: message, Context: chatCtx}
	var out models.ChatMessage
	if err := e.c.do(ctx, http.MethodPost, "/api/ai-mentor/chat", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *MentorEndpoints) GetChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := e.c.do(ctx, http.MethodGet, "/api/ai-mentor/chat/history", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *MentorEndpoints) GetInvestorScore(ctx context.Context) (*models.InvestorScore, error) {
	var out models.InvestorScore
	if err := e.c.do(ctx, http.MethodGet, "/api/ai-mentor/investor-score", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *MentorEndpoints) RecalculateScore(ctx context.Context) (*models.InvestorScore, error) {
	var out models.InvestorScore
	if err := e.c.do(ctx, http.MethodPost, "/api/ai-mentor/investor-score/recalculate", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
