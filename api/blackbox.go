package api

import (
	"context"
	"net/http"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

type BlackBoxState struct {
	Questions []models.BlackBoxQuestion `json:"questions" validate:"dive"`
	Progress  models.BlackBoxProgress   `json:"progress"`
}

// BlackBoxResult is the server's verdict for one submitted answer. Secret is
// only set when the answer was correct.
type BlackBoxResult struct {
	Correct bool   `json:"correct"`
	Secret  string `json:"secret,omitempty"`
}

// BlackBoxQuestions fetches the ordered question list plus server-derived
// progress counts.
func (c *Client) BlackBoxQuestions(ctx context.Context) (*BlackBoxState, error) {
	var state BlackBoxState
	if err := c.do(ctx, http.MethodGet, "/blackbox/questions", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SubmitBlackBoxAnswer submits one (questionId, answer) pair.
func (c *Client) SubmitBlackBoxAnswer(ctx context.Context, questionID, answer string) (*BlackBoxResult, error) {
	body := map[string]string{"questionId": questionID, "answer": answer}
	var result BlackBoxResult
	if err := c.do(ctx, http.MethodPost, "/blackbox/answer", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
