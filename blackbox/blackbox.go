// Package blackbox is the client side of the gamified puzzle unlock: list
// the ordered questions, submit one answer at a time, react to the returned
// correctness/secret pair. No puzzle logic lives on the client.
package blackbox

import (
	"context"
	"errors"
	"strings"

	"github.com/dugodofficials-cpu/customer-app-sub000/api"
	"github.com/dugodofficials-cpu/customer-app-sub000/notify"
)

type Service struct {
	api    *api.Client
	notify notify.Notifier
}

func NewService(client *api.Client, n notify.Notifier) *Service {
	return &Service{api: client, notify: n}
}

// State fetches the question list and server-derived progress counts.
func (s *Service) State(ctx context.Context) (*api.BlackBoxState, error) {
	return s.api.BlackBoxQuestions(ctx)
}

// Submit sends one answer. A correct answer surfaces the unlocked secret.
func (s *Service) Submit(ctx context.Context, questionID, answer string) (*api.BlackBoxResult, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		s.notify.Error("Please enter an answer")
		return nil, errors.New("answer is required")
	}

	result, err := s.api.SubmitBlackBoxAnswer(ctx, questionID, answer)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			s.notify.Error(apiErr.Message)
		} else {
			s.notify.Error("Failed to submit answer. Please try again.")
		}
		return nil, err
	}

	if result.Correct {
		s.notify.Info("Correct! A secret has been unlocked.")
	} else {
		s.notify.Info("Not quite. Try again.")
	}
	return result, nil
}
