package server

import (
	"context"

	"impacttracker/pkg/types"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	FetchCharitiesFunc   func(ctx context.Context) ([]*types.CharityWithStories, error)
	SubmitSuggestionFunc func(ctx context.Context, suggestion *types.CharitySuggestion) error

	FetchCalls  int
	SubmitCalls int
}

func (m *MockBackend) FetchCharities(ctx context.Context) ([]*types.CharityWithStories, error) {
	m.FetchCalls++
	if m.FetchCharitiesFunc != nil {
		return m.FetchCharitiesFunc(ctx)
	}
	return nil, nil
}

func (m *MockBackend) SubmitSuggestion(ctx context.Context, suggestion *types.CharitySuggestion) error {
	m.SubmitCalls++
	if m.SubmitSuggestionFunc != nil {
		return m.SubmitSuggestionFunc(ctx, suggestion)
	}
	return nil
}
