package store

import (
	"context"
	"fmt"

	"impacttracker/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend serves the donation flow straight from Postgres.
type Backend struct {
	charities   *CharityRepository
	stories     *StoryRepository
	suggestions *SuggestionRepository
}

func NewBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{
		charities:   NewCharityRepository(pool),
		stories:     NewStoryRepository(pool),
		suggestions: NewSuggestionRepository(pool),
	}
}

// FetchCharities returns every charity ordered by latitude with its stories attached.
func (b *Backend) FetchCharities(ctx context.Context) ([]*types.CharityWithStories, error) {
	charities, err := b.charities.AllCharities(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(charities))
	for i, c := range charities {
		ids[i] = c.ID
	}

	stories, err := b.stories.StoriesByCharityIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load charity stories: %w", err)
	}

	return groupStories(charities, stories), nil
}

func (b *Backend) SubmitSuggestion(ctx context.Context, suggestion *types.CharitySuggestion) error {
	return b.suggestions.CreateSuggestion(ctx, suggestion)
}
