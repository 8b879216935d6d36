package store

import (
	"context"
	"fmt"
	"time"

	"impacttracker/internal/utils"
	"impacttracker/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const suggestionTableName = schemaName + ".charity_suggestions"

var suggestionColumns = utils.StructTagValues(types.CharitySuggestion{})

type SuggestionRepository struct {
	pool *pgxpool.Pool
}

func NewSuggestionRepository(pool *pgxpool.Pool) *SuggestionRepository {
	return &SuggestionRepository{pool: pool}
}

func insertSuggestionQuery(s *types.CharitySuggestion) (string, []any, error) {
	return psql().
		Insert(suggestionTableName).
		Columns("id", "user_name", "user_email", "charity_name", "reason", "created_at").
		Values(s.ID, s.UserName, s.UserEmail, s.CharityName, s.Reason, s.CreatedAt).
		ToSql()
}

func (r *SuggestionRepository) CreateSuggestion(ctx context.Context, suggestion *types.CharitySuggestion) error {
	suggestion.ID = utils.NanoID()
	suggestion.CreatedAt = time.Now()

	query, args, err := insertSuggestionQuery(suggestion)
	if err != nil {
		return fmt.Errorf("build suggestion insert: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert suggestion: %w", err)
	}

	return nil
}

func (r *SuggestionRepository) LatestSuggestions(ctx context.Context, limit uint64) ([]*types.CharitySuggestion, error) {
	query, args, err := psql().
		Select(suggestionColumns...).
		From(suggestionTableName).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest suggestions query: %w", err)
	}

	out := make([]*types.CharitySuggestion, 0)
	if err := pgxscan.Select(ctx, r.pool, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select latest suggestions: %w", err)
	}

	return out, nil
}
