package store

import (
	"context"
	"fmt"
	"time"

	"impacttracker/internal/utils"
	"impacttracker/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const storyTableName = schemaName + ".charity_stories"

var storyColumns = utils.StructTagValues(types.CharityStory{})

type StoryRepository struct {
	pool *pgxpool.Pool
}

func NewStoryRepository(pool *pgxpool.Pool) *StoryRepository {
	return &StoryRepository{pool: pool}
}

func storiesByCharityIDsQuery(charityIDs []string) (string, []any, error) {
	return psql().
		Select(storyColumns...).
		From(storyTableName).
		Where(sq.Eq{"charity_id": charityIDs}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// StoriesByCharityIDs returns the stories for the given charities, oldest first
func (r *StoryRepository) StoriesByCharityIDs(ctx context.Context, charityIDs []string) ([]*types.CharityStory, error) {
	if len(charityIDs) == 0 {
		return []*types.CharityStory{}, nil
	}

	query, args, err := storiesByCharityIDsQuery(charityIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to generate stories query: %w", err)
	}

	var stories = make([]*types.CharityStory, 0)
	err = pgxscan.Select(ctx, r.pool, &stories, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stories: %w", err)
	}

	return stories, nil
}

// UpsertStory creates or updates a story (insert if not exists, update if exists)
func (r *StoryRepository) UpsertStory(ctx context.Context, story *types.CharityStory) error {
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}

	storyMap := utils.StructToMap(story)

	query, args, err := psql().
		Insert(storyTableName).
		SetMap(storyMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(withoutKeys(storyMap, "id", "created_at"))).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert story: %w", err)
	}

	return nil
}

// DeleteStoriesExcept removes every story whose id is not in keep
func (r *StoryRepository) DeleteStoriesExcept(ctx context.Context, keep []string) (int64, error) {
	builder := psql().Delete(storyTableName)
	if len(keep) > 0 {
		builder = builder.Where(sq.NotEq{"id": keep})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stories: %w", err)
	}

	return tag.RowsAffected(), nil
}

// groupStories attaches stories to their charities, preserving charity order.
func groupStories(charities []*types.Charity, stories []*types.CharityStory) []*types.CharityWithStories {
	byCharity := make(map[string][]*types.CharityStory, len(charities))
	for _, story := range stories {
		byCharity[story.CharityID] = append(byCharity[story.CharityID], story)
	}

	out := make([]*types.CharityWithStories, len(charities))
	for i, charity := range charities {
		s := byCharity[charity.ID]
		if s == nil {
			s = []*types.CharityStory{}
		}
		out[i] = &types.CharityWithStories{Charity: *charity, Stories: s}
	}
	return out
}
