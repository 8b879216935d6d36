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

const charityTableName = schemaName + ".charities"

var charityColumns = utils.StructTagValues(types.Charity{})

type CharityRepository struct {
	pool *pgxpool.Pool
}

func NewCharityRepository(pool *pgxpool.Pool) *CharityRepository {
	return &CharityRepository{pool: pool}
}

func allCharitiesQuery() (string, []any, error) {
	return psql().
		Select(charityColumns...).
		From(charityTableName).
		OrderBy("latitude ASC").
		ToSql()
}

// AllCharities returns every charity ordered by latitude
func (r *CharityRepository) AllCharities(ctx context.Context) ([]*types.Charity, error) {
	query, args, err := allCharitiesQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to generate charities query: %w", err)
	}

	var charities = make([]*types.Charity, 0)
	err = pgxscan.Select(ctx, r.pool, &charities, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch charities: %w", err)
	}

	return charities, nil
}

func upsertCharityQuery(charity *types.Charity) (string, []any, error) {
	charityMap := utils.StructToMap(charity)

	return psql().
		Insert(charityTableName).
		SetMap(charityMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(withoutKeys(charityMap, "id", "created_at"))).
		ToSql()
}

func (r *CharityRepository) UpsertCharity(ctx context.Context, charity *types.Charity) error {
	if charity.CreatedAt.IsZero() {
		charity.CreatedAt = time.Now()
	}

	query, args, err := upsertCharityQuery(charity)
	if err != nil {
		return fmt.Errorf("failed to generate upsert query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert charity")
}

func (r *CharityRepository) DeleteCharity(ctx context.Context, id string) error {
	query, args, err := psql().
		Delete(charityTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete charity")
}
