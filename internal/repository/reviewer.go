package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const reviewersTable = "reviewers"

type ReviewerRepository struct {
	pool *pgxpool.Pool
}

func NewReviewerRepository(pool *pgxpool.Pool) *ReviewerRepository {
	return &ReviewerRepository{pool: pool}
}

func (r *ReviewerRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, reviewersTable, id)
}

func (r *ReviewerRepository) GetByID(ctx context.Context, id int) (*model.Reviewer, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, first_name, last_name FROM reviewers WHERE id = $1`, id)
	return collectOne[model.Reviewer](reviewersTable, "get", rows, err)
}

func (r *ReviewerRepository) List(ctx context.Context) ([]model.Reviewer, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, first_name, last_name FROM reviewers ORDER BY id`)
	return collect[model.Reviewer](reviewersTable, "list", rows, err)
}

func (r *ReviewerRepository) Create(ctx context.Context, reviewer *model.Reviewer) (bool, error) {
	return insertReturningID(ctx, r.pool, reviewersTable,
		`INSERT INTO reviewers (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		&reviewer.ID, reviewer.FirstName, reviewer.LastName)
}

func (r *ReviewerRepository) Update(ctx context.Context, reviewer *model.Reviewer) (bool, error) {
	return execAffected(ctx, r.pool, reviewersTable, "update",
		`UPDATE reviewers SET first_name = $2, last_name = $3 WHERE id = $1`,
		reviewer.ID, reviewer.FirstName, reviewer.LastName)
}

// Delete removes the reviewer together with every review they wrote.
func (r *ReviewerRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted := false
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE reviewer_id = $1`, id); err != nil {
			return fmt.Errorf("%s: delete reviews: %w", reviewersTable, err)
		}

		ok, err := execAffected(ctx, tx, reviewersTable, "delete",
			`DELETE FROM reviewers WHERE id = $1`, id)
		deleted = ok
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
