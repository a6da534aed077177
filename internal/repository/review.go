package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const reviewsTable = "reviews"

const reviewColumns = `id, title, text, rating, pokemon_id, reviewer_id`

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, reviewsTable, id)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int) (*model.Review, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	return collectOne[model.Review](reviewsTable, "get", rows, err)
}

func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY id`)
	return collect[model.Review](reviewsTable, "list", rows, err)
}

func (r *ReviewRepository) ListByPokemon(ctx context.Context, pokemonID int) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE pokemon_id = $1 ORDER BY id`, pokemonID)
	return collect[model.Review](reviewsTable, "list by pokemon", rows, err)
}

func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID int) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE reviewer_id = $1 ORDER BY id`, reviewerID)
	return collect[model.Review](reviewsTable, "list by reviewer", rows, err)
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (bool, error) {
	return insertReturningID(ctx, r.pool, reviewsTable, `
		INSERT INTO reviews (title, text, rating, pokemon_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		&review.ID, review.Title, review.Text, review.Rating, review.PokemonID, review.ReviewerID)
}

// Update replaces title, text and rating. The pokemon and reviewer are kept.
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) (bool, error) {
	return execAffected(ctx, r.pool, reviewsTable, "update", `
		UPDATE reviews
		SET title = $2, text = $3, rating = $4
		WHERE id = $1`,
		review.ID, review.Title, review.Text, review.Rating)
}

func (r *ReviewRepository) Delete(ctx context.Context, id int) (bool, error) {
	return execAffected(ctx, r.pool, reviewsTable, "delete",
		`DELETE FROM reviews WHERE id = $1`, id)
}
