package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const categoriesTable = "categories"

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, categoriesTable, id)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
	return collectOne[model.Category](categoriesTable, "get", rows, err)
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	return collect[model.Category](categoriesTable, "list", rows, err)
}

// ListPokemon returns the pokemon linked to a category.
func (r *CategoryRepository) ListPokemon(ctx context.Context, categoryID int) ([]model.Pokemon, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_categories pc ON pc.pokemon_id = p.id
		WHERE pc.category_id = $1
		ORDER BY p.id`, categoryID)
	return collect[model.Pokemon](categoriesTable, "list pokemon", rows, err)
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (bool, error) {
	return insertReturningID(ctx, r.pool, categoriesTable,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		&category.ID, category.Name)
}

func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) (bool, error) {
	return execAffected(ctx, r.pool, categoriesTable, "update",
		`UPDATE categories SET name = $2 WHERE id = $1`,
		category.ID, category.Name)
}

// Delete fails with a foreign key violation while pokemon are linked.
func (r *CategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	return execAffected(ctx, r.pool, categoriesTable, "delete",
		`DELETE FROM categories WHERE id = $1`, id)
}
