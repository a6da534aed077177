package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const countriesTable = "countries"

type CountryRepository struct {
	pool *pgxpool.Pool
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

func (r *CountryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, countriesTable, id)
}

func (r *CountryRepository) GetByID(ctx context.Context, id int) (*model.Country, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM countries WHERE id = $1`, id)
	return collectOne[model.Country](countriesTable, "get", rows, err)
}

// GetByOwner returns the country the owner lives in.
func (r *CountryRepository) GetByOwner(ctx context.Context, ownerID int) (*model.Country, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name
		FROM countries c
		JOIN owners o ON o.country_id = c.id
		WHERE o.id = $1`, ownerID)
	return collectOne[model.Country](countriesTable, "get by owner", rows, err)
}

func (r *CountryRepository) List(ctx context.Context) ([]model.Country, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM countries ORDER BY id`)
	return collect[model.Country](countriesTable, "list", rows, err)
}

func (r *CountryRepository) ListOwners(ctx context.Context, countryID int) ([]model.Owner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, gym, country_id
		FROM owners
		WHERE country_id = $1
		ORDER BY id`, countryID)
	return collect[model.Owner](countriesTable, "list owners", rows, err)
}

func (r *CountryRepository) Create(ctx context.Context, country *model.Country) (bool, error) {
	return insertReturningID(ctx, r.pool, countriesTable,
		`INSERT INTO countries (name) VALUES ($1) RETURNING id`,
		&country.ID, country.Name)
}

func (r *CountryRepository) Update(ctx context.Context, country *model.Country) (bool, error) {
	return execAffected(ctx, r.pool, countriesTable, "update",
		`UPDATE countries SET name = $2 WHERE id = $1`,
		country.ID, country.Name)
}

// Delete fails with a foreign key violation while owners live in the country.
func (r *CountryRepository) Delete(ctx context.Context, id int) (bool, error) {
	return execAffected(ctx, r.pool, countriesTable, "delete",
		`DELETE FROM countries WHERE id = $1`, id)
}
