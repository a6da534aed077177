package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const ownersTable = "owners"

type OwnerRepository struct {
	pool *pgxpool.Pool
}

func NewOwnerRepository(pool *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{pool: pool}
}

func (r *OwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, ownersTable, id)
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int) (*model.Owner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, gym, country_id
		FROM owners
		WHERE id = $1`, id)
	return collectOne[model.Owner](ownersTable, "get", rows, err)
}

func (r *OwnerRepository) List(ctx context.Context) ([]model.Owner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, gym, country_id
		FROM owners
		ORDER BY id`)
	return collect[model.Owner](ownersTable, "list", rows, err)
}

// ListPokemon returns the pokemon an owner holds.
func (r *OwnerRepository) ListPokemon(ctx context.Context, ownerID int) ([]model.Pokemon, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.birth_date
		FROM pokemon p
		JOIN pokemon_owners po ON po.pokemon_id = p.id
		WHERE po.owner_id = $1
		ORDER BY p.id`, ownerID)
	return collect[model.Pokemon](ownersTable, "list pokemon", rows, err)
}

// ListByPokemon returns the owners of a pokemon.
func (r *OwnerRepository) ListByPokemon(ctx context.Context, pokemonID int) ([]model.Owner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.first_name, o.last_name, o.gym, o.country_id
		FROM owners o
		JOIN pokemon_owners po ON po.owner_id = o.id
		WHERE po.pokemon_id = $1
		ORDER BY o.id`, pokemonID)
	return collect[model.Owner](ownersTable, "list by pokemon", rows, err)
}

func (r *OwnerRepository) Create(ctx context.Context, owner *model.Owner) (bool, error) {
	return insertReturningID(ctx, r.pool, ownersTable, `
		INSERT INTO owners (first_name, last_name, gym, country_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		&owner.ID, owner.FirstName, owner.LastName, owner.Gym, owner.CountryID)
}

// Update replaces the names and gym. country_id is left untouched.
func (r *OwnerRepository) Update(ctx context.Context, owner *model.Owner) (bool, error) {
	return execAffected(ctx, r.pool, ownersTable, "update", `
		UPDATE owners
		SET first_name = $2, last_name = $3, gym = $4
		WHERE id = $1`,
		owner.ID, owner.FirstName, owner.LastName, owner.Gym)
}

// Delete fails with a foreign key violation while the owner holds pokemon.
func (r *OwnerRepository) Delete(ctx context.Context, id int) (bool, error) {
	return execAffected(ctx, r.pool, ownersTable, "delete",
		`DELETE FROM owners WHERE id = $1`, id)
}
