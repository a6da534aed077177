package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/model"
)

const pokemonTable = "pokemon"

type PokemonRepository struct {
	pool *pgxpool.Pool
}

func NewPokemonRepository(pool *pgxpool.Pool) *PokemonRepository {
	return &PokemonRepository{pool: pool}
}

func (r *PokemonRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, r.pool, pokemonTable, id)
}

func (r *PokemonRepository) GetByID(ctx context.Context, id int) (*model.Pokemon, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, birth_date FROM pokemon WHERE id = $1`, id)
	return collectOne[model.Pokemon](pokemonTable, "get", rows, err)
}

// GetByName matches names the same way the unique index compares them.
func (r *PokemonRepository) GetByName(ctx context.Context, name string) (*model.Pokemon, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, birth_date
		FROM pokemon
		WHERE lower(btrim(name)) = lower(btrim($1))`, name)
	return collectOne[model.Pokemon](pokemonTable, "get by name", rows, err)
}

func (r *PokemonRepository) List(ctx context.Context) ([]model.Pokemon, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, birth_date FROM pokemon ORDER BY id`)
	return collect[model.Pokemon](pokemonTable, "list", rows, err)
}

// Ratings returns every review rating given to the pokemon.
func (r *PokemonRepository) Ratings(ctx context.Context, pokemonID int) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT rating FROM reviews WHERE pokemon_id = $1 ORDER BY id`, pokemonID)
	if err != nil {
		return nil, fmt.Errorf("%s: ratings: %w", pokemonTable, err)
	}
	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("%s: ratings: %w", pokemonTable, err)
	}
	return ratings, nil
}

// CreateWithRelations inserts the pokemon and links it to one owner and one
// category in a single transaction.
func (r *PokemonRepository) CreateWithRelations(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) (bool, error) {
	created := false
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		ok, err := insertReturningID(ctx, tx, pokemonTable,
			`INSERT INTO pokemon (name, birth_date) VALUES ($1, $2) RETURNING id`,
			&pokemon.ID, pokemon.Name, pokemon.BirthDate)
		if err != nil || !ok {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO pokemon_owners (pokemon_id, owner_id) VALUES ($1, $2)`,
			pokemon.ID, ownerID); err != nil {
			return fmt.Errorf("%s: link owner: %w", pokemonTable, err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO pokemon_categories (pokemon_id, category_id) VALUES ($1, $2)`,
			pokemon.ID, categoryID); err != nil {
			return fmt.Errorf("%s: link category: %w", pokemonTable, err)
		}

		created = true
		return nil
	})
	if err != nil {
		pokemon.ID = 0
		return false, err
	}
	return created, nil
}

func (r *PokemonRepository) Update(ctx context.Context, pokemon *model.Pokemon) (bool, error) {
	return execAffected(ctx, r.pool, pokemonTable, "update",
		`UPDATE pokemon SET name = $2, birth_date = $3 WHERE id = $1`,
		pokemon.ID, pokemon.Name, pokemon.BirthDate)
}

// Delete removes the pokemon's reviews and then the pokemon in one
// transaction. Join rows go with it through ON DELETE CASCADE.
func (r *PokemonRepository) Delete(ctx context.Context, id int) (bool, error) {
	deleted := false
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE pokemon_id = $1`, id); err != nil {
			return fmt.Errorf("%s: delete reviews: %w", pokemonTable, err)
		}

		ok, err := execAffected(ctx, tx, pokemonTable, "delete",
			`DELETE FROM pokemon WHERE id = $1`, id)
		deleted = ok
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
