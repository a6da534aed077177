// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every repository follows the same contract: Exists, GetByID, List ordered
// by id, and Create/Update/Delete reporting whether the store changed a row.
// Lookups of a missing row return an error wrapping pgx.ErrNoRows.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/pokemon-review/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Category *CategoryRepository
	Country  *CountryRepository
	Owner    *OwnerRepository
	Pokemon  *PokemonRepository
	Review   *ReviewRepository
	Reviewer *ReviewerRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesFromPool(s.DB.Pool)
}

// NewRepositoriesFromPool builds the repositories over an existing pool.
func NewRepositoriesFromPool(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Category: NewCategoryRepository(pool),
		Country:  NewCountryRepository(pool),
		Owner:    NewOwnerRepository(pool),
		Pokemon:  NewPokemonRepository(pool),
		Review:   NewReviewRepository(pool),
		Reviewer: NewReviewerRepository(pool),
	}
}

func exists(ctx context.Context, pool *pgxpool.Pool, table string, id int) (bool, error) {
	var found bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := pool.QueryRow(ctx, query, id).Scan(&found); err != nil {
		return false, fmt.Errorf("%s: exists %d: %w", table, id, err)
	}
	return found, nil
}

// insertReturningID runs an INSERT ... RETURNING id and stores the id in dst.
func insertReturningID(ctx context.Context, q querier, table, query string, dst *int, args ...any) (bool, error) {
	err := q.QueryRow(ctx, query, args...).Scan(dst)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: create: %w", table, err)
	}
	return true, nil
}

func execAffected(ctx context.Context, q querier, table, op, query string, args ...any) (bool, error) {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %s: %w", table, op, err)
	}
	return tag.RowsAffected() > 0, nil
}

func collect[T any](table, op string, rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", table, op, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", table, op, err)
	}
	return items, nil
}

func collectOne[T any](table, op string, rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", table, op, err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", table, op, err)
	}
	return item, nil
}
