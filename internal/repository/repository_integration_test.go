//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/deppfellow/pokemon-review/internal/database"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/seed"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

// setupRepositories starts PostgreSQL, applies the embedded migrations and
// returns repositories bound to it.
func setupRepositories(t *testing.T) *repository.Repositories {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pokemon"),
		postgres.WithUsername("pokemon"),
		postgres.WithPassword("pokemon"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := zerolog.Nop()
	require.NoError(t, database.MigrateURL(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.NewRepositoriesFromPool(pool)
}

type fixture struct {
	country  model.Country
	owner    model.Owner
	category model.Category
	pokemon  model.Pokemon
	reviewer model.Reviewer
}

func seedFixture(t *testing.T, ctx context.Context, repos *repository.Repositories) fixture {
	t.Helper()
	f := fixture{
		country:  model.Country{Name: "Kanto"},
		category: model.Category{Name: "Electric"},
		pokemon:  model.Pokemon{Name: "Pikachu", BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)},
		reviewer: model.Reviewer{FirstName: "Gary", LastName: "Oak"},
	}

	ok, err := repos.Country.Create(ctx, &f.country)
	require.NoError(t, err)
	require.True(t, ok)

	f.owner = model.Owner{FirstName: "Ash", LastName: "Ketchum", Gym: "Pallet", CountryID: f.country.ID}
	ok, err = repos.Owner.Create(ctx, &f.owner)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repos.Category.Create(ctx, &f.category)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repos.Pokemon.CreateWithRelations(ctx, f.owner.ID, f.category.ID, &f.pokemon)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repos.Reviewer.Create(ctx, &f.reviewer)
	require.NoError(t, err)
	require.True(t, ok)

	return f
}

func TestRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	repos := setupRepositories(t)
	ctx := context.Background()
	f := seedFixture(t, ctx, repos)

	t.Run("category uniqueness ignores case and whitespace", func(t *testing.T) {
		dup := &model.Category{Name: " electric "}
		ok, err := repos.Category.Create(ctx, dup)
		assert.False(t, ok)
		assert.Equal(t, sqlerr.UniqueViolation, sqlerr.MapCode(pgCode(t, err)))

		list, err := repos.Category.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("lists are ordered by id", func(t *testing.T) {
		for _, name := range []string{"Water", "Fire", "Grass"} {
			ok, err := repos.Category.Create(ctx, &model.Category{Name: name})
			require.NoError(t, err)
			require.True(t, ok)
		}

		first, err := repos.Category.List(ctx)
		require.NoError(t, err)
		second, err := repos.Category.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		for i := 1; i < len(first); i++ {
			assert.Less(t, first[i-1].ID, first[i].ID)
		}
	})

	t.Run("cross entity reads", func(t *testing.T) {
		byCategory, err := repos.Category.ListPokemon(ctx, f.category.ID)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, "Pikachu", byCategory[0].Name)

		byOwner, err := repos.Owner.ListPokemon(ctx, f.owner.ID)
		require.NoError(t, err)
		assert.Len(t, byOwner, 1)

		owners, err := repos.Owner.ListByPokemon(ctx, f.pokemon.ID)
		require.NoError(t, err)
		require.Len(t, owners, 1)
		assert.Equal(t, f.owner.ID, owners[0].ID)

		country, err := repos.Country.GetByOwner(ctx, f.owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "Kanto", country.Name)

		residents, err := repos.Country.ListOwners(ctx, f.country.ID)
		require.NoError(t, err)
		assert.Len(t, residents, 1)

		byName, err := repos.Pokemon.GetByName(ctx, " PIKACHU")
		require.NoError(t, err)
		assert.Equal(t, f.pokemon.ID, byName.ID)
	})

	t.Run("missing rows", func(t *testing.T) {
		_, err := repos.Category.GetByID(ctx, 999)
		assert.ErrorIs(t, err, pgx.ErrNoRows)

		found, err := repos.Owner.Exists(ctx, 999)
		require.NoError(t, err)
		assert.False(t, found)

		ok, err := repos.Reviewer.Update(ctx, &model.Reviewer{ID: 999, FirstName: "No", LastName: "One"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("category with pokemon cannot be deleted", func(t *testing.T) {
		ok, err := repos.Category.Delete(ctx, f.category.ID)
		assert.False(t, ok)

		var sqlErr *pgconn.PgError
		require.True(t, errors.As(err, &sqlErr))
		assert.True(t, sqlerr.ConvertPgError(sqlErr).IsDeleteRestricted())
	})

	t.Run("ratings and pokemon cascade", func(t *testing.T) {
		for i, rating := range []int{3, 4, 5} {
			review := &model.Review{
				Title:      []string{"Meh", "Good", "Great"}[i],
				Rating:     rating,
				PokemonID:  f.pokemon.ID,
				ReviewerID: f.reviewer.ID,
			}
			ok, err := repos.Review.Create(ctx, review)
			require.NoError(t, err)
			require.True(t, ok)
		}

		ratings, err := repos.Pokemon.Ratings(ctx, f.pokemon.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5}, ratings)

		ok, err := repos.Pokemon.Delete(ctx, f.pokemon.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		reviews, err := repos.Review.ListByPokemon(ctx, f.pokemon.ID)
		require.NoError(t, err)
		assert.Empty(t, reviews)

		// The category is free once its only pokemon is gone.
		ok, err = repos.Category.Delete(ctx, f.category.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reviewer cascade", func(t *testing.T) {
		pokemon := &model.Pokemon{Name: "Eevee", BirthDate: time.Now().UTC()}
		category := &model.Category{Name: "Normal"}
		_, err := repos.Category.Create(ctx, category)
		require.NoError(t, err)
		_, err = repos.Pokemon.CreateWithRelations(ctx, f.owner.ID, category.ID, pokemon)
		require.NoError(t, err)

		_, err = repos.Review.Create(ctx, &model.Review{Title: "Cute", Rating: 5, PokemonID: pokemon.ID, ReviewerID: f.reviewer.ID})
		require.NoError(t, err)

		ok, err := repos.Reviewer.Delete(ctx, f.reviewer.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		reviews, err := repos.Review.ListByReviewer(ctx, f.reviewer.ID)
		require.NoError(t, err)
		assert.Empty(t, reviews)
	})

	t.Run("pokemon create rolls back on missing owner", func(t *testing.T) {
		pokemon := &model.Pokemon{Name: "Mew", BirthDate: time.Now().UTC()}
		ok, err := repos.Pokemon.CreateWithRelations(ctx, 999, 999, pokemon)
		assert.False(t, ok)
		assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.MapCode(pgCode(t, err)))
		assert.Zero(t, pokemon.ID)

		_, err = repos.Pokemon.GetByName(ctx, "Mew")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func pgCode(t *testing.T, err error) string {
	t.Helper()
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr), "expected *pgconn.PgError, got %v", err)
	return pgErr.Code
}

func TestSeedDataset(t *testing.T) {
	repos := setupRepositories(t)
	ctx := context.Background()

	logger := zerolog.Nop()
	services := service.NewCatalogServices(&logger, service.StoresFrom(repos), nil)
	seeder := seed.NewSeeder(services, &logger)

	ds, err := seed.Default()
	require.NoError(t, err)

	res, err := seeder.Apply(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Reviews)

	again, err := seeder.Apply(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, &seed.Result{}, again)

	squirtle, err := repos.Pokemon.GetByName(ctx, "squirtle")
	require.NoError(t, err)

	ratings, err := repos.Pokemon.Ratings(ctx, squirtle.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{5, 5, 1}, ratings)
}
