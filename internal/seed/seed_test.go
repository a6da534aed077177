package seed_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/pokemon-review/internal/seed"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/deppfellow/pokemon-review/internal/service/servicetest"
)

func newSeeder() (*seed.Seeder, *service.Services) {
	logger := zerolog.Nop()
	services := service.NewCatalogServices(&logger, servicetest.NewStore().Stores(), nil)
	return seed.NewSeeder(services, &logger), services
}

func TestDefaultDataset(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	assert.Len(t, ds.Countries, 3)
	assert.Len(t, ds.Categories, 3)
	assert.Len(t, ds.Owners, 3)
	assert.Len(t, ds.Reviewers, 3)
	assert.Len(t, ds.Pokemon, 3)
	assert.Len(t, ds.Reviews, 9)
	assert.Equal(t, "Pikachu", ds.Pokemon[0].Name)
}

func TestParseRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "owner country",
			data: "owners:\n  - first_name: Ash\n    last_name: Ketchum\n    country: Johto\n",
			want: `owner "Ketchum": unknown country "Johto"`,
		},
		{
			name: "pokemon category",
			data: "countries: [Kanto]\nowners:\n  - {first_name: Ash, last_name: Ketchum, country: Kanto}\n" +
				"pokemon:\n  - {name: Eevee, birth_date: 2000-01-01, owner: Ketchum, category: Normal}\n",
			want: `pokemon "Eevee": unknown category "Normal"`,
		},
		{
			name: "pokemon birth date",
			data: "countries: [Kanto]\ncategories: [Normal]\nowners:\n  - {first_name: Ash, last_name: Ketchum, country: Kanto}\n" +
				"pokemon:\n  - {name: Eevee, birth_date: soon, owner: Ketchum, category: Normal}\n",
			want: `pokemon "Eevee": invalid birth_date`,
		},
		{
			name: "review reviewer",
			data: "countries: [Kanto]\ncategories: [Normal]\nowners:\n  - {first_name: Ash, last_name: Ketchum, country: Kanto}\n" +
				"pokemon:\n  - {name: Eevee, birth_date: 2000-01-01, owner: Ketchum, category: Normal}\n" +
				"reviews:\n  - {title: Cute, rating: 4, pokemon: Eevee, reviewer: Oak}\n",
			want: `review "Cute": unknown reviewer "Oak"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApply(t *testing.T) {
	seeder, services := newSeeder()
	ctx := context.Background()

	ds, err := seed.Default()
	require.NoError(t, err)

	res, err := seeder.Apply(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, &seed.Result{
		Countries:  3,
		Categories: 3,
		Owners:     3,
		Reviewers:  3,
		Pokemon:    3,
		Reviews:    9,
	}, res)

	pikachu, err := services.Pokemon.GetByName(ctx, "Pikachu")
	require.NoError(t, err)

	owners, err := services.Owner.ListByPokemon(ctx, pikachu.ID)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "London", owners[0].LastName)

	rating, err := services.Pokemon.Rating(ctx, pikachu.ID)
	require.NoError(t, err)
	assert.Equal(t, "3.6666666666666667", rating.Rating.String())
}

func TestApplyIsIdempotent(t *testing.T) {
	seeder, services := newSeeder()
	ctx := context.Background()

	ds, err := seed.Default()
	require.NoError(t, err)

	_, err = seeder.Apply(ctx, ds)
	require.NoError(t, err)

	res, err := seeder.Apply(ctx, ds)
	require.NoError(t, err)
	assert.Equal(t, &seed.Result{}, res)

	reviews, err := services.Review.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 9)
}
