package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/service"
	"github.com/deppfellow/pokemon-review/internal/service/servicetest"
)

type recordingNotifier struct {
	reviews []model.Review
	err     error
}

func (n *recordingNotifier) NotifyReviewSubmitted(_ context.Context, review *model.Review) error {
	n.reviews = append(n.reviews, *review)
	return n.err
}

type fixture struct {
	store    *servicetest.Store
	notifier *recordingNotifier
	category *service.CategoryService
	country  *service.CountryService
	owner    *service.OwnerService
	pokemon  *service.PokemonService
	review   *service.ReviewService
	reviewer *service.ReviewerService
}

func newFixture() *fixture {
	logger := zerolog.Nop()
	store := servicetest.NewStore()
	notifier := &recordingNotifier{}

	return &fixture{
		store:    store,
		notifier: notifier,
		category: service.NewCategoryService(&logger, store.Categories()),
		country:  service.NewCountryService(&logger, store.Countries(), store.Owners()),
		owner:    service.NewOwnerService(&logger, store.Owners(), store.Countries()),
		pokemon:  service.NewPokemonService(&logger, store.Pokemon(), store.Owners(), store.Categories()),
		review:   service.NewReviewService(&logger, store.Reviews(), store.Pokemon(), store.Reviewers(), notifier),
		reviewer: service.NewReviewerService(&logger, store.Reviewers(), store.Reviews()),
	}
}

// seed creates a country, an owner, a category, a pokemon and a reviewer.
func (f *fixture) seed(t *testing.T) (owner *model.Owner, category *model.Category, pokemon *model.Pokemon, reviewer *model.Reviewer) {
	t.Helper()
	ctx := context.Background()

	country, err := f.country.Create(ctx, &model.CreateCountryRequest{Name: "Kanto"})
	require.NoError(t, err)
	owner, err = f.owner.Create(ctx, &model.CreateOwnerRequest{CountryID: country.ID, FirstName: "Ash", LastName: "Ketchum"})
	require.NoError(t, err)
	category, err = f.category.Create(ctx, &model.CreateCategoryRequest{Name: "Electric"})
	require.NoError(t, err)
	pokemon, err = f.pokemon.Create(ctx, &model.CreatePokemonRequest{
		OwnerID:    owner.ID,
		CategoryID: category.ID,
		Name:       "Pikachu",
		BirthDate:  time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	reviewer, err = f.reviewer.Create(ctx, &model.CreateReviewerRequest{FirstName: "Gary", LastName: "Oak"})
	require.NoError(t, err)
	return owner, category, pokemon, reviewer
}

func requireHTTPError(t *testing.T, err error, status int, code string) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
	return httpErr
}

func TestCategoryService_CreateRejectsDuplicateNames(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	fire, err := f.category.Create(ctx, &model.CreateCategoryRequest{Name: "Fire"})
	require.NoError(t, err)
	assert.Equal(t, 1, fire.ID)

	_, err = f.category.Create(ctx, &model.CreateCategoryRequest{Name: "fire "})
	httpErr := requireHTTPError(t, err, http.StatusUnprocessableEntity, "CATEGORY_ALREADY_EXISTS")
	assert.Equal(t, "Category with this name already exists", httpErr.Message)

	all, err := f.category.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Category{{ID: 1, Name: "Fire"}}, all)
}

func TestCategoryService_GetMissing(t *testing.T) {
	f := newFixture()

	_, err := f.category.Get(context.Background(), 42)
	httpErr := requireHTTPError(t, err, http.StatusNotFound, "CATEGORY_NOT_FOUND")
	assert.Equal(t, "Category not found", httpErr.Message)
}

func TestCategoryService_UpdateIDMismatch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.category.Create(ctx, &model.CreateCategoryRequest{Name: "Fire"})
	require.NoError(t, err)

	err = f.category.Update(ctx, &model.UpdateCategoryRequest{PathID: 1, ID: 2, Name: "Water"})
	requireHTTPError(t, err, http.StatusBadRequest, "ID_MISMATCH")

	err = f.category.Update(ctx, &model.UpdateCategoryRequest{PathID: 9, ID: 9, Name: "Water"})
	requireHTTPError(t, err, http.StatusNotFound, "CATEGORY_NOT_FOUND")

	require.NoError(t, f.category.Update(ctx, &model.UpdateCategoryRequest{PathID: 1, ID: 1, Name: " Water "}))
	got, err := f.category.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Water", got.Name)
}

func TestCategoryService_DeleteInUse(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, category, pokemon, _ := f.seed(t)

	err := f.category.Delete(ctx, category.ID)
	requireHTTPError(t, err, http.StatusConflict, "CATEGORY_IN_USE")

	listed, err := f.category.ListPokemon(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Pokemon{*pokemon}, listed)

	_, err = f.category.ListPokemon(ctx, 99)
	requireHTTPError(t, err, http.StatusNotFound, "CATEGORY_NOT_FOUND")
}

func TestCountryService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, _, _, _ := f.seed(t)

	country, err := f.country.GetByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kanto", country.Name)

	_, err = f.country.GetByOwner(ctx, 77)
	requireHTTPError(t, err, http.StatusNotFound, "OWNER_NOT_FOUND")

	owners, err := f.country.ListOwners(ctx, country.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Owner{*owner}, owners)

	err = f.country.Delete(ctx, country.ID)
	requireHTTPError(t, err, http.StatusConflict, "COUNTRY_IN_USE")

	empty, err := f.country.Create(ctx, &model.CreateCountryRequest{Name: "Johto"})
	require.NoError(t, err)
	require.NoError(t, f.country.Delete(ctx, empty.ID))
	_, err = f.country.Get(ctx, empty.ID)
	requireHTTPError(t, err, http.StatusNotFound, "COUNTRY_NOT_FOUND")
}

func TestOwnerService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, _, pokemon, _ := f.seed(t)

	_, err := f.owner.Create(ctx, &model.CreateOwnerRequest{CountryID: 404, FirstName: "Misty", LastName: "Waterflower"})
	requireHTTPError(t, err, http.StatusNotFound, "COUNTRY_NOT_FOUND")

	pokemonOf, err := f.owner.ListPokemon(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Pokemon{*pokemon}, pokemonOf)

	owners, err := f.owner.ListByPokemon(ctx, pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Owner{*owner}, owners)

	none, err := f.owner.ListByPokemon(ctx, 1234)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, f.owner.Update(ctx, &model.UpdateOwnerRequest{PathID: owner.ID, ID: owner.ID, FirstName: "Satoshi", LastName: "Ketchum", Gym: "Pallet"}))
	updated, err := f.owner.Get(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Satoshi", updated.FirstName)
	assert.Equal(t, owner.CountryID, updated.CountryID)

	err = f.owner.Delete(ctx, owner.ID)
	requireHTTPError(t, err, http.StatusConflict, "OWNER_IN_USE")
}

func TestPokemonService_CreateChecksRelations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, category, _, _ := f.seed(t)
	born := time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)

	_, err := f.pokemon.Create(ctx, &model.CreatePokemonRequest{OwnerID: 50, CategoryID: category.ID, Name: "Eevee", BirthDate: born})
	requireHTTPError(t, err, http.StatusNotFound, "OWNER_NOT_FOUND")

	_, err = f.pokemon.Create(ctx, &model.CreatePokemonRequest{OwnerID: owner.ID, CategoryID: 50, Name: "Eevee", BirthDate: born})
	requireHTTPError(t, err, http.StatusNotFound, "CATEGORY_NOT_FOUND")

	_, err = f.pokemon.Create(ctx, &model.CreatePokemonRequest{OwnerID: owner.ID, CategoryID: category.ID, Name: " PIKACHU", BirthDate: born})
	requireHTTPError(t, err, http.StatusUnprocessableEntity, "POKEMON_ALREADY_EXISTS")
}

func TestPokemonService_GetByName(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, _ := f.seed(t)

	got, err := f.pokemon.GetByName(ctx, "pikachu")
	require.NoError(t, err)
	assert.Equal(t, pokemon.ID, got.ID)

	_, err = f.pokemon.GetByName(ctx, "Missingno")
	requireHTTPError(t, err, http.StatusNotFound, "POKEMON_NOT_FOUND")
}

func TestPokemonService_Rating(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, reviewer := f.seed(t)

	rating, err := f.pokemon.Rating(ctx, pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", rating.Rating.String())

	for i, stars := range []int{3, 4, 5} {
		_, err := f.review.Create(ctx, &model.CreateReviewRequest{
			ReviewerID: reviewer.ID,
			PokemonID:  pokemon.ID,
			Title:      []string{"Meh", "Good", "Great"}[i],
			Rating:     stars,
		})
		require.NoError(t, err)
	}

	rating, err = f.pokemon.Rating(ctx, pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, pokemon.ID, rating.PokemonID)
	assert.Equal(t, "4", rating.Rating.String())

	_, err = f.pokemon.Rating(ctx, 999)
	requireHTTPError(t, err, http.StatusNotFound, "POKEMON_NOT_FOUND")
}

func TestPokemonService_DeleteCascadesReviews(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	owner, category, pokemon, reviewer := f.seed(t)

	review, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "Zappy", Rating: 5})
	require.NoError(t, err)

	require.NoError(t, f.pokemon.Delete(ctx, pokemon.ID))

	_, err = f.review.Get(ctx, review.ID)
	requireHTTPError(t, err, http.StatusNotFound, "REVIEW_NOT_FOUND")

	// The relations are gone, so owner and category can now be removed.
	require.NoError(t, f.category.Delete(ctx, category.ID))
	require.NoError(t, f.owner.Delete(ctx, owner.ID))

	err = f.pokemon.Delete(ctx, pokemon.ID)
	requireHTTPError(t, err, http.StatusNotFound, "POKEMON_NOT_FOUND")
}

func TestReviewService_Create(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, reviewer := f.seed(t)

	_, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: 8, PokemonID: pokemon.ID, Title: "x", Rating: 1})
	requireHTTPError(t, err, http.StatusNotFound, "REVIEWER_NOT_FOUND")

	_, err = f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: 8, Title: "x", Rating: 1})
	requireHTTPError(t, err, http.StatusNotFound, "POKEMON_NOT_FOUND")

	review, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "Cute", Text: "Very", Rating: 4})
	require.NoError(t, err)
	require.Len(t, f.notifier.reviews, 1)
	assert.Equal(t, review.ID, f.notifier.reviews[0].ID)

	_, err = f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "CUTE", Rating: 2})
	requireHTTPError(t, err, http.StatusUnprocessableEntity, "REVIEW_ALREADY_EXISTS")

	byPokemon, err := f.review.ListByPokemon(ctx, pokemon.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Review{*review}, byPokemon)
}

func TestReviewService_NotifierFailureIsIgnored(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, reviewer := f.seed(t)
	f.notifier.err = errors.New("redis unavailable")

	review, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "Sparky", Rating: 5})
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
}

func TestReviewService_UpdateKeepsRelations(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, reviewer := f.seed(t)

	review, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "Ok", Rating: 3})
	require.NoError(t, err)

	require.NoError(t, f.review.Update(ctx, &model.UpdateReviewRequest{PathID: review.ID, ID: review.ID, Title: "Better", Rating: 5}))

	got, err := f.review.Get(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Review{ID: review.ID, Title: "Better", Rating: 5, PokemonID: pokemon.ID, ReviewerID: reviewer.ID}, *got)

	require.NoError(t, f.review.Delete(ctx, review.ID))
	err = f.review.Delete(ctx, review.ID)
	requireHTTPError(t, err, http.StatusNotFound, "REVIEW_NOT_FOUND")
}

func TestReviewerService_DeleteCascadesReviews(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, _, pokemon, reviewer := f.seed(t)

	_, err := f.review.Create(ctx, &model.CreateReviewRequest{ReviewerID: reviewer.ID, PokemonID: pokemon.ID, Title: "One", Rating: 2})
	require.NoError(t, err)

	reviews, err := f.reviewer.ListReviews(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	require.NoError(t, f.reviewer.Delete(ctx, reviewer.ID))

	all, err := f.review.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = f.reviewer.ListReviews(ctx, reviewer.ID)
	requireHTTPError(t, err, http.StatusNotFound, "REVIEWER_NOT_FOUND")
}

func TestServices_WriteNotApplied(t *testing.T) {
	f := newFixture()
	f.store.FailWrites = true

	_, err := f.reviewer.Create(context.Background(), &model.CreateReviewerRequest{FirstName: "Brock", LastName: "Harrison"})
	httpErr := requireHTTPError(t, err, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	assert.Equal(t, "Something went wrong while saving", httpErr.Message)
}
