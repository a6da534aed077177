package service

import (
	"context"

	"github.com/deppfellow/pokemon-review/internal/model"
)

// Each service depends on the narrowest view of its repository. The
// postgres repositories satisfy these, and so does the in-memory store used
// in tests.

type exister interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type CategoryRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	ListPokemon(ctx context.Context, categoryID int) ([]model.Pokemon, error)
	Create(ctx context.Context, category *model.Category) (bool, error)
	Update(ctx context.Context, category *model.Category) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type CountryRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Country, error)
	GetByOwner(ctx context.Context, ownerID int) (*model.Country, error)
	List(ctx context.Context) ([]model.Country, error)
	ListOwners(ctx context.Context, countryID int) ([]model.Owner, error)
	Create(ctx context.Context, country *model.Country) (bool, error)
	Update(ctx context.Context, country *model.Country) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type OwnerRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Owner, error)
	List(ctx context.Context) ([]model.Owner, error)
	ListPokemon(ctx context.Context, ownerID int) ([]model.Pokemon, error)
	ListByPokemon(ctx context.Context, pokemonID int) ([]model.Owner, error)
	Create(ctx context.Context, owner *model.Owner) (bool, error)
	Update(ctx context.Context, owner *model.Owner) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type PokemonRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Pokemon, error)
	GetByName(ctx context.Context, name string) (*model.Pokemon, error)
	List(ctx context.Context) ([]model.Pokemon, error)
	Ratings(ctx context.Context, pokemonID int) ([]int, error)
	CreateWithRelations(ctx context.Context, ownerID, categoryID int, pokemon *model.Pokemon) (bool, error)
	Update(ctx context.Context, pokemon *model.Pokemon) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ReviewerRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Reviewer, error)
	List(ctx context.Context) ([]model.Reviewer, error)
	Create(ctx context.Context, reviewer *model.Reviewer) (bool, error)
	Update(ctx context.Context, reviewer *model.Reviewer) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ReviewRepository interface {
	exister
	GetByID(ctx context.Context, id int) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByPokemon(ctx context.Context, pokemonID int) ([]model.Review, error)
	ListByReviewer(ctx context.Context, reviewerID int) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) (bool, error)
	Update(ctx context.Context, review *model.Review) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ReviewNotifier is told about every review that was stored.
type ReviewNotifier interface {
	NotifyReviewSubmitted(ctx context.Context, review *model.Review) error
}
