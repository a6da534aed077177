// Package servicetest provides an in-memory store that satisfies every
// repository interface of package service.
//
// It reproduces the database behaviour services rely on: case and
// whitespace insensitive uniqueness, restricted deletes, the pokemon and
// reviewer cascades, and pgx.ErrNoRows for missing rows. Constraint
// failures are reported as *pgconn.PgError so they map onto the same API
// errors as in production.
package servicetest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type table[T any] struct {
	name    string
	index   string
	next    int
	rows    map[int]T
	uniqKey func(T) string
}

func newTable[T any](name, index string, uniqKey func(T) string) *table[T] {
	return &table[T]{name: name, index: index, rows: map[int]T{}, uniqKey: uniqKey}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (t *table[T]) sorted(keep func(T) bool) []T {
	ids := make([]int, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(t.rows[id]) {
			out = append(out, t.rows[id])
		}
	}
	return out
}

func (t *table[T]) get(id int) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, fmt.Errorf("%s: get: %w", t.name, pgx.ErrNoRows)
	}
	return &row, nil
}

// checkUnique fails when another row than id holds the same key.
func (t *table[T]) checkUnique(id int, row T) error {
	key := normalize(t.uniqKey(row))
	for otherID, other := range t.rows {
		if otherID != id && normalize(t.uniqKey(other)) == key {
			return &pgconn.PgError{
				Severity:       "ERROR",
				Code:           "23505",
				Message:        fmt.Sprintf("duplicate key value violates unique constraint %q", t.index),
				TableName:      t.name,
				ConstraintName: t.index,
			}
		}
	}
	return nil
}

func (t *table[T]) insert(row T) (int, error) {
	if err := t.checkUnique(0, row); err != nil {
		return 0, err
	}
	t.next++
	t.rows[t.next] = row
	return t.next, nil
}

func (t *table[T]) update(id int, row T) (bool, error) {
	if _, ok := t.rows[id]; !ok {
		return false, nil
	}
	if err := t.checkUnique(id, row); err != nil {
		return false, err
	}
	t.rows[id] = row
	return true, nil
}

func restricted(table, referencing, constraint string) error {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "23503",
		Message: fmt.Sprintf("update or delete on table %q violates foreign key constraint %q on table %q",
			table, constraint, referencing),
		TableName:      referencing,
		ConstraintName: constraint,
	}
}

// Store is a concurrency-safe in-memory database.
type Store struct {
	mu sync.Mutex

	// FailWrites makes every write report that nothing was saved.
	FailWrites bool

	categories *table[model.Category]
	countries  *table[model.Country]
	owners     *table[model.Owner]
	pokemon    *table[model.Pokemon]
	reviewers  *table[model.Reviewer]
	reviews    *table[model.Review]

	pokemonOwners     []model.PokemonOwner
	pokemonCategories []model.PokemonCategory
}

func NewStore() *Store {
	return &Store{
		categories: newTable("categories", "unique_categories_name", func(c model.Category) string { return c.Name }),
		countries:  newTable("countries", "unique_countries_name", func(c model.Country) string { return c.Name }),
		owners:     newTable("owners", "unique_owners_name", func(o model.Owner) string { return o.LastName }),
		pokemon:    newTable("pokemon", "unique_pokemon_name", func(p model.Pokemon) string { return p.Name }),
		reviewers:  newTable("reviewers", "unique_reviewers_name", func(r model.Reviewer) string { return r.LastName }),
		reviews:    newTable("reviews", "unique_reviews_title", func(r model.Review) string { return r.Title }),
	}
}

func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s} }
func (s *Store) Countries() *CountryRepo   { return &CountryRepo{s} }
func (s *Store) Owners() *OwnerRepo        { return &OwnerRepo{s} }
func (s *Store) Pokemon() *PokemonRepo     { return &PokemonRepo{s} }
func (s *Store) Reviewers() *ReviewerRepo  { return &ReviewerRepo{s} }
func (s *Store) Reviews() *ReviewRepo      { return &ReviewRepo{s} }

// Stores exposes every repository of the store in one value.
func (s *Store) Stores() service.Stores {
	return service.Stores{
		Category: s.Categories(),
		Country:  s.Countries(),
		Owner:    s.Owners(),
		Pokemon:  s.Pokemon(),
		Review:   s.Reviews(),
		Reviewer: s.Reviewers(),
	}
}

func (s *Store) pokemonWhere(keep func(pokemonID int) bool) []model.Pokemon {
	return s.pokemon.sorted(func(p model.Pokemon) bool { return keep(p.ID) })
}

// CategoryRepo is the category view of a Store.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories.rows[id]
	return ok, nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id int) (*model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.categories.get(id)
}

func (r *CategoryRepo) List(_ context.Context) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.categories.sorted(nil), nil
}

func (r *CategoryRepo) ListPokemon(_ context.Context, categoryID int) ([]model.Pokemon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pokemonWhere(func(pokemonID int) bool {
		for _, link := range r.s.pokemonCategories {
			if link.PokemonID == pokemonID && link.CategoryID == categoryID {
				return true
			}
		}
		return false
	}), nil
}

func (r *CategoryRepo) Create(_ context.Context, category *model.Category) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	id, err := r.s.categories.insert(*category)
	if err != nil {
		return false, err
	}
	category.ID = id
	r.s.categories.rows[id] = *category
	return true, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *model.Category) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	return r.s.categories.update(category.ID, *category)
}

func (r *CategoryRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.categories.rows[id]; !ok {
		return false, nil
	}
	for _, link := range r.s.pokemonCategories {
		if link.CategoryID == id {
			return false, restricted("categories", "pokemon_categories", "pokemon_categories_category_id_fkey")
		}
	}
	delete(r.s.categories.rows, id)
	return true, nil
}

// CountryRepo is the country view of a Store.
type CountryRepo struct{ s *Store }

func (r *CountryRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.countries.rows[id]
	return ok, nil
}

func (r *CountryRepo) GetByID(_ context.Context, id int) (*model.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.countries.get(id)
}

func (r *CountryRepo) GetByOwner(_ context.Context, ownerID int) (*model.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	owner, err := r.s.owners.get(ownerID)
	if err != nil {
		return nil, err
	}
	return r.s.countries.get(owner.CountryID)
}

func (r *CountryRepo) List(_ context.Context) ([]model.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.countries.sorted(nil), nil
}

func (r *CountryRepo) ListOwners(_ context.Context, countryID int) ([]model.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.owners.sorted(func(o model.Owner) bool { return o.CountryID == countryID }), nil
}

func (r *CountryRepo) Create(_ context.Context, country *model.Country) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	id, err := r.s.countries.insert(*country)
	if err != nil {
		return false, err
	}
	country.ID = id
	r.s.countries.rows[id] = *country
	return true, nil
}

func (r *CountryRepo) Update(_ context.Context, country *model.Country) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	return r.s.countries.update(country.ID, *country)
}

func (r *CountryRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.countries.rows[id]; !ok {
		return false, nil
	}
	for _, owner := range r.s.owners.rows {
		if owner.CountryID == id {
			return false, restricted("countries", "owners", "owners_country_id_fkey")
		}
	}
	delete(r.s.countries.rows, id)
	return true, nil
}

// OwnerRepo is the owner view of a Store.
type OwnerRepo struct{ s *Store }

func (r *OwnerRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.owners.rows[id]
	return ok, nil
}

func (r *OwnerRepo) GetByID(_ context.Context, id int) (*model.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.owners.get(id)
}

func (r *OwnerRepo) List(_ context.Context) ([]model.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.owners.sorted(nil), nil
}

func (r *OwnerRepo) ListPokemon(_ context.Context, ownerID int) ([]model.Pokemon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pokemonWhere(func(pokemonID int) bool {
		for _, link := range r.s.pokemonOwners {
			if link.PokemonID == pokemonID && link.OwnerID == ownerID {
				return true
			}
		}
		return false
	}), nil
}

func (r *OwnerRepo) ListByPokemon(_ context.Context, pokemonID int) ([]model.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.owners.sorted(func(o model.Owner) bool {
		for _, link := range r.s.pokemonOwners {
			if link.PokemonID == pokemonID && link.OwnerID == o.ID {
				return true
			}
		}
		return false
	}), nil
}

func (r *OwnerRepo) Create(_ context.Context, owner *model.Owner) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.countries.rows[owner.CountryID]; !ok {
		return false, &pgconn.PgError{
			Severity:  "ERROR",
			Code:      "23503",
			Message:   `insert or update on table "owners" violates foreign key constraint "owners_country_id_fkey"`,
			Detail:    fmt.Sprintf(`Key (country_id)=(%d) is not present in table "countries".`, owner.CountryID),
			TableName: "owners",
		}
	}
	id, err := r.s.owners.insert(*owner)
	if err != nil {
		return false, err
	}
	owner.ID = id
	r.s.owners.rows[id] = *owner
	return true, nil
}

// Update keeps the stored country.
func (r *OwnerRepo) Update(_ context.Context, owner *model.Owner) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	current, ok := r.s.owners.rows[owner.ID]
	if !ok {
		return false, nil
	}
	current.FirstName = owner.FirstName
	current.LastName = owner.LastName
	current.Gym = owner.Gym
	return r.s.owners.update(owner.ID, current)
}

func (r *OwnerRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.owners.rows[id]; !ok {
		return false, nil
	}
	for _, link := range r.s.pokemonOwners {
		if link.OwnerID == id {
			return false, restricted("owners", "pokemon_owners", "pokemon_owners_owner_id_fkey")
		}
	}
	delete(r.s.owners.rows, id)
	return true, nil
}

// PokemonRepo is the pokemon view of a Store.
type PokemonRepo struct{ s *Store }

func (r *PokemonRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.pokemon.rows[id]
	return ok, nil
}

func (r *PokemonRepo) GetByID(_ context.Context, id int) (*model.Pokemon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pokemon.get(id)
}

func (r *PokemonRepo) GetByName(_ context.Context, name string) (*model.Pokemon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	matches := r.s.pokemon.sorted(func(p model.Pokemon) bool { return normalize(p.Name) == normalize(name) })
	if len(matches) == 0 {
		return nil, fmt.Errorf("pokemon: get by name: %w", pgx.ErrNoRows)
	}
	return &matches[0], nil
}

func (r *PokemonRepo) List(_ context.Context) ([]model.Pokemon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.pokemon.sorted(nil), nil
}

func (r *PokemonRepo) Ratings(_ context.Context, pokemonID int) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ratings := []int{}
	for _, review := range r.s.reviews.sorted(func(rv model.Review) bool { return rv.PokemonID == pokemonID }) {
		ratings = append(ratings, review.Rating)
	}
	return ratings, nil
}

func (r *PokemonRepo) CreateWithRelations(_ context.Context, ownerID, categoryID int, pokemon *model.Pokemon) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	id, err := r.s.pokemon.insert(*pokemon)
	if err != nil {
		return false, err
	}
	pokemon.ID = id
	r.s.pokemon.rows[id] = *pokemon
	r.s.pokemonOwners = append(r.s.pokemonOwners, model.PokemonOwner{PokemonID: id, OwnerID: ownerID})
	r.s.pokemonCategories = append(r.s.pokemonCategories, model.PokemonCategory{PokemonID: id, CategoryID: categoryID})
	return true, nil
}

func (r *PokemonRepo) Update(_ context.Context, pokemon *model.Pokemon) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	return r.s.pokemon.update(pokemon.ID, *pokemon)
}

// Delete removes the pokemon with its reviews and relations.
func (r *PokemonRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.pokemon.rows[id]; !ok {
		return false, nil
	}
	for reviewID, review := range r.s.reviews.rows {
		if review.PokemonID == id {
			delete(r.s.reviews.rows, reviewID)
		}
	}
	owners := r.s.pokemonOwners[:0]
	for _, link := range r.s.pokemonOwners {
		if link.PokemonID != id {
			owners = append(owners, link)
		}
	}
	r.s.pokemonOwners = owners
	categories := r.s.pokemonCategories[:0]
	for _, link := range r.s.pokemonCategories {
		if link.PokemonID != id {
			categories = append(categories, link)
		}
	}
	r.s.pokemonCategories = categories
	delete(r.s.pokemon.rows, id)
	return true, nil
}

// ReviewerRepo is the reviewer view of a Store.
type ReviewerRepo struct{ s *Store }

func (r *ReviewerRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.reviewers.rows[id]
	return ok, nil
}

func (r *ReviewerRepo) GetByID(_ context.Context, id int) (*model.Reviewer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviewers.get(id)
}

func (r *ReviewerRepo) List(_ context.Context) ([]model.Reviewer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviewers.sorted(nil), nil
}

func (r *ReviewerRepo) Create(_ context.Context, reviewer *model.Reviewer) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	id, err := r.s.reviewers.insert(*reviewer)
	if err != nil {
		return false, err
	}
	reviewer.ID = id
	r.s.reviewers.rows[id] = *reviewer
	return true, nil
}

func (r *ReviewerRepo) Update(_ context.Context, reviewer *model.Reviewer) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	return r.s.reviewers.update(reviewer.ID, *reviewer)
}

// Delete removes the reviewer and every review they wrote.
func (r *ReviewerRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.reviewers.rows[id]; !ok {
		return false, nil
	}
	for reviewID, review := range r.s.reviews.rows {
		if review.ReviewerID == id {
			delete(r.s.reviews.rows, reviewID)
		}
	}
	delete(r.s.reviewers.rows, id)
	return true, nil
}

// ReviewRepo is the review view of a Store.
type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Exists(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.reviews.rows[id]
	return ok, nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id int) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviews.get(id)
}

func (r *ReviewRepo) List(_ context.Context) ([]model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviews.sorted(nil), nil
}

func (r *ReviewRepo) ListByPokemon(_ context.Context, pokemonID int) ([]model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviews.sorted(func(rv model.Review) bool { return rv.PokemonID == pokemonID }), nil
}

func (r *ReviewRepo) ListByReviewer(_ context.Context, reviewerID int) ([]model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviews.sorted(func(rv model.Review) bool { return rv.ReviewerID == reviewerID }), nil
}

func (r *ReviewRepo) Create(_ context.Context, review *model.Review) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	id, err := r.s.reviews.insert(*review)
	if err != nil {
		return false, err
	}
	review.ID = id
	r.s.reviews.rows[id] = *review
	return true, nil
}

// Update keeps the stored pokemon and reviewer.
func (r *ReviewRepo) Update(_ context.Context, review *model.Review) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	current, ok := r.s.reviews.rows[review.ID]
	if !ok {
		return false, nil
	}
	current.Title = review.Title
	current.Text = review.Text
	current.Rating = review.Rating
	return r.s.reviews.update(review.ID, current)
}

func (r *ReviewRepo) Delete(_ context.Context, id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailWrites {
		return false, nil
	}
	if _, ok := r.s.reviews.rows[id]; !ok {
		return false, nil
	}
	delete(r.s.reviews.rows, id)
	return true, nil
}
