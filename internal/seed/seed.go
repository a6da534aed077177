// Package seed loads the demo catalogue shipped with the binary and writes it
// through the service layer, so seeded rows obey the same rules as rows
// created over HTTP.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/service"
)

//go:embed seed.yaml
var defaultData []byte

const dateLayout = "2006-01-02"

type Dataset struct {
	Countries  []string   `yaml:"countries" json:"countries"`
	Categories []string   `yaml:"categories" json:"categories"`
	Owners     []Owner    `yaml:"owners" json:"owners"`
	Reviewers  []Reviewer `yaml:"reviewers" json:"reviewers"`
	Pokemon    []Pokemon  `yaml:"pokemon" json:"pokemon"`
	Reviews    []Review   `yaml:"reviews" json:"reviews"`
}

// Owner references its country by name.
type Owner struct {
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
	Gym       string `yaml:"gym" json:"gym"`
	Country   string `yaml:"country" json:"country"`
}

type Reviewer struct {
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
}

// Pokemon references its first owner by last name and its first category by
// name. BirthDate uses the YYYY-MM-DD layout.
type Pokemon struct {
	Name      string `yaml:"name" json:"name"`
	BirthDate string `yaml:"birth_date" json:"birth_date"`
	Owner     string `yaml:"owner" json:"owner"`
	Category  string `yaml:"category" json:"category"`
}

// Review references the pokemon by name and the reviewer by last name.
type Review struct {
	Title    string `yaml:"title" json:"title"`
	Text     string `yaml:"text" json:"text"`
	Rating   int    `yaml:"rating" json:"rating"`
	Pokemon  string `yaml:"pokemon" json:"pokemon"`
	Reviewer string `yaml:"reviewer" json:"reviewer"`
}

// Result counts the rows Apply created. Rows that already existed are skipped.
type Result struct {
	Countries  int `json:"countries"`
	Categories int `json:"categories"`
	Owners     int `json:"owners"`
	Reviewers  int `json:"reviewers"`
	Pokemon    int `json:"pokemon"`
	Reviews    int `json:"reviews"`
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	return Parse(defaultData)
}

// Parse decodes a YAML dataset and checks its cross references.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	if err := ds.check(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (ds *Dataset) check() error {
	countries := names(ds.Countries, func(s string) string { return s })
	categories := names(ds.Categories, func(s string) string { return s })
	owners := names(ds.Owners, func(o Owner) string { return o.LastName })
	reviewers := names(ds.Reviewers, func(r Reviewer) string { return r.LastName })
	pokemon := names(ds.Pokemon, func(p Pokemon) string { return p.Name })

	for _, o := range ds.Owners {
		if !countries[key(o.Country)] {
			return fmt.Errorf("owner %q: unknown country %q", o.LastName, o.Country)
		}
	}
	for _, p := range ds.Pokemon {
		if !owners[key(p.Owner)] {
			return fmt.Errorf("pokemon %q: unknown owner %q", p.Name, p.Owner)
		}
		if !categories[key(p.Category)] {
			return fmt.Errorf("pokemon %q: unknown category %q", p.Name, p.Category)
		}
		if _, err := time.Parse(dateLayout, p.BirthDate); err != nil {
			return fmt.Errorf("pokemon %q: invalid birth_date: %w", p.Name, err)
		}
	}
	for _, r := range ds.Reviews {
		if !pokemon[key(r.Pokemon)] {
			return fmt.Errorf("review %q: unknown pokemon %q", r.Title, r.Pokemon)
		}
		if !reviewers[key(r.Reviewer)] {
			return fmt.Errorf("review %q: unknown reviewer %q", r.Title, r.Reviewer)
		}
	}
	return nil
}

func names[T any](items []T, name func(T) string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		out[key(name(item))] = true
	}
	return out
}

// Seeder writes a dataset through the services.
type Seeder struct {
	services *service.Services
	logger   *zerolog.Logger
}

func NewSeeder(services *service.Services, logger *zerolog.Logger) *Seeder {
	return &Seeder{services: services, logger: logger}
}

// Apply creates every row of ds that is not stored yet. Existing rows are
// matched on the same keys the store keeps unique, which makes Apply safe to
// run repeatedly.
func (s *Seeder) Apply(ctx context.Context, ds *Dataset) (*Result, error) {
	res := &Result{}

	countries, err := s.countries(ctx, ds, res)
	if err != nil {
		return res, err
	}
	categories, err := s.categories(ctx, ds, res)
	if err != nil {
		return res, err
	}
	owners, err := s.owners(ctx, ds, countries, res)
	if err != nil {
		return res, err
	}
	reviewers, err := s.reviewers(ctx, ds, res)
	if err != nil {
		return res, err
	}
	pokemon, err := s.pokemon(ctx, ds, owners, categories, res)
	if err != nil {
		return res, err
	}
	if err := s.reviews(ctx, ds, pokemon, reviewers, res); err != nil {
		return res, err
	}

	s.logger.Info().
		Int("countries", res.Countries).
		Int("categories", res.Categories).
		Int("owners", res.Owners).
		Int("reviewers", res.Reviewers).
		Int("pokemon", res.Pokemon).
		Int("reviews", res.Reviews).
		Msg("seed data applied")

	return res, nil
}

func index[T any](items []T, name func(T) string, id func(T) int) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[key(name(item))] = id(item)
	}
	return out
}

func (s *Seeder) countries(ctx context.Context, ds *Dataset, res *Result) (map[string]int, error) {
	existing, err := s.services.Country.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(existing, func(c model.Country) string { return c.Name }, func(c model.Country) int { return c.ID })

	for _, name := range ds.Countries {
		if _, ok := ids[key(name)]; ok {
			continue
		}
		country, err := s.services.Country.Create(ctx, &model.CreateCountryRequest{Name: name})
		if err != nil {
			return nil, fmt.Errorf("seed country %q: %w", name, err)
		}
		ids[key(name)] = country.ID
		res.Countries++
	}
	return ids, nil
}

func (s *Seeder) categories(ctx context.Context, ds *Dataset, res *Result) (map[string]int, error) {
	existing, err := s.services.Category.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(existing, func(c model.Category) string { return c.Name }, func(c model.Category) int { return c.ID })

	for _, name := range ds.Categories {
		if _, ok := ids[key(name)]; ok {
			continue
		}
		category, err := s.services.Category.Create(ctx, &model.CreateCategoryRequest{Name: name})
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", name, err)
		}
		ids[key(name)] = category.ID
		res.Categories++
	}
	return ids, nil
}

func (s *Seeder) owners(ctx context.Context, ds *Dataset, countries map[string]int, res *Result) (map[string]int, error) {
	existing, err := s.services.Owner.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(existing, func(o model.Owner) string { return o.LastName }, func(o model.Owner) int { return o.ID })

	for _, o := range ds.Owners {
		if _, ok := ids[key(o.LastName)]; ok {
			continue
		}
		owner, err := s.services.Owner.Create(ctx, &model.CreateOwnerRequest{
			CountryID: countries[key(o.Country)],
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Gym:       o.Gym,
		})
		if err != nil {
			return nil, fmt.Errorf("seed owner %q: %w", o.LastName, err)
		}
		ids[key(o.LastName)] = owner.ID
		res.Owners++
	}
	return ids, nil
}

func (s *Seeder) reviewers(ctx context.Context, ds *Dataset, res *Result) (map[string]int, error) {
	existing, err := s.services.Reviewer.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(existing, func(r model.Reviewer) string { return r.LastName }, func(r model.Reviewer) int { return r.ID })

	for _, r := range ds.Reviewers {
		if _, ok := ids[key(r.LastName)]; ok {
			continue
		}
		reviewer, err := s.services.Reviewer.Create(ctx, &model.CreateReviewerRequest{
			FirstName: r.FirstName,
			LastName:  r.LastName,
		})
		if err != nil {
			return nil, fmt.Errorf("seed reviewer %q: %w", r.LastName, err)
		}
		ids[key(r.LastName)] = reviewer.ID
		res.Reviewers++
	}
	return ids, nil
}

func (s *Seeder) pokemon(
	ctx context.Context,
	ds *Dataset,
	owners, categories map[string]int,
	res *Result,
) (map[string]int, error) {
	existing, err := s.services.Pokemon.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := index(existing, func(p model.Pokemon) string { return p.Name }, func(p model.Pokemon) int { return p.ID })

	for _, p := range ds.Pokemon {
		if _, ok := ids[key(p.Name)]; ok {
			continue
		}
		// Checked by Parse.
		birthDate, _ := time.Parse(dateLayout, p.BirthDate)

		pokemon, err := s.services.Pokemon.Create(ctx, &model.CreatePokemonRequest{
			OwnerID:    owners[key(p.Owner)],
			CategoryID: categories[key(p.Category)],
			Name:       p.Name,
			BirthDate:  birthDate,
		})
		if err != nil {
			return nil, fmt.Errorf("seed pokemon %q: %w", p.Name, err)
		}
		ids[key(p.Name)] = pokemon.ID
		res.Pokemon++
	}
	return ids, nil
}

func (s *Seeder) reviews(
	ctx context.Context,
	ds *Dataset,
	pokemon, reviewers map[string]int,
	res *Result,
) error {
	existing, err := s.services.Review.List(ctx)
	if err != nil {
		return err
	}
	ids := index(existing, func(r model.Review) string { return r.Title }, func(r model.Review) int { return r.ID })

	for _, r := range ds.Reviews {
		if _, ok := ids[key(r.Title)]; ok {
			continue
		}
		review, err := s.services.Review.Create(ctx, &model.CreateReviewRequest{
			ReviewerID: reviewers[key(r.Reviewer)],
			PokemonID:  pokemon[key(r.Pokemon)],
			Title:      r.Title,
			Text:       r.Text,
			Rating:     r.Rating,
		})
		if err != nil {
			return fmt.Errorf("seed review %q: %w", r.Title, err)
		}
		ids[key(r.Title)] = review.ID
		res.Reviews++
	}
	return nil
}
