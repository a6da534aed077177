package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type PokemonService struct {
	logger     *zerolog.Logger
	repo       PokemonRepository
	owners     exister
	categories exister
}

func NewPokemonService(logger *zerolog.Logger, repo PokemonRepository, owners OwnerRepository, categories CategoryRepository) *PokemonService {
	return &PokemonService{
		logger:     logger,
		repo:       repo,
		owners:     owners,
		categories: categories,
	}
}

func (s *PokemonService) List(ctx context.Context) ([]model.Pokemon, error) {
	pokemon, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list pokemon", err)
	}
	return pokemon, nil
}

func (s *PokemonService) Get(ctx context.Context, id int) (*model.Pokemon, error) {
	pokemon, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Pokemon", pokemon, err)
}

func (s *PokemonService) GetByName(ctx context.Context, name string) (*model.Pokemon, error) {
	pokemon, err := s.repo.GetByName(ctx, name)
	return getOrNotFound(s.logger, "Pokemon", pokemon, err)
}

// Rating returns the mean review rating of a pokemon, zero if unreviewed.
func (s *PokemonService) Rating(ctx context.Context, id int) (*model.RatingResponse, error) {
	if err := ensureExists(ctx, s.logger, s.repo, "Pokemon", id); err != nil {
		return nil, err
	}

	ratings, err := s.repo.Ratings(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "pokemon ratings", err)
	}

	return &model.RatingResponse{
		PokemonID: id,
		Rating:    json.Number(AverageRating(ratings).String()),
	}, nil
}

// Create stores a pokemon held by req.OwnerID in category req.CategoryID.
// Both must exist.
func (s *PokemonService) Create(ctx context.Context, req *model.CreatePokemonRequest) (*model.Pokemon, error) {
	if err := ensureExists(ctx, s.logger, s.owners, "Owner", req.OwnerID); err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, s.logger, s.categories, "Category", req.CategoryID); err != nil {
		return nil, err
	}

	pokemon := req.ToPokemon()
	ok, err := s.repo.CreateWithRelations(ctx, req.OwnerID, req.CategoryID, pokemon)
	if err != nil {
		return nil, storeError(s.logger, "create pokemon", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().
		Int("pokemon_id", pokemon.ID).
		Int("owner_id", req.OwnerID).
		Int("category_id", req.CategoryID).
		Msg("pokemon created")
	return pokemon, nil
}

func (s *PokemonService) Update(ctx context.Context, req *model.UpdatePokemonRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Pokemon", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToPokemon())
	if err != nil {
		return storeError(s.logger, "update pokemon", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

// Delete removes a pokemon along with its reviews and relations.
func (s *PokemonService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Pokemon", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete pokemon", err)
	}
	if !ok {
		return deleteFailed()
	}

	s.logger.Info().Int("pokemon_id", id).Msg("pokemon deleted with its reviews")
	return nil
}
