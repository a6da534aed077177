package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type OwnerService struct {
	logger    *zerolog.Logger
	repo      OwnerRepository
	countries exister
}

func NewOwnerService(logger *zerolog.Logger, repo OwnerRepository, countries CountryRepository) *OwnerService {
	return &OwnerService{logger: logger, repo: repo, countries: countries}
}

func (s *OwnerService) List(ctx context.Context) ([]model.Owner, error) {
	owners, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list owners", err)
	}
	return owners, nil
}

func (s *OwnerService) Get(ctx context.Context, id int) (*model.Owner, error) {
	owner, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Owner", owner, err)
}

func (s *OwnerService) ListPokemon(ctx context.Context, ownerID int) ([]model.Pokemon, error) {
	if err := ensureExists(ctx, s.logger, s.repo, "Owner", ownerID); err != nil {
		return nil, err
	}

	pokemon, err := s.repo.ListPokemon(ctx, ownerID)
	if err != nil {
		return nil, storeError(s.logger, "list owner pokemon", err)
	}
	return pokemon, nil
}

// ListByPokemon returns the owners of a pokemon. An unknown pokemon simply
// has no owners.
func (s *OwnerService) ListByPokemon(ctx context.Context, pokemonID int) ([]model.Owner, error) {
	owners, err := s.repo.ListByPokemon(ctx, pokemonID)
	if err != nil {
		return nil, storeError(s.logger, "list pokemon owners", err)
	}
	return owners, nil
}

// Create stores an owner living in req.CountryID, which must exist.
func (s *OwnerService) Create(ctx context.Context, req *model.CreateOwnerRequest) (*model.Owner, error) {
	if err := ensureExists(ctx, s.logger, s.countries, "Country", req.CountryID); err != nil {
		return nil, err
	}

	owner := req.ToOwner()
	ok, err := s.repo.Create(ctx, owner)
	if err != nil {
		return nil, storeError(s.logger, "create owner", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().
		Int("owner_id", owner.ID).
		Int("country_id", owner.CountryID).
		Msg("owner created")
	return owner, nil
}

func (s *OwnerService) Update(ctx context.Context, req *model.UpdateOwnerRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Owner", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToOwner())
	if err != nil {
		return storeError(s.logger, "update owner", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

// Delete removes an owner that holds no pokemon.
func (s *OwnerService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Owner", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete owner", err)
	}
	if !ok {
		return deleteFailed()
	}
	return nil
}
