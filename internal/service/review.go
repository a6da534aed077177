package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type ReviewService struct {
	logger    *zerolog.Logger
	repo      ReviewRepository
	pokemon   exister
	reviewers exister
	notifier  ReviewNotifier
}

// NewReviewService builds the review service. notifier may be nil, in which
// case nobody is told about new reviews.
func NewReviewService(
	logger *zerolog.Logger,
	repo ReviewRepository,
	pokemon PokemonRepository,
	reviewers ReviewerRepository,
	notifier ReviewNotifier,
) *ReviewService {
	return &ReviewService{
		logger:    logger,
		repo:      repo,
		pokemon:   pokemon,
		reviewers: reviewers,
		notifier:  notifier,
	}
}

func (s *ReviewService) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list reviews", err)
	}
	return reviews, nil
}

func (s *ReviewService) Get(ctx context.Context, id int) (*model.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Review", review, err)
}

// ListByPokemon returns the reviews of a pokemon, empty for unknown ids.
func (s *ReviewService) ListByPokemon(ctx context.Context, pokemonID int) ([]model.Review, error) {
	reviews, err := s.repo.ListByPokemon(ctx, pokemonID)
	if err != nil {
		return nil, storeError(s.logger, "list pokemon reviews", err)
	}
	return reviews, nil
}

// Create stores a review by req.ReviewerID of req.PokemonID and queues a
// notification. A failed notification does not fail the request.
func (s *ReviewService) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	if err := ensureExists(ctx, s.logger, s.reviewers, "Reviewer", req.ReviewerID); err != nil {
		return nil, err
	}
	if err := ensureExists(ctx, s.logger, s.pokemon, "Pokemon", req.PokemonID); err != nil {
		return nil, err
	}

	review := req.ToReview()
	ok, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, storeError(s.logger, "create review", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().
		Int("review_id", review.ID).
		Int("pokemon_id", review.PokemonID).
		Int("reviewer_id", review.ReviewerID).
		Msg("review created")

	if s.notifier != nil {
		if err := s.notifier.NotifyReviewSubmitted(ctx, review); err != nil {
			s.logger.Warn().Err(err).Int("review_id", review.ID).Msg("failed to queue review notification")
		}
	}

	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, req *model.UpdateReviewRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Review", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToReview())
	if err != nil {
		return storeError(s.logger, "update review", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Review", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete review", err)
	}
	if !ok {
		return deleteFailed()
	}
	return nil
}
