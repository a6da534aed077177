package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type ReviewerService struct {
	logger  *zerolog.Logger
	repo    ReviewerRepository
	reviews ReviewRepository
}

func NewReviewerService(logger *zerolog.Logger, repo ReviewerRepository, reviews ReviewRepository) *ReviewerService {
	return &ReviewerService{logger: logger, repo: repo, reviews: reviews}
}

func (s *ReviewerService) List(ctx context.Context) ([]model.Reviewer, error) {
	reviewers, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list reviewers", err)
	}
	return reviewers, nil
}

func (s *ReviewerService) Get(ctx context.Context, id int) (*model.Reviewer, error) {
	reviewer, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Reviewer", reviewer, err)
}

func (s *ReviewerService) ListReviews(ctx context.Context, reviewerID int) ([]model.Review, error) {
	if err := ensureExists(ctx, s.logger, s.repo, "Reviewer", reviewerID); err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, storeError(s.logger, "list reviewer reviews", err)
	}
	return reviews, nil
}

func (s *ReviewerService) Create(ctx context.Context, req *model.CreateReviewerRequest) (*model.Reviewer, error) {
	reviewer := req.ToReviewer()

	ok, err := s.repo.Create(ctx, reviewer)
	if err != nil {
		return nil, storeError(s.logger, "create reviewer", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().Int("reviewer_id", reviewer.ID).Msg("reviewer created")
	return reviewer, nil
}

func (s *ReviewerService) Update(ctx context.Context, req *model.UpdateReviewerRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Reviewer", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToReviewer())
	if err != nil {
		return storeError(s.logger, "update reviewer", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

// Delete removes a reviewer and every review they wrote.
func (s *ReviewerService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Reviewer", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete reviewer", err)
	}
	if !ok {
		return deleteFailed()
	}
	return nil
}
