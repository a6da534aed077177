package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type ReviewerHandler struct {
	Handler
	service *service.ReviewerService
}

func NewReviewerHandler(s *server.Server, reviewerService *service.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{
		Handler: NewHandler(s),
		service: reviewerService,
	}
}

func (h *ReviewerHandler) GetReviewers(c echo.Context, _ *model.EmptyRequest) ([]model.Reviewer, error) {
	return h.service.List(c.Request().Context())
}

func (h *ReviewerHandler) GetReviewer(c echo.Context, req *model.IDRequest) (*model.Reviewer, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *ReviewerHandler) GetReviewsByReviewer(c echo.Context, req *model.IDRequest) ([]model.Review, error) {
	return h.service.ListReviews(c.Request().Context(), req.ID)
}

func (h *ReviewerHandler) CreateReviewer(c echo.Context, req *model.CreateReviewerRequest) (*model.Reviewer, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *ReviewerHandler) UpdateReviewer(c echo.Context, req *model.UpdateReviewerRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *ReviewerHandler) DeleteReviewer(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
