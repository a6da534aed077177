package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type ReviewHandler struct {
	Handler
	service *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		service: reviewService,
	}
}

func (h *ReviewHandler) GetReviews(c echo.Context, _ *model.EmptyRequest) ([]model.Review, error) {
	return h.service.List(c.Request().Context())
}

func (h *ReviewHandler) GetReview(c echo.Context, req *model.IDRequest) (*model.Review, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *ReviewHandler) GetReviewsOfPokemon(c echo.Context, req *model.PokemonIDRequest) ([]model.Review, error) {
	return h.service.ListByPokemon(c.Request().Context(), req.PokemonID)
}

// CreateReview reads author and subject from the reviewerId and pokemonId
// query parameters.
func (h *ReviewHandler) CreateReview(c echo.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *ReviewHandler) UpdateReview(c echo.Context, req *model.UpdateReviewRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *ReviewHandler) DeleteReview(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
