package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/handler"
	"github.com/deppfellow/pokemon-review/internal/model"
)

// registerAPIRoutes maps every entity route. Reads are public; protect
// wraps the routes that change data.
func registerAPIRoutes(api *echo.Group, h *handler.Handlers, protect echo.MiddlewareFunc) {
	category := api.Group("/category")
	category.GET("", handler.Handle(h.Category.Handler, h.Category.GetCategories, http.StatusOK, &model.EmptyRequest{}))
	category.GET("/:id", handler.Handle(h.Category.Handler, h.Category.GetCategory, http.StatusOK, &model.IDRequest{}))
	category.GET("/:id/pokemon", handler.Handle(h.Category.Handler, h.Category.GetPokemonByCategory, http.StatusOK, &model.IDRequest{}))
	category.POST("", handler.Handle(h.Category.Handler, h.Category.CreateCategory, http.StatusOK, &model.CreateCategoryRequest{}), protect)
	category.PUT("/:id", handler.HandleNoContent(h.Category.Handler, h.Category.UpdateCategory, http.StatusNoContent, &model.UpdateCategoryRequest{}), protect)
	category.DELETE("/:id", handler.HandleNoContent(h.Category.Handler, h.Category.DeleteCategory, http.StatusNoContent, &model.IDRequest{}), protect)

	country := api.Group("/country")
	country.GET("", handler.Handle(h.Country.Handler, h.Country.GetCountries, http.StatusOK, &model.EmptyRequest{}))
	country.GET("/:id", handler.Handle(h.Country.Handler, h.Country.GetCountry, http.StatusOK, &model.IDRequest{}))
	country.GET("/:id/owners", handler.Handle(h.Country.Handler, h.Country.GetOwnersFromCountry, http.StatusOK, &model.IDRequest{}))
	country.GET("/owner/:ownerId", handler.Handle(h.Country.Handler, h.Country.GetCountryOfOwner, http.StatusOK, &model.OwnerIDRequest{}))
	country.POST("", handler.Handle(h.Country.Handler, h.Country.CreateCountry, http.StatusOK, &model.CreateCountryRequest{}), protect)
	country.PUT("/:id", handler.HandleNoContent(h.Country.Handler, h.Country.UpdateCountry, http.StatusNoContent, &model.UpdateCountryRequest{}), protect)
	country.DELETE("/:id", handler.HandleNoContent(h.Country.Handler, h.Country.DeleteCountry, http.StatusNoContent, &model.IDRequest{}), protect)

	owner := api.Group("/owner")
	owner.GET("", handler.Handle(h.Owner.Handler, h.Owner.GetOwners, http.StatusOK, &model.EmptyRequest{}))
	owner.GET("/:id", handler.Handle(h.Owner.Handler, h.Owner.GetOwner, http.StatusOK, &model.IDRequest{}))
	owner.GET("/:id/pokemon", handler.Handle(h.Owner.Handler, h.Owner.GetPokemonByOwner, http.StatusOK, &model.IDRequest{}))
	owner.GET("/pokemon/:pokemonId", handler.Handle(h.Owner.Handler, h.Owner.GetOwnersOfPokemon, http.StatusOK, &model.PokemonIDRequest{}))
	owner.POST("", handler.Handle(h.Owner.Handler, h.Owner.CreateOwner, http.StatusOK, &model.CreateOwnerRequest{}), protect)
	owner.PUT("/:id", handler.HandleNoContent(h.Owner.Handler, h.Owner.UpdateOwner, http.StatusNoContent, &model.UpdateOwnerRequest{}), protect)
	owner.DELETE("/:id", handler.HandleNoContent(h.Owner.Handler, h.Owner.DeleteOwner, http.StatusNoContent, &model.IDRequest{}), protect)

	pokemon := api.Group("/pokemon")
	pokemon.GET("", handler.Handle(h.Pokemon.Handler, h.Pokemon.GetPokemons, http.StatusOK, &model.EmptyRequest{}))
	pokemon.GET("/:id", handler.Handle(h.Pokemon.Handler, h.Pokemon.GetPokemon, http.StatusOK, &model.IDRequest{}))
	pokemon.GET("/:id/rating", handler.Handle(h.Pokemon.Handler, h.Pokemon.GetPokemonRating, http.StatusOK, &model.IDRequest{}))
	pokemon.GET("/name/:name", handler.Handle(h.Pokemon.Handler, h.Pokemon.GetPokemonByName, http.StatusOK, &model.GetPokemonByNameRequest{}))
	pokemon.POST("", handler.Handle(h.Pokemon.Handler, h.Pokemon.CreatePokemon, http.StatusOK, &model.CreatePokemonRequest{}), protect)
	pokemon.PUT("/:id", handler.HandleNoContent(h.Pokemon.Handler, h.Pokemon.UpdatePokemon, http.StatusNoContent, &model.UpdatePokemonRequest{}), protect)
	pokemon.DELETE("/:id", handler.HandleNoContent(h.Pokemon.Handler, h.Pokemon.DeletePokemon, http.StatusNoContent, &model.IDRequest{}), protect)

	reviewer := api.Group("/reviewer")
	reviewer.GET("", handler.Handle(h.Reviewer.Handler, h.Reviewer.GetReviewers, http.StatusOK, &model.EmptyRequest{}))
	reviewer.GET("/:id", handler.Handle(h.Reviewer.Handler, h.Reviewer.GetReviewer, http.StatusOK, &model.IDRequest{}))
	reviewer.GET("/:id/reviews", handler.Handle(h.Reviewer.Handler, h.Reviewer.GetReviewsByReviewer, http.StatusOK, &model.IDRequest{}))
	reviewer.POST("", handler.Handle(h.Reviewer.Handler, h.Reviewer.CreateReviewer, http.StatusOK, &model.CreateReviewerRequest{}), protect)
	reviewer.PUT("/:id", handler.HandleNoContent(h.Reviewer.Handler, h.Reviewer.UpdateReviewer, http.StatusNoContent, &model.UpdateReviewerRequest{}), protect)
	reviewer.DELETE("/:id", handler.HandleNoContent(h.Reviewer.Handler, h.Reviewer.DeleteReviewer, http.StatusNoContent, &model.IDRequest{}), protect)

	review := api.Group("/review")
	review.GET("", handler.Handle(h.Review.Handler, h.Review.GetReviews, http.StatusOK, &model.EmptyRequest{}))
	review.GET("/:id", handler.Handle(h.Review.Handler, h.Review.GetReview, http.StatusOK, &model.IDRequest{}))
	review.GET("/pokemon/:pokemonId", handler.Handle(h.Review.Handler, h.Review.GetReviewsOfPokemon, http.StatusOK, &model.PokemonIDRequest{}))
	review.POST("", handler.Handle(h.Review.Handler, h.Review.CreateReview, http.StatusOK, &model.CreateReviewRequest{}), protect)
	review.PUT("/:id", handler.HandleNoContent(h.Review.Handler, h.Review.UpdateReview, http.StatusNoContent, &model.UpdateReviewRequest{}), protect)
	review.DELETE("/:id", handler.HandleNoContent(h.Review.Handler, h.Review.DeleteReview, http.StatusNoContent, &model.IDRequest{}), protect)
}
