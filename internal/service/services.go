// Package service contains the business logic. It sits between the
// handler and repository layers: it receives validated requests, checks
// the rules that span entities and calls the repositories.
package service

import (
	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/lib/job"
	"github.com/deppfellow/pokemon-review/internal/repository"
	"github.com/deppfellow/pokemon-review/internal/server"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Category *CategoryService
	Country  *CountryService
	Owner    *OwnerService
	Pokemon  *PokemonService
	Review   *ReviewService
	Reviewer *ReviewerService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier ReviewNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	services := NewCatalogServices(s.Logger, StoresFrom(repos), notifier)
	services.Auth = NewAuthService(s.Config.Auth)
	services.Job = s.Job
	return services, nil
}

// Stores is the set of repositories the entity services read and write.
type Stores struct {
	Category CategoryRepository
	Country  CountryRepository
	Owner    OwnerRepository
	Pokemon  PokemonRepository
	Review   ReviewRepository
	Reviewer ReviewerRepository
}

// StoresFrom adapts the PostgreSQL repositories.
func StoresFrom(repos *repository.Repositories) Stores {
	return Stores{
		Category: repos.Category,
		Country:  repos.Country,
		Owner:    repos.Owner,
		Pokemon:  repos.Pokemon,
		Review:   repos.Review,
		Reviewer: repos.Reviewer,
	}
}

// NewCatalogServices builds the entity services alone, for tools that run
// without the HTTP server. notifier may be nil.
func NewCatalogServices(logger *zerolog.Logger, repos Stores, notifier ReviewNotifier) *Services {
	return &Services{
		Category: NewCategoryService(logger, repos.Category),
		Country:  NewCountryService(logger, repos.Country, repos.Owner),
		Owner:    NewOwnerService(logger, repos.Owner, repos.Country),
		Pokemon:  NewPokemonService(logger, repos.Pokemon, repos.Owner, repos.Category),
		Review:   NewReviewService(logger, repos.Review, repos.Pokemon, repos.Reviewer, notifier),
		Reviewer: NewReviewerService(logger, repos.Reviewer, repos.Review),
	}
}
