package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/deppfellow/pokemon-review/internal/sqlerr"
)

func notFound(entity string) error {
	code := strings.ToUpper(entity) + "_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("%s not found", entity), true, &code)
}

func idMismatch(pathID, bodyID int) error {
	code := "ID_MISMATCH"
	return errs.NewBadRequestError(
		fmt.Sprintf("Path id %d does not match body id %d", pathID, bodyID),
		true, &code, nil, nil)
}

// storeRejected is the 500 returned when the store reports that nothing was
// written. The message is shown to clients.
func storeRejected(message string) error {
	err := errs.NewInternalServerError().WithMessage(message)
	err.Override = true
	return err
}

func saveFailed() error {
	return storeRejected("Something went wrong while saving")
}

func deleteFailed() error {
	return storeRejected("Something went wrong while deleting")
}

// storeError maps a repository error onto an API error. Anything that ends
// up as a 500 is logged with the original cause.
func storeError(logger *zerolog.Logger, op string, err error) error {
	mapped := sqlerr.HandleError(err)

	var httpErr *errs.HTTPError
	if errors.As(mapped, &httpErr) && httpErr.Status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("operation", op).Msg("store operation failed")
	}
	return mapped
}

// ensureExists returns a 404 for entity when id is unknown to repo.
func ensureExists(ctx context.Context, logger *zerolog.Logger, repo exister, entity string, id int) error {
	found, err := repo.Exists(ctx, id)
	if err != nil {
		return storeError(logger, "exists "+strings.ToLower(entity), err)
	}
	if !found {
		return notFound(entity)
	}
	return nil
}

// getOrNotFound converts a missing row into a 404 for entity.
func getOrNotFound[T any](logger *zerolog.Logger, entity string, item *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFound(entity)
	}
	if err != nil {
		return nil, storeError(logger, "get "+strings.ToLower(entity), err)
	}
	return item, nil
}
