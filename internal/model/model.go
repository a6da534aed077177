// Package model holds the persisted entities and the request payloads the
// HTTP layer binds them from.
//
// Entities carry both `db` tags (read with pgx.RowToStructByName) and `json`
// tags, so the stored record is also the response body.
package model

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EmptyRequest is bound by routes that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// IDRequest carries the :id path parameter.
type IDRequest struct {
	ID int `param:"id" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// PokemonIDRequest carries the :pokemonId path parameter.
type PokemonIDRequest struct {
	PokemonID int `param:"pokemonId" validate:"required,gt=0"`
}

func (r *PokemonIDRequest) Validate() error {
	return validate.Struct(r)
}

// OwnerIDRequest carries the :ownerId path parameter.
type OwnerIDRequest struct {
	OwnerID int `param:"ownerId" validate:"required,gt=0"`
}

func (r *OwnerIDRequest) Validate() error {
	return validate.Struct(r)
}

// clean trims the surrounding whitespace the uniqueness rules ignore.
func clean(s string) string {
	return strings.TrimSpace(s)
}
