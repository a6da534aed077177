package model

import (
	"encoding/json"
	"time"
)

type Pokemon struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BirthDate time.Time `json:"birth_date" db:"birth_date"`
}

// PokemonCategory links a pokemon to one of its categories.
type PokemonCategory struct {
	PokemonID  int `json:"pokemon_id" db:"pokemon_id"`
	CategoryID int `json:"category_id" db:"category_id"`
}

// PokemonOwner links a pokemon to one of its owners.
type PokemonOwner struct {
	PokemonID int `json:"pokemon_id" db:"pokemon_id"`
	OwnerID   int `json:"owner_id" db:"owner_id"`
}

// CreatePokemonRequest is bound from POST /api/pokemon?ownerId=N&categoryId=M.
type CreatePokemonRequest struct {
	OwnerID    int       `query:"ownerId" json:"-" validate:"required,gt=0"`
	CategoryID int       `query:"categoryId" json:"-" validate:"required,gt=0"`
	Name       string    `json:"name" validate:"required,max=100"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
}

func (r *CreatePokemonRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreatePokemonRequest) ToPokemon() *Pokemon {
	return &Pokemon{Name: clean(r.Name), BirthDate: r.BirthDate}
}

type UpdatePokemonRequest struct {
	PathID    int       `param:"id" json:"-" validate:"required,gt=0"`
	ID        int       `json:"id" validate:"required,gt=0"`
	Name      string    `json:"name" validate:"required,max=100"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
}

func (r *UpdatePokemonRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdatePokemonRequest) ToPokemon() *Pokemon {
	return &Pokemon{ID: r.ID, Name: clean(r.Name), BirthDate: r.BirthDate}
}

type GetPokemonByNameRequest struct {
	Name string `param:"name" validate:"required,max=100"`
}

func (r *GetPokemonByNameRequest) Validate() error {
	return validate.Struct(r)
}

// RatingResponse is the body of GET /api/pokemon/:id/rating. Rating is
// written as a JSON number with no fixed precision.
type RatingResponse struct {
	PokemonID int         `json:"pokemon_id"`
	Rating    json.Number `json:"rating"`
}
