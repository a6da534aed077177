package model

// Review is a reviewer's rating of a pokemon, from 1 to 5.
type Review struct {
	ID         int    `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Text       string `json:"text" db:"text"`
	Rating     int    `json:"rating" db:"rating"`
	PokemonID  int    `json:"pokemon_id" db:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id" db:"reviewer_id"`
}

// CreateReviewRequest is bound from POST /api/review?reviewerId=N&pokemonId=M.
type CreateReviewRequest struct {
	ReviewerID int    `query:"reviewerId" json:"-" validate:"required,gt=0"`
	PokemonID  int    `query:"pokemonId" json:"-" validate:"required,gt=0"`
	Title      string `json:"title" validate:"required,max=200"`
	Text       string `json:"text" validate:"max=4000"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}

func (r *CreateReviewRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateReviewRequest) ToReview() *Review {
	return &Review{
		Title:      clean(r.Title),
		Text:       r.Text,
		Rating:     r.Rating,
		PokemonID:  r.PokemonID,
		ReviewerID: r.ReviewerID,
	}
}

// UpdateReviewRequest replaces title, text and rating. The reviewed pokemon
// and the author are kept.
type UpdateReviewRequest struct {
	PathID int    `param:"id" json:"-" validate:"required,gt=0"`
	ID     int    `json:"id" validate:"required,gt=0"`
	Title  string `json:"title" validate:"required,max=200"`
	Text   string `json:"text" validate:"max=4000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

func (r *UpdateReviewRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateReviewRequest) ToReview() *Review {
	return &Review{
		ID:     r.ID,
		Title:  clean(r.Title),
		Text:   r.Text,
		Rating: r.Rating,
	}
}
