package model

type Reviewer struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

type CreateReviewerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

func (r *CreateReviewerRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateReviewerRequest) ToReviewer() *Reviewer {
	return &Reviewer{FirstName: clean(r.FirstName), LastName: clean(r.LastName)}
}

type UpdateReviewerRequest struct {
	PathID    int    `param:"id" json:"-" validate:"required,gt=0"`
	ID        int    `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

func (r *UpdateReviewerRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateReviewerRequest) ToReviewer() *Reviewer {
	return &Reviewer{ID: r.ID, FirstName: clean(r.FirstName), LastName: clean(r.LastName)}
}
