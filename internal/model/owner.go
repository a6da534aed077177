package model

// Owner is a trainer. Every owner lives in exactly one country.
type Owner struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Gym       string `json:"gym" db:"gym"`
	CountryID int    `json:"country_id" db:"country_id"`
}

// CreateOwnerRequest is bound from POST /api/owner?countryId=N.
type CreateOwnerRequest struct {
	CountryID int    `query:"countryId" json:"-" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gym       string `json:"gym" validate:"max=100"`
}

func (r *CreateOwnerRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateOwnerRequest) ToOwner() *Owner {
	return &Owner{
		FirstName: clean(r.FirstName),
		LastName:  clean(r.LastName),
		Gym:       clean(r.Gym),
		CountryID: r.CountryID,
	}
}

// UpdateOwnerRequest replaces the owner's names and gym. The country is kept.
type UpdateOwnerRequest struct {
	PathID    int    `param:"id" json:"-" validate:"required,gt=0"`
	ID        int    `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Gym       string `json:"gym" validate:"max=100"`
}

func (r *UpdateOwnerRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateOwnerRequest) ToOwner() *Owner {
	return &Owner{
		ID:        r.ID,
		FirstName: clean(r.FirstName),
		LastName:  clean(r.LastName),
		Gym:       clean(r.Gym),
	}
}
