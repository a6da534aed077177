package model

type Country struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateCountryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateCountryRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateCountryRequest) ToCountry() *Country {
	return &Country{Name: clean(r.Name)}
}

type UpdateCountryRequest struct {
	PathID int    `param:"id" json:"-" validate:"required,gt=0"`
	ID     int    `json:"id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=100"`
}

func (r *UpdateCountryRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateCountryRequest) ToCountry() *Country {
	return &Country{ID: r.ID, Name: clean(r.Name)}
}
