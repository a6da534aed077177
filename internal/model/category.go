package model

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateCategoryRequest) ToCategory() *Category {
	return &Category{Name: clean(r.Name)}
}

// UpdateCategoryRequest replaces a category. ID in the body must match the
// :id path parameter.
type UpdateCategoryRequest struct {
	PathID int    `param:"id" json:"-" validate:"required,gt=0"`
	ID     int    `json:"id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,max=100"`
}

func (r *UpdateCategoryRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateCategoryRequest) ToCategory() *Category {
	return &Category{ID: r.ID, Name: clean(r.Name)}
}
