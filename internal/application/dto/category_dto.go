package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryWeaponsResponse salida de GET /categories/{id}/weapons:
// cabecera de la categoría más sus armas (sin repetir category_id en cada arma).
type CategoryWeaponsResponse struct {
	Category CategoryHeader       `json:"category"`
	Weapons  []CategoryWeaponItem `json:"weapons"`
}

// CategoryHeader referencia mínima a una categoría.
type CategoryHeader struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CategoryWeaponItem arma dentro del listado por categoría.
type CategoryWeaponItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
