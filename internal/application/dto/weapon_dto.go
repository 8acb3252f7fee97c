package dto

// CreateWeaponRequest entrada para crear un arma.
type CreateWeaponRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	CategoryID  int64  `json:"category_id" validate:"required"`
	Description string `json:"description"`
}

// UpdateWeaponRequest entrada para actualizar un arma (campos opcionales).
// Si CategoryID viene, se re-valida que la categoría exista.
type UpdateWeaponRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	CategoryID  *int64  `json:"category_id"`
	Description *string `json:"description"`
}

// WeaponResponse salida de un arma.
type WeaponResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CategoryID  int64  `json:"category_id"`
	Description string `json:"description"`
}
