package repository

import "github.com/seanosorio/weapons-api/internal/domain/entity"

// WeaponRepository define el puerto de persistencia para Weapon (DIP).
// GetByID devuelve (nil, nil) cuando no existe el registro.
type WeaponRepository interface {
	Create(weapon *entity.Weapon) error
	GetByID(id int64) (*entity.Weapon, error)
	List() ([]*entity.Weapon, error)
	ListByCategory(categoryID int64) ([]*entity.Weapon, error)
	CountByCategory(categoryID int64) (int64, error)
	Update(weapon *entity.Weapon) error
	Delete(id int64) error
}
