package usecase

import (
	"context"
	"strings"

	"github.com/seanosorio/weapons-api/internal/application/dto"
	"github.com/seanosorio/weapons-api/internal/domain"
	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/domain/repository"
)

// WeaponUseCase casos de uso CRUD para armas. Create y Update corren en
// transacción: el chequeo de integridad referencial y la escritura deben ver
// el mismo estado, y un chequeo fallido no deja nada persistido.
type WeaponUseCase struct {
	repo repository.WeaponRepository
	tx   TxRunner
}

// NewWeaponUseCase construye el caso de uso.
func NewWeaponUseCase(repo repository.WeaponRepository, tx TxRunner) *WeaponUseCase {
	return &WeaponUseCase{repo: repo, tx: tx}
}

// List devuelve todas las armas.
func (uc *WeaponUseCase) List() ([]dto.WeaponResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WeaponResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWeaponResponse(w))
	}
	return items, nil
}

// GetByID obtiene un arma por ID. Devuelve (nil, nil) si no existe.
func (uc *WeaponUseCase) GetByID(id int64) (*dto.WeaponResponse, error) {
	weapon, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if weapon == nil {
		return nil, nil
	}
	return toWeaponResponse(weapon), nil
}

// Create crea una nueva arma. name y category_id son obligatorios y la
// categoría debe existir (ErrCategoryNotFound si no).
func (uc *WeaponUseCase) Create(ctx context.Context, in dto.CreateWeaponRequest) (*dto.WeaponResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	weapon := &entity.Weapon{
		Name:        name,
		CategoryID:  in.CategoryID,
		Description: in.Description,
	}
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, weaponRepo repository.WeaponRepository) error {
		category, err := categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		return weaponRepo.Create(weapon)
	})
	if err != nil {
		return nil, err
	}
	return toWeaponResponse(weapon), nil
}

// Update actualiza un arma. Aplica solo los campos provistos; si cambia
// category_id se re-valida la categoría destino dentro de la misma transacción,
// de modo que un chequeo fallido deja la fila intacta.
func (uc *WeaponUseCase) Update(ctx context.Context, id int64, in dto.UpdateWeaponRequest) (*dto.WeaponResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.WeaponResponse
	err := uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, weaponRepo repository.WeaponRepository) error {
		weapon, err := weaponRepo.GetByID(id)
		if err != nil {
			return err
		}
		if weapon == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			weapon.Name = strings.TrimSpace(*in.Name)
		}
		if in.CategoryID != nil && *in.CategoryID != weapon.CategoryID {
			category, err := categoryRepo.GetByID(*in.CategoryID)
			if err != nil {
				return err
			}
			if category == nil {
				return domain.ErrCategoryNotFound
			}
			weapon.CategoryID = *in.CategoryID
		}
		if in.Description != nil {
			weapon.Description = *in.Description
		}
		if err := weaponRepo.Update(weapon); err != nil {
			return err
		}
		out = toWeaponResponse(weapon)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un arma por ID. ErrNotFound si no existe.
func (uc *WeaponUseCase) Delete(id int64) error {
	weapon, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if weapon == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toWeaponResponse(w *entity.Weapon) *dto.WeaponResponse {
	if w == nil {
		return nil
	}
	return &dto.WeaponResponse{
		ID:          w.ID,
		Name:        w.Name,
		CategoryID:  w.CategoryID,
		Description: w.Description,
	}
}
