package usecase

import (
	"context"
	"strings"

	"github.com/seanosorio/weapons-api/internal/application/dto"
	"github.com/seanosorio/weapons-api/internal/domain"
	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías de armas.
// El borrado corre en transacción: la verificación de armas asociadas y el
// DELETE deben ver el mismo estado.
type CategoryUseCase struct {
	repo       repository.CategoryRepository
	weaponRepo repository.WeaponRepository
	tx         TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, weaponRepo repository.WeaponRepository, tx TxRunner) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, weaponRepo: weaponRepo, tx: tx}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID. Devuelve (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// Create crea una nueva categoría. El nombre es obligatorio y único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		Name:        name,
		Description: in.Description,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría. Aplica solo los campos provistos.
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != category.Name {
			existing, err := uc.repo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría sin armas asociadas. Política de borrado:
// rechazar con ErrCategoryInUse mientras existan armas que la referencien.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.Run(ctx, func(categoryRepo repository.CategoryRepository, weaponRepo repository.WeaponRepository) error {
		category, err := categoryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		count, err := weaponRepo.CountByCategory(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCategoryInUse
		}
		return categoryRepo.Delete(id)
	})
}

// ListWeapons devuelve una categoría junto con sus armas.
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) ListWeapons(id int64) (*dto.CategoryWeaponsResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	weapons, err := uc.weaponRepo.ListByCategory(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryWeaponItem, 0, len(weapons))
	for _, w := range weapons {
		items = append(items, dto.CategoryWeaponItem{
			ID:          w.ID,
			Name:        w.Name,
			Description: w.Description,
		})
	}
	return &dto.CategoryWeaponsResponse{
		Category: dto.CategoryHeader{ID: category.ID, Name: category.Name},
		Weapons:  items,
	}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
