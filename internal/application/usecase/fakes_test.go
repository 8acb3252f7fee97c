package usecase_test

import (
	"context"

	"github.com/seanosorio/weapons-api/internal/domain"
	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/domain/repository"
)

// ── Repositorios falsos en memoria para los tests de casos de uso ─────────────

type fakeCategoryRepo struct {
	categories map[int64]entity.Category
	nextID     int64
	failWith   error // si no es nil, toda operación falla con este error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]entity.Category)}
}

func (f *fakeCategoryRepo) Create(category *entity.Category) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, c := range f.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, c := range f.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	list := make([]*entity.Category, 0, len(f.categories))
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.categories[id]; ok {
			c := c
			list = append(list, &c)
		}
	}
	return list, nil
}

func (f *fakeCategoryRepo) Update(category *entity.Category) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, c := range f.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return domain.ErrDuplicate
		}
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) Delete(id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.categories, id)
	return nil
}

type fakeWeaponRepo struct {
	weapons  map[int64]entity.Weapon
	nextID   int64
	failWith error
}

func newFakeWeaponRepo() *fakeWeaponRepo {
	return &fakeWeaponRepo{weapons: make(map[int64]entity.Weapon)}
}

func (f *fakeWeaponRepo) Create(weapon *entity.Weapon) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	weapon.ID = f.nextID
	f.weapons[weapon.ID] = *weapon
	return nil
}

func (f *fakeWeaponRepo) GetByID(id int64) (*entity.Weapon, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	w, ok := f.weapons[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (f *fakeWeaponRepo) List() ([]*entity.Weapon, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	list := make([]*entity.Weapon, 0, len(f.weapons))
	for id := int64(1); id <= f.nextID; id++ {
		if w, ok := f.weapons[id]; ok {
			w := w
			list = append(list, &w)
		}
	}
	return list, nil
}

func (f *fakeWeaponRepo) ListByCategory(categoryID int64) ([]*entity.Weapon, error) {
	all, err := f.List()
	if err != nil {
		return nil, err
	}
	var list []*entity.Weapon
	for _, w := range all {
		if w.CategoryID == categoryID {
			list = append(list, w)
		}
	}
	return list, nil
}

func (f *fakeWeaponRepo) CountByCategory(categoryID int64) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for _, w := range f.weapons {
		if w.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeWeaponRepo) Update(weapon *entity.Weapon) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.weapons[weapon.ID] = *weapon
	return nil
}

func (f *fakeWeaponRepo) Delete(id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.weapons, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes (sin transacción real;
// los casos de uso verifican antes de escribir, así que un fallo no deja escrituras).
type fakeTxRunner struct {
	categories *fakeCategoryRepo
	weapons    *fakeWeaponRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	weaponRepo repository.WeaponRepository,
) error) error {
	return fn(f.categories, f.weapons)
}
