package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanosorio/weapons-api/internal/application/dto"
	"github.com/seanosorio/weapons-api/internal/application/usecase"
	"github.com/seanosorio/weapons-api/internal/domain"
)

func newWeaponUC(t *testing.T) (*usecase.WeaponUseCase, int64, *fakeWeaponRepo) {
	t.Helper()
	categories := newFakeCategoryRepo()
	weapons := newFakeWeaponRepo()
	tx := &fakeTxRunner{categories: categories, weapons: weapons}

	categoryUC := usecase.NewCategoryUseCase(categories, weapons, tx)
	created, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Great Sword"})
	require.NoError(t, err)

	return usecase.NewWeaponUseCase(weapons, tx), created.ID, weapons
}

func int64Ptr(n int64) *int64 { return &n }

func TestWeaponCreate_LuegoGet_DevuelveLoMismo(t *testing.T) {
	uc, categoryID, _ := newWeaponUC(t)

	created, err := uc.Create(context.Background(), dto.CreateWeaponRequest{
		Name:        "Rathalos Glinsword",
		CategoryID:  categoryID,
		Description: "Espada forjada con materiales de Rathalos",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, categoryID, created.CategoryID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Rathalos Glinsword", got.Name)
	assert.Equal(t, "Espada forjada con materiales de Rathalos", got.Description)
}

func TestWeaponCreate_SinCamposObligatorios_RetornaInvalidInput(t *testing.T) {
	uc, categoryID, weapons := newWeaponUC(t)

	cases := []dto.CreateWeaponRequest{
		{Name: "", CategoryID: categoryID},
		{Name: "   ", CategoryID: categoryID},
		{Name: "Buster Sword", CategoryID: 0},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, weapons.weapons, "una validación fallida no debe persistir nada")
}

// Crear un arma con category_id inexistente falla y no persiste ninguna fila.
func TestWeaponCreate_CategoriaInexistente_NoPersiste(t *testing.T) {
	uc, _, weapons := newWeaponUC(t)

	_, err := uc.Create(context.Background(), dto.CreateWeaponRequest{Name: "X", CategoryID: 999})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Empty(t, weapons.weapons)
}

func TestWeaponGetByID_Inexistente_DevuelveNil(t *testing.T) {
	uc, _, _ := newWeaponUC(t)

	got, err := uc.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeaponList_DevuelveTodas(t *testing.T) {
	uc, categoryID, _ := newWeaponUC(t)

	for _, name := range []string{"Buster Sword", "Chrome Razor"} {
		_, err := uc.Create(context.Background(), dto.CreateWeaponRequest{Name: name, CategoryID: categoryID})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Buster Sword", list[0].Name)
	assert.Equal(t, "Chrome Razor", list[1].Name)
}

func TestWeaponUpdate_Parcial_SoloCamposProvistos(t *testing.T) {
	uc, categoryID, _ := newWeaponUC(t)

	created, err := uc.Create(context.Background(), dto.CreateWeaponRequest{
		Name:       "Rathalos Glinsword",
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateWeaponRequest{
		Description: strPtr("Versión mejorada"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Rathalos Glinsword", updated.Name)
	assert.Equal(t, categoryID, updated.CategoryID)
	assert.Equal(t, "Versión mejorada", updated.Description)
}

func TestWeaponUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newWeaponUC(t)

	_, err := uc.Update(context.Background(), 999, dto.UpdateWeaponRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Actualizar category_id a una categoría inexistente falla y deja la fila intacta.
func TestWeaponUpdate_CategoriaInexistente_NoModifica(t *testing.T) {
	uc, categoryID, weapons := newWeaponUC(t)

	created, err := uc.Create(context.Background(), dto.CreateWeaponRequest{
		Name:       "Iron Katana",
		CategoryID: categoryID,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateWeaponRequest{
		Name:       strPtr("Iron Katana+"),
		CategoryID: int64Ptr(999),
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	stored := weapons.weapons[created.ID]
	assert.Equal(t, categoryID, stored.CategoryID, "category_id almacenado no debe cambiar")
	assert.Equal(t, "Iron Katana", stored.Name, "no debe haber actualización parcial")
}

func TestWeaponUpdate_CambioDeCategoriaValida_Funciona(t *testing.T) {
	categories := newFakeCategoryRepo()
	weapons := newFakeWeaponRepo()
	tx := &fakeTxRunner{categories: categories, weapons: weapons}
	categoryUC := usecase.NewCategoryUseCase(categories, weapons, tx)
	uc := usecase.NewWeaponUseCase(weapons, tx)

	first, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Great Sword"})
	require.NoError(t, err)
	second, err := categoryUC.Create(dto.CreateCategoryRequest{Name: "Long Sword"})
	require.NoError(t, err)

	created, err := uc.Create(context.Background(), dto.CreateWeaponRequest{Name: "Eager Cleaver", CategoryID: first.ID})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateWeaponRequest{CategoryID: int64Ptr(second.ID)})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.CategoryID)
}

func TestWeaponDelete_Funciona(t *testing.T) {
	uc, categoryID, _ := newWeaponUC(t)

	created, err := uc.Create(context.Background(), dto.CreateWeaponRequest{Name: "Bone Blade", CategoryID: categoryID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWeaponDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _, _ := newWeaponUC(t)

	err := uc.Delete(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
