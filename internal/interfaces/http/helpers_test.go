package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/seanosorio/weapons-api/internal/application/usecase"
	"github.com/seanosorio/weapons-api/internal/domain"
	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/domain/repository"
	apphttp "github.com/seanosorio/weapons-api/internal/interfaces/http"
)

// ── Helpers de test: repositorios en memoria + app Fiber completa ─────────────

type memStore struct {
	categories map[int64]entity.Category
	weapons    map[int64]entity.Weapon
	nextCatID  int64
	nextWpnID  int64
}

func newMemStore() *memStore {
	return &memStore{
		categories: make(map[int64]entity.Category),
		weapons:    make(map[int64]entity.Weapon),
	}
}

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range r.s.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.nextCatID++
	c.ID = r.s.nextCatID
	r.s.categories[c.ID] = *c
	return nil
}

func (r memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r memCategoryRepo) List() ([]*entity.Category, error) {
	var list []*entity.Category
	for id := int64(1); id <= r.s.nextCatID; id++ {
		if c, ok := r.s.categories[id]; ok {
			c := c
			list = append(list, &c)
		}
	}
	return list, nil
}

func (r memCategoryRepo) Update(c *entity.Category) error {
	r.s.categories[c.ID] = *c
	return nil
}

func (r memCategoryRepo) Delete(id int64) error {
	delete(r.s.categories, id)
	return nil
}

type memWeaponRepo struct{ s *memStore }

func (r memWeaponRepo) Create(w *entity.Weapon) error {
	r.s.nextWpnID++
	w.ID = r.s.nextWpnID
	r.s.weapons[w.ID] = *w
	return nil
}

func (r memWeaponRepo) GetByID(id int64) (*entity.Weapon, error) {
	w, ok := r.s.weapons[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r memWeaponRepo) List() ([]*entity.Weapon, error) {
	var list []*entity.Weapon
	for id := int64(1); id <= r.s.nextWpnID; id++ {
		if w, ok := r.s.weapons[id]; ok {
			w := w
			list = append(list, &w)
		}
	}
	return list, nil
}

func (r memWeaponRepo) ListByCategory(categoryID int64) ([]*entity.Weapon, error) {
	all, _ := r.List()
	var list []*entity.Weapon
	for _, w := range all {
		if w.CategoryID == categoryID {
			list = append(list, w)
		}
	}
	return list, nil
}

func (r memWeaponRepo) CountByCategory(categoryID int64) (int64, error) {
	var count int64
	for _, w := range r.s.weapons {
		if w.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r memWeaponRepo) Update(w *entity.Weapon) error {
	r.s.weapons[w.ID] = *w
	return nil
}

func (r memWeaponRepo) Delete(id int64) error {
	delete(r.s.weapons, id)
	return nil
}

type memTxRunner struct{ s *memStore }

func (r memTxRunner) Run(_ context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	weaponRepo repository.WeaponRepository,
) error) error {
	return fn(memCategoryRepo{r.s}, memWeaponRepo{r.s})
}

// buildTestApp construye una app Fiber completa con casos de uso reales sobre
// repositorios en memoria: el mismo router que usa cmd/api.
func buildTestApp() (*fiber.App, *memStore) {
	store := newMemStore()
	categoryRepo := memCategoryRepo{store}
	weaponRepo := memWeaponRepo{store}
	tx := memTxRunner{store}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categoryRepo, weaponRepo, tx),
		WeaponUC:   usecase.NewWeaponUseCase(weaponRepo, tx),
	})
	return app, store
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON de la respuesta en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
