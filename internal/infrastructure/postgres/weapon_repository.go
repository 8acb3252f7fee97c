package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seanosorio/weapons-api/internal/domain"
	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/domain/repository"
)

var _ repository.WeaponRepository = (*WeaponRepo)(nil)

// WeaponRepo implementación del puerto WeaponRepository sobre PostgreSQL (usable con pool o tx).
type WeaponRepo struct {
	q Querier
}

// NewWeaponRepository construye el adaptador de persistencia para armas. Pasar pool o tx (Querier).
func NewWeaponRepository(q Querier) *WeaponRepo {
	return &WeaponRepo{q: q}
}

// Create persiste una nueva arma y asigna el ID generado por la base.
// Una FK inválida devuelve ErrCategoryNotFound (respaldo del chequeo del caso de uso).
func (r *WeaponRepo) Create(weapon *entity.Weapon) error {
	query := `
		INSERT INTO weapons (name, category_id, description)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		weapon.Name, weapon.CategoryID, weapon.Description,
	).Scan(&weapon.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert weapon: %w", err)
	}
	return nil
}

// GetByID obtiene un arma por ID. Devuelve (nil, nil) si no existe.
func (r *WeaponRepo) GetByID(id int64) (*entity.Weapon, error) {
	query := `SELECT id, name, category_id, description FROM weapons WHERE id = $1`
	var w entity.Weapon
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Name, &w.CategoryID, &w.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weapon: %w", err)
	}
	return &w, nil
}

// List devuelve todas las armas en orden de inserción.
func (r *WeaponRepo) List() ([]*entity.Weapon, error) {
	return r.queryList(`SELECT id, name, category_id, description FROM weapons ORDER BY id`)
}

// ListByCategory devuelve las armas de una categoría.
func (r *WeaponRepo) ListByCategory(categoryID int64) ([]*entity.Weapon, error) {
	return r.queryList(`SELECT id, name, category_id, description FROM weapons WHERE category_id = $1 ORDER BY id`, categoryID)
}

func (r *WeaponRepo) queryList(query string, args ...any) ([]*entity.Weapon, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weapons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Weapon
	for rows.Next() {
		var w entity.Weapon
		if err := rows.Scan(&w.ID, &w.Name, &w.CategoryID, &w.Description); err != nil {
			return nil, fmt.Errorf("scan weapon: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// CountByCategory cuenta las armas que referencian una categoría.
func (r *WeaponRepo) CountByCategory(categoryID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM weapons WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count weapons by category: %w", err)
	}
	return count, nil
}

// Update actualiza un arma existente.
func (r *WeaponRepo) Update(weapon *entity.Weapon) error {
	query := `UPDATE weapons SET name = $2, category_id = $3, description = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		weapon.ID, weapon.Name, weapon.CategoryID, weapon.Description,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update weapon: %w", err)
	}
	return nil
}

// Delete elimina un arma por ID.
func (r *WeaponRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM weapons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete weapon: %w", err)
	}
	return nil
}
