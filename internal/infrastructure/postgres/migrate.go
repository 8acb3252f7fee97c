package postgres

import (
	"context"
	"fmt"
)

// Migrate crea las tablas si no existen. Es segura de ejecutar en cada arranque.
// ON DELETE RESTRICT respalda la política de borrado: una categoría con armas
// asociadas no puede eliminarse.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS weapon_categories (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL UNIQUE,
    description VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS weapons (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    category_id BIGINT NOT NULL REFERENCES weapon_categories(id) ON DELETE RESTRICT,
    description VARCHAR(255) NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_weapons_category_id ON weapons(category_id);
`
