package usecase

import (
	"context"

	"github.com/seanosorio/weapons-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		weaponRepo repository.WeaponRepository,
	) error) error
}
