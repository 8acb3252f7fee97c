package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seanosorio/weapons-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	WeaponUC   *usecase.WeaponUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Get("/:id/weapons", categoryHandler.ListWeapons)

	weapons := app.Group("/weapons")
	weaponHandler := NewWeaponHandler(deps.WeaponUC)
	weapons.Get("/", weaponHandler.List)
	weapons.Post("/", weaponHandler.Create)
	weapons.Get("/:id", weaponHandler.GetByID)
	weapons.Put("/:id", weaponHandler.Update)
	weapons.Delete("/:id", weaponHandler.Delete)
}
