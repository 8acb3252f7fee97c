// seed carga las catorce categorías de armas base de Monster Hunter.
// Es idempotente: las categorías que ya existen se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/seanosorio/weapons-api/internal/domain/entity"
	"github.com/seanosorio/weapons-api/internal/infrastructure/postgres"
	"github.com/seanosorio/weapons-api/pkg/config"
)

var baseCategories = []entity.Category{
	{Name: "Great Sword", Description: "Espada pesada de dos manos con gran poder de ataque"},
	{Name: "Long Sword", Description: "Katana de alcance medio con medidor de espíritu"},
	{Name: "Sword and Shield", Description: "Arma ligera y versátil con escudo"},
	{Name: "Dual Blades", Description: "Par de espadas rápidas con modo demonio"},
	{Name: "Hammer", Description: "Arma contundente especializada en aturdir"},
	{Name: "Hunting Horn", Description: "Arma contundente que otorga melodías de apoyo"},
	{Name: "Lance", Description: "Lanza defensiva de gran alcance con escudo"},
	{Name: "Gunlance", Description: "Lanza con mecanismo de disparo explosivo"},
	{Name: "Switch Axe", Description: "Arma transformable entre modo hacha y espada"},
	{Name: "Charge Blade", Description: "Espada y escudo transformables en hacha con viales"},
	{Name: "Insect Glaive", Description: "Glaive aéreo acompañado de un kinsecto"},
	{Name: "Light Bowgun", Description: "Ballesta ligera de disparo rápido"},
	{Name: "Heavy Bowgun", Description: "Ballesta pesada de gran potencia"},
	{Name: "Bow", Description: "Arco de ataque a distancia con viales de recubrimiento"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migración de esquema: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewCategoryRepository(pool)
	created := 0
	for _, c := range baseCategories {
		existing, err := repo.GetByName(c.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "consultar categoría %q: %v\n", c.Name, err)
			os.Exit(1)
		}
		if existing != nil {
			continue
		}
		category := c
		if err := repo.Create(&category); err != nil {
			fmt.Fprintf(os.Stderr, "crear categoría %q: %v\n", c.Name, err)
			os.Exit(1)
		}
		created++
	}
	fmt.Printf("seed completado: %d categorías nuevas, %d ya existían\n", created, len(baseCategories)-created)
}
