package entity

// Category representa una categoría de armas (Great Sword, Dual Blades, etc.).
// Cada categoría agrupa cero o más armas; el nombre es único en todo el sistema.
type Category struct {
	ID          int64
	Name        string
	Description string // vacío si no se proporcionó
}
