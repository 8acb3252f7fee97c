package entity

// Weapon representa un arma específica dentro de una categoría (many-to-one).
// CategoryID siempre debe referenciar una categoría existente; la validación
// ocurre en el caso de uso antes de persistir, con la FK como respaldo.
type Weapon struct {
	ID          int64
	Name        string
	CategoryID  int64
	Description string // vacío si no se proporcionó
}
