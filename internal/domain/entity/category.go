package entity

import "time"

// Category representa una categoría de productos del restaurante.
// Eliminar una categoría elimina en cascada sus productos; la cascada
// la aplica la base de datos (FK ON DELETE CASCADE), no la aplicación.
type Category struct {
	ID        string
	Name      string // único, no vacío
	CreatedAt time.Time
}
