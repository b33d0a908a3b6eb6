package entity

// CategoryRef resultado del join products -> categories. Valid es false cuando
// la referencia falta o la categoría fue eliminada; el nombre de respaldo
// ("Sin categoría") se resuelve una sola vez al armar el snapshot, no aquí.
type CategoryRef struct {
	Name  string
	Valid bool
}

// ProductWithCategory producto junto con el nombre de su categoría.
type ProductWithCategory struct {
	Product
	Category CategoryRef
}
