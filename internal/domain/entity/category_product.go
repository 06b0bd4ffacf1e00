package entity

// CategoryProduct es una fila de la tabla de asociación N:M entre
// Product y Category. Las filas se borran y recrean en bloque cuando
// se reemplaza el conjunto de categorías de un producto.
type CategoryProduct struct {
	ProductID  string
	CategoryID string
}
