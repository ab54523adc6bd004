package products

// Product representa un producto vendible. El nombre funciona como clave
// natural: la creación de ventas hace upsert por nombre.
type Product struct {
	ID    string
	Name  string
	Price float64
}
