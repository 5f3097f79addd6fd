package entity

// CartItem una entrada del carrito: snapshot del producto (no referencia)
// más una cantidad. Invariante tras cualquier mutación: quantity <= product.stock.
// El límite inferior solo se aplica en UpdateQuantity (ver application/cart).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
