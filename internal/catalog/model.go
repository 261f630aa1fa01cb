package catalog

// Product is a catalog entry with a mutable stock count. Order lines hold
// shared references to the live product, so stock and price reads always
// reflect the current state.
type Product struct {
	ID    int
	Name  string
	Price float64
	Stock int
}

// DecreaseStock subtracts qty from the stock count. A qty larger than the
// current stock leaves the count unchanged; stock never goes below zero.
func (p *Product) DecreaseStock(qty int) {
	if qty <= p.Stock {
		p.Stock -= qty
	}
}

// IncreaseStock adds qty to the stock count unconditionally.
func (p *Product) IncreaseStock(qty int) {
	p.Stock += qty
}
