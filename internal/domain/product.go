package domain

// LowStockThreshold is the quantity at or below which the product page
// flags an item as low stock.
const LowStockThreshold = 10

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
}

type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ProductCode string     `json:"product_code"`
	Categories  []Category `json:"categories"`
	Cost        Amount     `json:"cost"`
	Price       Amount     `json:"price"`
	Quantity    int        `json:"quantity"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   Timestamp  `json:"created_at"`
	UpdatedAt   Timestamp  `json:"updated_at"`
}

func (p Product) LowStock() bool {
	return p.Quantity <= LowStockThreshold
}

// Margin is the per-unit profit; MarginPercent is relative to price.
func (p Product) Margin() float64 {
	return p.Price.Float() - p.Cost.Float()
}

func (p Product) MarginPercent() float64 {
	if p.Price.Float() == 0 {
		return 0
	}
	return p.Margin() / p.Price.Float() * 100
}

func (p Product) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return names
}
