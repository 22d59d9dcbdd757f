package domain

import "time"

type Product struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Qty      int       `json:"qty"`
	Min      int       `json:"min"` // reorder threshold
	Price    float64   `json:"price"`
	Updated  time.Time `json:"updated"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool { return p.Qty <= p.Min }

// ProductPatch is a partial update: only non-nil fields are applied.
type ProductPatch struct {
	Name     *string
	Category *string
	Qty      *int
	Min      *int
	Price    *float64
}

type ActivityRecord struct {
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Product   string    `json:"product"` // denormalized product name, "" when unrelated
	Timestamp time.Time `json:"timestamp"`
}

// OrderRecord belongs to the standalone order/stock module. It shares no
// identity with Product even when names coincide.
type OrderRecord struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	Product   string `json:"product"`
	Qty       int    `json:"qty"`
	CreatedAt string `json:"createdAt"` // display-formatted at creation time
}

type StockItem struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}
