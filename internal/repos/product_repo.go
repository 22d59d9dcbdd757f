package repos

import (
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

type ProductRepo struct{ st store.Store }

func NewProductRepo(st store.Store) *ProductRepo { return &ProductRepo{st: st} }

// List returns products in stored (insertion) order. An unreadable
// collection reads as empty.
func (r *ProductRepo) List() []domain.Product {
	var out []domain.Product
	getJSON(r.st, store.KeyProducts, &out)
	return out
}

func (r *ProductRepo) Get(id int) (*domain.Product, bool) {
	for _, p := range r.List() {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}

// Add assigns the next id (max existing + 1, or 1 when empty), stamps the
// update time and appends. Ids below the current maximum are never reused.
func (r *ProductRepo) Add(name, category string, qty, min int, price float64) (domain.Product, error) {
	prods := r.List()
	id := 1
	for _, p := range prods {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	added := domain.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Qty:      qty,
		Min:      min,
		Price:    price,
		Updated:  time.Now(),
	}
	prods = append(prods, added)
	return added, putJSON(r.st, store.KeyProducts, prods)
}

// Edit overlays the present patch fields onto the stored record and
// refreshes the update time. A missing id is a pure no-op.
func (r *ProductRepo) Edit(id int, patch domain.ProductPatch) (*domain.Product, bool) {
	prods := r.List()
	for i := range prods {
		if prods[i].ID != id {
			continue
		}
		if patch.Name != nil {
			prods[i].Name = *patch.Name
		}
		if patch.Category != nil {
			prods[i].Category = *patch.Category
		}
		if patch.Qty != nil {
			prods[i].Qty = *patch.Qty
		}
		if patch.Min != nil {
			prods[i].Min = *patch.Min
		}
		if patch.Price != nil {
			prods[i].Price = *patch.Price
		}
		prods[i].Updated = time.Now()
		if err := putJSON(r.st, store.KeyProducts, prods); err != nil {
			return nil, false
		}
		p := prods[i]
		return &p, true
	}
	return nil, false
}

// Delete removes the matching record and reports the removed name.
// A missing id leaves the collection untouched.
func (r *ProductRepo) Delete(id int) (string, bool) {
	prods := r.List()
	for i := range prods {
		if prods[i].ID != id {
			continue
		}
		name := prods[i].Name
		prods = append(prods[:i], prods[i+1:]...)
		if err := putJSON(r.st, store.KeyProducts, prods); err != nil {
			return "", false
		}
		return name, true
	}
	return "", false
}
