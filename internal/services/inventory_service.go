package services

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
)

const (
	actAddProduct    = "Agregó producto"
	actEditProduct   = "Editó producto"
	actDeleteProduct = "Eliminó producto"
)

// InventoryService wraps product mutations with activity attribution.
type InventoryService struct {
	Products *repos.ProductRepo
	Sessions *repos.SessionRepo
	Acts     *repos.ActivityLog
}

func NewInventoryService(prods *repos.ProductRepo, sess *repos.SessionRepo, acts *repos.ActivityLog) *InventoryService {
	return &InventoryService{Products: prods, Sessions: sess, Acts: acts}
}

// actor is the current session's username, or "?" when nobody is logged in.
func (s *InventoryService) actor() string {
	if cur := s.Sessions.Current(); cur != nil {
		return cur.Username
	}
	return "?"
}

func (s *InventoryService) List() []domain.Product {
	return s.Products.List()
}

func (s *InventoryService) Get(id int) (*domain.Product, bool) {
	return s.Products.Get(id)
}

func (s *InventoryService) Add(name, category string, qty, min int, price float64) (domain.Product, error) {
	added, err := s.Products.Add(name, category, qty, min, price)
	if err != nil {
		return domain.Product{}, err
	}
	_ = s.Acts.Record(s.actor(), actAddProduct, added.Name)
	return added, nil
}

// Edit applies a partial update. A missing id records no activity.
func (s *InventoryService) Edit(id int, patch domain.ProductPatch) (*domain.Product, bool) {
	p, ok := s.Products.Edit(id, patch)
	if !ok {
		return nil, false
	}
	_ = s.Acts.Record(s.actor(), actEditProduct, p.Name)
	return p, true
}

func (s *InventoryService) Delete(id int) bool {
	name, ok := s.Products.Delete(id)
	if !ok {
		return false
	}
	_ = s.Acts.Record(s.actor(), actDeleteProduct, name)
	return true
}

// Increment is the employee dashboard's only per-row action: qty+1 through
// the normal edit path.
func (s *InventoryService) Increment(id int) (*domain.Product, bool) {
	p, ok := s.Products.Get(id)
	if !ok {
		return nil, false
	}
	qty := p.Qty + 1
	return s.Edit(id, domain.ProductPatch{Qty: &qty})
}
