package services

import (
	"fmt"
	"strings"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
)

// Stats summarizes the product collection for either dashboard.
type Stats struct {
	TotalProducts int
	LowStock      int    // products at or below their reorder threshold
	TotalItems    int    // sum of quantities
	TotalValue    string // Σ(qty·price), currency-prefixed, 2 decimals
}

type AdminView struct {
	Welcome    string
	Stats      Stats
	Products   []domain.Product
	Employees  []domain.Employee // roster without the admin account
	Activities []domain.ActivityRecord
}

type EmployeeView struct {
	Welcome  string
	Stats    Stats
	Products []domain.Product
}

// DashboardService builds pure view models; rendering stays in the HTTP
// layer.
type DashboardService struct {
	Products  *repos.ProductRepo
	Employees *repos.EmployeeRepo
	Acts      *repos.ActivityLog
}

func NewDashboardService(prods *repos.ProductRepo, emps *repos.EmployeeRepo, acts *repos.ActivityLog) *DashboardService {
	return &DashboardService{Products: prods, Employees: emps, Acts: acts}
}

func BuildStats(prods []domain.Product) Stats {
	st := Stats{TotalProducts: len(prods)}
	value := 0.0
	for _, p := range prods {
		if p.LowStock() {
			st.LowStock++
		}
		st.TotalItems += p.Qty
		value += float64(p.Qty) * p.Price
	}
	st.TotalValue = fmt.Sprintf("$%.2f", value)
	return st
}

// FilterProducts keeps products whose name or category contains the query,
// case-insensitively. An empty query keeps everything.
func FilterProducts(prods []domain.Product, q string) []domain.Product {
	if q == "" {
		return prods
	}
	q = strings.ToLower(q)
	var out []domain.Product
	for _, p := range prods {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *DashboardService) Admin(sess *domain.Session, q string) AdminView {
	prods := s.Products.List()

	var roster []domain.Employee
	for _, e := range s.Employees.List() {
		if e.Username != adminUsername {
			roster = append(roster, e)
		}
	}

	return AdminView{
		Welcome:    fmt.Sprintf("Bienvenido, %s", sess.Name),
		Stats:      BuildStats(prods),
		Products:   FilterProducts(prods, q),
		Employees:  roster,
		Activities: s.Acts.List(),
	}
}

func (s *DashboardService) Employee(sess *domain.Session, q string) EmployeeView {
	prods := s.Products.List()
	return EmployeeView{
		Welcome:  fmt.Sprintf("Bienvenido, %s", sess.Name),
		Stats:    BuildStats(prods),
		Products: FilterProducts(prods, q),
	}
}
