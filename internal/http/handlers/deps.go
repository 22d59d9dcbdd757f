package handlers

import (
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
	"github.com/Maicol0120/dulce-bendicion/internal/services"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

type Deps struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	ProductHandler   *ProductHandler
	EmployeeHandler  *EmployeeHandler
	OrderHandler     *OrderHandler

	Auth *services.AuthService
}

func NewDeps(st store.Store) *Deps {
	prodRepo := repos.NewProductRepo(st)
	empRepo := repos.NewEmployeeRepo(st)
	sessRepo := repos.NewSessionRepo(st)
	acts := repos.NewActivityLog(st)
	orderRepo := repos.NewOrderRepo(st)
	stockRepo := repos.NewStockRepo(st)

	authSvc := services.NewAuthService(empRepo, sessRepo, acts)
	invSvc := services.NewInventoryService(prodRepo, sessRepo, acts)
	staffSvc := services.NewStaffService(empRepo, acts)
	dashSvc := services.NewDashboardService(prodRepo, empRepo, acts)
	orderSvc := services.NewOrderService(orderRepo, stockRepo)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: authSvc},
		DashboardHandler: &DashboardHandler{Dash: dashSvc, Auth: authSvc},
		ProductHandler:   &ProductHandler{Inv: invSvc},
		EmployeeHandler:  &EmployeeHandler{Staff: staffSvc},
		OrderHandler:     &OrderHandler{Orders: orderSvc},
		Auth:             authSvc,
	}
}
