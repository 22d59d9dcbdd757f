package services

import (
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"

	"github.com/google/uuid"
)

// createdAtLayout is a display format, not a sortable timestamp; the
// order page shows the string exactly as stamped.
const createdAtLayout = "02/01/2006 15:04:05"

// OrderService is the standalone order/stock module: append and list only,
// no roles, and no linkage to the product repository even when names match.
type OrderService struct {
	Orders *repos.OrderRepo
	Stock  *repos.StockRepo
}

func NewOrderService(orders *repos.OrderRepo, stock *repos.StockRepo) *OrderService {
	return &OrderService{Orders: orders, Stock: stock}
}

func (s *OrderService) AddOrder(customer, product string, qty int) (domain.OrderRecord, error) {
	o := domain.OrderRecord{
		ID:        uuid.NewString(),
		Customer:  customer,
		Product:   product,
		Qty:       qty,
		CreatedAt: time.Now().Format(createdAtLayout),
	}
	if err := s.Orders.Append(o); err != nil {
		return domain.OrderRecord{}, err
	}
	return o, nil
}

func (s *OrderService) ListOrders() []domain.OrderRecord {
	return s.Orders.List()
}

func (s *OrderService) AddStockItem(name string, stock int) error {
	return s.Stock.Append(domain.StockItem{Name: name, Stock: stock})
}

func (s *OrderService) ListStock() []domain.StockItem {
	return s.Stock.List()
}
