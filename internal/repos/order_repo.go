package repos

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// OrderRepo and StockRepo back the standalone order/stock module. Both are
// append-and-list only; records are never edited or deleted.

type OrderRepo struct{ st store.Store }

func NewOrderRepo(st store.Store) *OrderRepo { return &OrderRepo{st: st} }

func (r *OrderRepo) List() []domain.OrderRecord {
	var out []domain.OrderRecord
	getJSON(r.st, store.KeyOrders, &out)
	return out
}

func (r *OrderRepo) Append(o domain.OrderRecord) error {
	return putJSON(r.st, store.KeyOrders, append(r.List(), o))
}

type StockRepo struct{ st store.Store }

func NewStockRepo(st store.Store) *StockRepo { return &StockRepo{st: st} }

func (r *StockRepo) List() []domain.StockItem {
	var out []domain.StockItem
	getJSON(r.st, store.KeyStock, &out)
	return out
}

func (r *StockRepo) Append(item domain.StockItem) error {
	return putJSON(r.st, store.KeyStock, append(r.List(), item))
}
