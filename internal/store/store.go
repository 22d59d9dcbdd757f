// Package store is the key-value persistence layer. Every collection is a
// whole JSON document under one key; callers treat a missing key and an
// unreadable value the same way.
package store

import "errors"

// ErrNotFound is returned by Get for keys that were never written.
var ErrNotFound = errors.New("store: key not found")

type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Persisted keys. The inventory app and the order/stock module keep separate
// namespaces and never read each other's keys.
const (
	KeyProducts   = "inv_products"
	KeyEmployees  = "inv_employees"
	KeyActivities = "inv_activities"
	KeySession    = "inv_current_user"

	KeyOrders = "ord_orders"
	KeyStock  = "ord_stock"
)
