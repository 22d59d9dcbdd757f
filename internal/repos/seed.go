package repos

import (
	"log"
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// Seed populates demo data for any collection that is absent or unreadable.
// Idempotent: existing data is never overwritten. Safe to run every start.
func Seed(st store.Store) error {
	now := time.Now()

	var prods []domain.Product
	if !getJSON(st, store.KeyProducts, &prods) {
		log.Println("[seed] inserting demo products")
		demo := []domain.Product{
			{ID: 1, Name: "Pan Blanco", Category: "Pan", Qty: 150, Min: 50, Price: 1.5, Updated: now},
			{ID: 2, Name: "Pan Integral", Category: "Pan", Qty: 80, Min: 40, Price: 2.0, Updated: now},
			{ID: 3, Name: "Croissant", Category: "Bollería", Qty: 45, Min: 30, Price: 2.5, Updated: now},
			{ID: 4, Name: "Pastel de Chocolate", Category: "Pasteles", Qty: 12, Min: 5, Price: 25.0, Updated: now},
			{ID: 5, Name: "Galletas de Mantequilla", Category: "Galletas", Qty: 200, Min: 100, Price: 0.75, Updated: now},
			{ID: 6, Name: "Harina", Category: "Ingredientes", Qty: 25, Min: 50, Price: 1.2, Updated: now},
		}
		if err := putJSON(st, store.KeyProducts, demo); err != nil {
			return err
		}
	}

	var emps []domain.Employee
	if !getJSON(st, store.KeyEmployees, &emps) {
		log.Println("[seed] inserting demo accounts")
		demo := []domain.Employee{
			{Username: "admin", Name: "Dueño", Role: domain.RoleAdmin, LastAccess: now},
			{Username: "maria", Name: "María García", Role: domain.RoleEmployee, LastAccess: now},
			{Username: "juan", Name: "Juan Pérez", Role: domain.RoleEmployee, LastAccess: now},
			{Username: "ana", Name: "Ana Martínez", Role: domain.RoleEmployee, LastAccess: now},
		}
		if err := putJSON(st, store.KeyEmployees, demo); err != nil {
			return err
		}
	}

	var acts []domain.ActivityRecord
	if !getJSON(st, store.KeyActivities, &acts) {
		if err := putJSON(st, store.KeyActivities, []domain.ActivityRecord{}); err != nil {
			return err
		}
	}

	return nil
}
