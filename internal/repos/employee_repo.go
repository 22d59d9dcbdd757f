package repos

import (
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

type EmployeeRepo struct{ st store.Store }

func NewEmployeeRepo(st store.Store) *EmployeeRepo { return &EmployeeRepo{st: st} }

func (r *EmployeeRepo) List() []domain.Employee {
	var out []domain.Employee
	getJSON(r.st, store.KeyEmployees, &out)
	return out
}

func (r *EmployeeRepo) Find(username string) (*domain.Employee, bool) {
	for _, e := range r.List() {
		if e.Username == username {
			return &e, true
		}
	}
	return nil, false
}

// Add appends the record verbatim. Username uniqueness is the caller's
// responsibility.
func (r *EmployeeRepo) Add(e domain.Employee) error {
	emps := append(r.List(), e)
	return putJSON(r.st, store.KeyEmployees, emps)
}

// Remove filters out every entry with the given username.
func (r *EmployeeRepo) Remove(username string) error {
	emps := r.List()
	kept := emps[:0]
	for _, e := range emps {
		if e.Username != username {
			kept = append(kept, e)
		}
	}
	return putJSON(r.st, store.KeyEmployees, kept)
}

// TouchAccess updates lastAccess in place for the matching employee.
func (r *EmployeeRepo) TouchAccess(username string, t time.Time) (*domain.Employee, bool) {
	emps := r.List()
	for i := range emps {
		if emps[i].Username != username {
			continue
		}
		emps[i].LastAccess = t
		if err := putJSON(r.st, store.KeyEmployees, emps); err != nil {
			return nil, false
		}
		e := emps[i]
		return &e, true
	}
	return nil, false
}
