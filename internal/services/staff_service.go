package services

import (
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"
)

const (
	actAddEmployee    = "Agregó empleado"
	actRemoveEmployee = "Eliminó empleado"
)

// StaffService manages the employee roster. Roster changes are admin
// actions and are attributed to "admin" in the activity feed.
type StaffService struct {
	Employees *repos.EmployeeRepo
	Acts      *repos.ActivityLog
}

func NewStaffService(emps *repos.EmployeeRepo, acts *repos.ActivityLog) *StaffService {
	return &StaffService{Employees: emps, Acts: acts}
}

func (s *StaffService) List() []domain.Employee {
	return s.Employees.List()
}

func (s *StaffService) Add(username, name string) error {
	err := s.Employees.Add(domain.Employee{
		Username:   username,
		Name:       name,
		Role:       domain.RoleEmployee,
		LastAccess: time.Now(),
	})
	if err != nil {
		return err
	}
	return s.Acts.Record(adminUsername, actAddEmployee, username)
}

// Remove deletes every roster entry for username. The activity is recorded
// whether or not a match existed.
func (s *StaffService) Remove(username string) error {
	if err := s.Employees.Remove(username); err != nil {
		return err
	}
	return s.Acts.Record(adminUsername, actRemoveEmployee, username)
}
