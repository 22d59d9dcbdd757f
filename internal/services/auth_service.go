package services

import (
	"errors"
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid username or password")

const (
	adminUsername = "admin"
	adminName     = "Dueño"

	// Fixed demo credentials: the admin's own password and the password
	// shared by every employee account.
	adminSecret = "admin"
	staffSecret = "123456"

	actLogin = "Inicio sesión"
)

type AuthService struct {
	Employees *repos.EmployeeRepo
	Sessions  *repos.SessionRepo
	Acts      *repos.ActivityLog

	adminHash []byte
	staffHash []byte
}

func NewAuthService(emps *repos.EmployeeRepo, sess *repos.SessionRepo, acts *repos.ActivityLog) *AuthService {
	ah, _ := bcrypt.GenerateFromPassword([]byte(adminSecret), bcrypt.DefaultCost)
	sh, _ := bcrypt.GenerateFromPassword([]byte(staffSecret), bcrypt.DefaultCost)
	return &AuthService{Employees: emps, Sessions: sess, Acts: acts, adminHash: ah, staffHash: sh}
}

// Login validates the fixed admin account first, then the shared employee
// secret against the roster. Failure has no side effects.
func (s *AuthService) Login(username, password string) (*domain.Session, error) {
	if username == adminUsername && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		sess := domain.Session{Username: adminUsername, Name: adminName, Role: domain.RoleAdmin, LastAccess: time.Now()}
		if err := s.Sessions.Set(sess); err != nil {
			return nil, err
		}
		_ = s.Acts.Record(sess.Username, actLogin, "")
		return &sess, nil
	}

	if _, ok := s.Employees.Find(username); ok && bcrypt.CompareHashAndPassword(s.staffHash, []byte(password)) == nil {
		emp, ok := s.Employees.TouchAccess(username, time.Now())
		if !ok {
			return nil, ErrBadCreds
		}
		sess := domain.Session{Username: emp.Username, Name: emp.Name, Role: emp.Role, LastAccess: emp.LastAccess}
		if err := s.Sessions.Set(sess); err != nil {
			return nil, err
		}
		_ = s.Acts.Record(sess.Username, actLogin, "")
		return &sess, nil
	}

	return nil, ErrBadCreds
}

// Logout removes the session record entirely.
func (s *AuthService) Logout() error {
	return s.Sessions.Clear()
}

// Current returns the active session, or nil.
func (s *AuthService) Current() *domain.Session {
	return s.Sessions.Current()
}
