package repos

import (
	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// SessionRepo holds the single current-user record: overwritten on login,
// deleted on logout. At most one session exists per store.
type SessionRepo struct{ st store.Store }

func NewSessionRepo(st store.Store) *SessionRepo { return &SessionRepo{st: st} }

// Current returns the active session, or nil when nobody is logged in.
func (r *SessionRepo) Current() *domain.Session {
	var s domain.Session
	if !getJSON(r.st, store.KeySession, &s) {
		return nil
	}
	return &s
}

func (r *SessionRepo) Set(s domain.Session) error {
	return putJSON(r.st, store.KeySession, s)
}

func (r *SessionRepo) Clear() error {
	return r.st.Delete(store.KeySession)
}
