package repos

import (
	"time"

	"github.com/Maicol0120/dulce-bendicion/internal/domain"
	"github.com/Maicol0120/dulce-bendicion/internal/store"
)

// historyCap bounds the activity feed; anything older is silently dropped.
const historyCap = 500

// ActivityLog is an append-only, newest-first audit trail of user actions.
type ActivityLog struct{ st store.Store }

func NewActivityLog(st store.Store) *ActivityLog { return &ActivityLog{st: st} }

// Record prepends a new entry and truncates to the newest historyCap.
func (l *ActivityLog) Record(user, action, product string) error {
	acts := l.List()
	acts = append([]domain.ActivityRecord{{
		User:      user,
		Action:    action,
		Product:   product,
		Timestamp: time.Now(),
	}}, acts...)
	if len(acts) > historyCap {
		acts = acts[:historyCap]
	}
	return putJSON(l.st, store.KeyActivities, acts)
}

// List returns the feed in stored order, newest first.
func (l *ActivityLog) List() []domain.ActivityRecord {
	var out []domain.ActivityRecord
	getJSON(l.st, store.KeyActivities, &out)
	return out
}
