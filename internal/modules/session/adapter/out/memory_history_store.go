package out

import (
	"cruxlog/internal/modules/session/domain"
	sessionout "cruxlog/internal/modules/session/port/out"
)

// MemoryHistoryStore is an append-only list of finished sessions that lives
// as long as the process.
type MemoryHistoryStore struct {
	sessions []domain.SessionData
}

func NewMemoryHistoryStore() sessionout.HistoryStore {
	return &MemoryHistoryStore{}
}

func (s *MemoryHistoryStore) Append(session domain.SessionData) {
	s.sessions = append(s.sessions, session.Clone())
}

func (s *MemoryHistoryStore) List() []domain.SessionData {
	out := make([]domain.SessionData, 0, len(s.sessions))
	for _, session := range s.sessions {
		out = append(out, session.Clone())
	}
	return out
}

func (s *MemoryHistoryStore) Find(id string) (domain.SessionData, bool) {
	for _, session := range s.sessions {
		if session.ID == id {
			return session.Clone(), true
		}
	}
	return domain.SessionData{}, false
}
