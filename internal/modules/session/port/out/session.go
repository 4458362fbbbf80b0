package out

import "cruxlog/internal/modules/session/domain"

// HistoryStore keeps finished sessions in completion order.
type HistoryStore interface {
	Append(session domain.SessionData)
	List() []domain.SessionData
	Find(id string) (domain.SessionData, bool)
}

// SummaryRenderer turns a session into a shareable markdown report.
type SummaryRenderer interface {
	Render(session domain.SessionData) (name, markdown string, err error)
}
