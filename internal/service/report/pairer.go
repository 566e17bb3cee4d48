package report

import (
	"fmt"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/domain/report"
)

// PairSessions walks one day's events in timestamp order and pairs each
// entry with the next exit. An entry followed by another entry is abandoned
// as a permanently open session; an exit with no open entry cannot yield a
// duration and is discarded as an anomaly. A trailing open entry is emitted
// open: the employee simply has not clocked out yet.
func PairSessions(code string, day DayEvents) ([]report.WorkSession, []string) {
	var (
		sessions  []report.WorkSession
		anomalies []string
		pending   *report.WorkSession
	)

	for _, ev := range day.Events {
		switch ev.Direction {
		case event.DirectionEntry:
			if pending != nil {
				sessions = append(sessions, *pending)
			}
			pending = &report.WorkSession{
				EmployeeCode: code,
				Date:         day.Date,
				Entry:        ev.Timestamp,
			}
		case event.DirectionExit:
			if pending == nil {
				anomalies = append(anomalies, fmt.Sprintf(
					"exit at %s without a preceding entry, discarded",
					ev.Timestamp.Format(time.RFC3339),
				))
				continue
			}
			if !ev.Timestamp.After(pending.Entry) {
				anomalies = append(anomalies, fmt.Sprintf(
					"exit at %s does not follow its entry, discarded",
					ev.Timestamp.Format(time.RFC3339),
				))
				continue
			}
			exit := ev.Timestamp
			pending.Exit = &exit
			sessions = append(sessions, *pending)
			pending = nil
		}
	}

	if pending != nil {
		sessions = append(sessions, *pending)
	}
	return sessions, anomalies
}
