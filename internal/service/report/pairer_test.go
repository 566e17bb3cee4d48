package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
)

func normalized(ts time.Time, dir event.Direction) event.Normalized {
	return event.Normalized{EmployeeCode: "EMP-001", Timestamp: ts, Direction: dir}
}

func dayOf(events ...event.Normalized) DayEvents {
	return DayEvents{Date: at(17, 0, 0), Events: events}
}

func TestPairSessionsTwoClosedSessions(t *testing.T) {
	day := dayOf(
		normalized(at(17, 8, 0), event.DirectionEntry),
		normalized(at(17, 12, 0), event.DirectionExit),
		normalized(at(17, 13, 0), event.DirectionEntry),
		normalized(at(17, 17, 0), event.DirectionExit),
	)

	sessions, anomalies := PairSessions("EMP-001", day)

	require.Len(t, sessions, 2)
	assert.Empty(t, anomalies)
	assert.Equal(t, 4*time.Hour, sessions[0].Duration())
	assert.Equal(t, 4*time.Hour, sessions[1].Duration())
	assert.False(t, sessions[0].Open())
	assert.Equal(t, "EMP-001", sessions[0].EmployeeCode)
}

func TestPairSessionsTrailingEntryStaysOpen(t *testing.T) {
	day := dayOf(normalized(at(17, 8, 0), event.DirectionEntry))

	sessions, anomalies := PairSessions("EMP-001", day)

	require.Len(t, sessions, 1)
	assert.Empty(t, anomalies)
	assert.True(t, sessions[0].Open())
	assert.Equal(t, time.Duration(0), sessions[0].Duration())
}

func TestPairSessionsAbandonedEntry(t *testing.T) {
	// A second entry before any exit abandons the first one: it is emitted
	// as a permanently open session without an anomaly of its own.
	day := dayOf(
		normalized(at(17, 8, 0), event.DirectionEntry),
		normalized(at(17, 9, 0), event.DirectionEntry),
		normalized(at(17, 17, 0), event.DirectionExit),
	)

	sessions, anomalies := PairSessions("EMP-001", day)

	require.Len(t, sessions, 2)
	assert.Empty(t, anomalies)
	assert.True(t, sessions[0].Open())
	assert.Equal(t, at(17, 8, 0), sessions[0].Entry)
	assert.False(t, sessions[1].Open())
	assert.Equal(t, 8*time.Hour, sessions[1].Duration())
}

func TestPairSessionsOrphanExitDiscarded(t *testing.T) {
	day := dayOf(
		normalized(at(17, 7, 0), event.DirectionExit),
		normalized(at(17, 8, 0), event.DirectionEntry),
		normalized(at(17, 17, 0), event.DirectionExit),
	)

	sessions, anomalies := PairSessions("EMP-001", day)

	require.Len(t, sessions, 1)
	assert.Equal(t, 9*time.Hour, sessions[0].Duration())
	require.Len(t, anomalies, 1)
	assert.Contains(t, anomalies[0], "without a preceding entry")
}

func TestPairSessionsExitMustFollowEntry(t *testing.T) {
	exitAtEntry := normalized(at(17, 8, 0), event.DirectionExit)
	day := dayOf(
		normalized(at(17, 8, 0), event.DirectionEntry),
		exitAtEntry,
	)

	sessions, anomalies := PairSessions("EMP-001", day)

	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Open())
	require.Len(t, anomalies, 1)
	assert.Contains(t, anomalies[0], "does not follow its entry")
}
