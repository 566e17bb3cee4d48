package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
)

func rawEvent(id string, ts time.Time, dir event.Direction) event.RawEvent {
	return event.RawEvent{
		ID:           id,
		EmployeeCode: "EMP-001",
		Direction:    dir,
		Site:         "sede-principal",
		Timestamp:    ts,
	}
}

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.August, day, hour, min, 0, 0, time.UTC)
}

func TestNormalizeRejectsInvalidRows(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", time.Time{}, event.DirectionEntry),
		{ID: "b", Timestamp: at(17, 8, 0), Direction: event.DirectionEntry},
		rawEvent("c", at(17, 9, 0), event.DirectionEntry),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Rejected, 2)
	assert.Contains(t, result.Rejected[0], "row a")
	assert.Contains(t, result.Rejected[0], "missing timestamp")
	assert.Contains(t, result.Rejected[1], "row b")
	assert.Contains(t, result.Rejected[1], "missing employee code")
	require.Len(t, result.Days, 1)
	assert.Len(t, result.Days[0].Events, 1)
}

func TestNormalizeSortsAndDeduplicates(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 17, 0), event.DirectionExit),
		rawEvent("b", at(17, 8, 0), event.DirectionEntry),
		rawEvent("c", at(17, 8, 0), event.DirectionEntry),
		rawEvent("d", at(17, 17, 0), event.DirectionExit),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 1)
	day := result.Days[0]
	require.Len(t, day.Events, 2)
	assert.Equal(t, event.DirectionEntry, day.Events[0].Direction)
	assert.Equal(t, at(17, 8, 0), day.Events[0].Timestamp)
	assert.Equal(t, event.DirectionExit, day.Events[1].Direction)
	assert.Empty(t, day.Anomalies)
	assert.Equal(t, "EMP-001", day.Events[0].EmployeeCode)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 8, 0), event.DirectionEntry),
		rawEvent("b", at(17, 17, 0), event.DirectionExit),
	}
	doubled := append(append([]event.RawEvent{}, rows...), rows...)

	once := Normalize(rows, time.UTC)
	twice := Normalize(doubled, time.UTC)

	assert.Equal(t, once.Days, twice.Days)
}

func TestNormalizeInfersDirectionByAlternation(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 8, 0), event.DirectionUnknown),
		rawEvent("b", at(17, 12, 0), event.DirectionUnknown),
		rawEvent("c", at(17, 13, 0), event.DirectionUnknown),
		rawEvent("d", at(17, 17, 0), event.DirectionUnknown),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 1)
	day := result.Days[0]
	require.Len(t, day.Events, 4)
	want := []event.Direction{
		event.DirectionEntry, event.DirectionExit,
		event.DirectionEntry, event.DirectionExit,
	}
	for i, ev := range day.Events {
		assert.Equal(t, want[i], ev.Direction)
		assert.True(t, ev.Inferred)
	}
	assert.Empty(t, day.Anomalies)
}

func TestNormalizeExplicitDirectionWins(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 8, 0), event.DirectionEntry),
		rawEvent("b", at(17, 9, 0), event.DirectionEntry),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 1)
	day := result.Days[0]
	require.Len(t, day.Events, 2)
	assert.Equal(t, event.DirectionEntry, day.Events[1].Direction)
	assert.False(t, day.Events[1].Inferred)
	require.Len(t, day.Anomalies, 1)
	assert.Contains(t, day.Anomalies[0], "consecutive ENTRADA")
}

func TestNormalizeAttributesOvernightExitToEntryDate(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 22, 0), event.DirectionEntry),
		rawEvent("b", at(18, 2, 0), event.DirectionExit),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 1)
	day := result.Days[0]
	assert.Equal(t, at(17, 0, 0), day.Date)
	require.Len(t, day.Events, 2)
	assert.Equal(t, event.DirectionExit, day.Events[1].Direction)
}

func TestNormalizeInfersOvernightExit(t *testing.T) {
	// An unknown event the morning after an unmatched entry reads as the
	// exit of that shift, not a fresh entry.
	rows := []event.RawEvent{
		rawEvent("a", at(17, 22, 0), event.DirectionEntry),
		rawEvent("b", at(18, 6, 0), event.DirectionUnknown),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 1)
	day := result.Days[0]
	assert.Equal(t, at(17, 0, 0), day.Date)
	require.Len(t, day.Events, 2)
	assert.Equal(t, event.DirectionExit, day.Events[1].Direction)
	assert.True(t, day.Events[1].Inferred)
}

func TestNormalizeFreshDayStartsWithEntry(t *testing.T) {
	rows := []event.RawEvent{
		rawEvent("a", at(17, 8, 0), event.DirectionEntry),
		rawEvent("b", at(17, 17, 0), event.DirectionExit),
		rawEvent("c", at(18, 8, 0), event.DirectionUnknown),
	}

	result := Normalize(rows, time.UTC)

	require.Len(t, result.Days, 2)
	second := result.Days[1]
	assert.Equal(t, at(18, 0, 0), second.Date)
	require.Len(t, second.Events, 1)
	assert.Equal(t, event.DirectionEntry, second.Events[0].Direction)
	assert.True(t, second.Events[0].Inferred)
}

func TestNormalizeLocalizesTimestamps(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 03:00 UTC is 22:00 of the previous day in Bogota, so the report day
	// shifts back once localized.
	rows := []event.RawEvent{
		rawEvent("a", time.Date(2026, time.August, 18, 3, 0, 0, 0, time.UTC), event.DirectionEntry),
	}

	result := Normalize(rows, bogota)

	require.Len(t, result.Days, 1)
	assert.Equal(t, time.Date(2026, time.August, 17, 0, 0, 0, 0, bogota), result.Days[0].Date)
}
