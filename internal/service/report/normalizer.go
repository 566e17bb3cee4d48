package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/acceso-labs/acceso-backend-go/internal/domain/event"
	"github.com/acceso-labs/acceso-backend-go/internal/pkg/period"
)

// DayEvents groups one employee's resolved events under one report day.
// A shift that crosses midnight stays on the date of its entry event.
type DayEvents struct {
	Date      time.Time
	Events    []event.Normalized
	Anomalies []string
}

// NormalizeResult carries the usable days plus per-row rejections. Rejected
// rows never abort the batch; they are surfaced on the report.
type NormalizeResult struct {
	Days     []DayEvents
	Rejected []string
}

// Normalize validates, localizes, deduplicates and direction-resolves raw
// rows for one employee. Rows must belong to a single employee; ordering of
// the input does not matter.
func Normalize(rows []event.RawEvent, loc *time.Location) NormalizeResult {
	var result NormalizeResult

	type candidate struct {
		ts  time.Time
		dir event.Direction
	}
	var code string
	candidates := make([]candidate, 0, len(rows))
	for _, row := range rows {
		if row.Timestamp.IsZero() {
			result.Rejected = append(result.Rejected, fmt.Sprintf("row %s: missing timestamp", row.ID))
			continue
		}
		if row.EmployeeCode == "" {
			result.Rejected = append(result.Rejected, fmt.Sprintf("row %s: missing employee code", row.ID))
			continue
		}
		if code == "" {
			code = row.EmployeeCode
		}
		dir := row.Direction
		if dir != event.DirectionEntry && dir != event.DirectionExit {
			dir = event.DirectionUnknown
		}
		candidates = append(candidates, candidate{ts: row.Timestamp.In(loc), dir: dir})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].ts.Equal(candidates[j].ts) {
			return candidates[i].ts.Before(candidates[j].ts)
		}
		return candidates[i].dir < candidates[j].dir
	})

	// Identical instant plus identical direction is the same physical
	// record delivered twice; keep one so reruns are idempotent.
	deduped := candidates[:0]
	for i, c := range candidates {
		if i > 0 && c.ts.Equal(candidates[i-1].ts) && c.dir == candidates[i-1].dir {
			continue
		}
		deduped = append(deduped, c)
	}

	var (
		days     []*DayEvents
		byDate   = map[time.Time]*DayEvents{}
		prev     *event.Normalized
		prevDate time.Time
	)
	bucket := func(date time.Time) *DayEvents {
		if day, ok := byDate[date]; ok {
			return day
		}
		day := &DayEvents{Date: date}
		byDate[date] = day
		days = append(days, day)
		return day
	}

	for _, c := range deduped {
		date := period.Day(c.ts)
		resolved, inferred := resolveDirection(c.dir, prev, prevDate, date)

		// An exit directly following the previous day's entry closes an
		// overnight shift; it belongs to the entry's date.
		attributed := date
		if resolved == event.DirectionExit && prev != nil &&
			prev.Direction == event.DirectionEntry &&
			prevDate.AddDate(0, 0, 1).Equal(date) {
			attributed = prevDate
		}

		day := bucket(attributed)
		if n := len(day.Events); n > 0 && day.Events[n-1].Direction == resolved {
			// Two consecutive same-direction events are a data anomaly.
			// Keep both and surface the day; never repair silently.
			day.Anomalies = append(day.Anomalies, fmt.Sprintf(
				"consecutive %s events at %s and %s",
				resolved,
				day.Events[n-1].Timestamp.Format(time.RFC3339),
				c.ts.Format(time.RFC3339),
			))
		}

		normalized := event.Normalized{
			EmployeeCode: code,
			Timestamp:    c.ts,
			Direction:    resolved,
			Inferred:     inferred,
		}
		day.Events = append(day.Events, normalized)
		prev = &normalized
		prevDate = attributed
	}

	result.Days = make([]DayEvents, 0, len(days))
	for _, day := range days {
		result.Days = append(result.Days, *day)
	}
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Date.Before(result.Days[j].Date)
	})
	return result
}

// resolveDirection fills in an unknown direction by strict alternation with
// the previous resolved event. The first event of a fresh day defaults to an
// entry; an unknown event the morning after an unmatched entry reads as the
// overnight exit.
func resolveDirection(dir event.Direction, prev *event.Normalized, prevDate, date time.Time) (event.Direction, bool) {
	if dir != event.DirectionUnknown {
		return dir, false
	}
	if prev == nil {
		return event.DirectionEntry, true
	}
	if prevDate.Equal(date) {
		if prev.Direction == event.DirectionEntry {
			return event.DirectionExit, true
		}
		return event.DirectionEntry, true
	}
	if prev.Direction == event.DirectionEntry && prevDate.AddDate(0, 0, 1).Equal(date) {
		return event.DirectionExit, true
	}
	return event.DirectionEntry, true
}
