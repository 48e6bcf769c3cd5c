package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btdosparca/league-system/models"
)

// Rejection categories, in precedence order. Only the highest-precedence
// non-empty category is reported per call.
type Category string

const (
	CategoryConflictingDates Category = "conflicting_dates"
	CategoryFutureDates      Category = "future_dates"
	CategoryInvalidRows      Category = "invalid_rows"
)

// RejectionError carries every offending row/date of the failing category,
// never just the first. The whole batch is rejected; nothing is materialized.
type RejectionError struct {
	Category Category
	Rows     []int    // offending spreadsheet lines, de-duplicated, first-seen order
	Dates    []string // conflicting dates formatted dd/mm/yyyy, first-seen order
}

func (e *RejectionError) Error() string {
	switch e.Category {
	case CategoryConflictingDates:
		return fmt.Sprintf("import failed: games already exist on the following date(s): %s. Please remove them from the spreadsheet.",
			strings.Join(e.Dates, ", "))
	case CategoryFutureDates:
		return fmt.Sprintf("import failed: future dates found on row(s): %s. Dates cannot be in the future.", joinInts(e.Rows))
	default:
		return fmt.Sprintf("import failed: invalid data or scores found on row(s): %s. Scores must be between 0 and 4, and one team must have exactly 4.", joinInts(e.Rows))
	}
}

// ErrMaterializeFailed covers row-level failures after validation passed,
// such as a player cell that is empty or no longer resolvable. The batch is
// aborted as a whole.
var ErrMaterializeFailed = errors.New("failed to materialize import rows")

// Result is the outcome of a validation run. Exactly one of the two fields is
// populated: PendingPlayers pauses the import awaiting registration, Matches
// is the normalized batch ready for persistence.
type Result struct {
	Matches        []models.Match
	PendingPlayers []string
}

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// utcDay truncates to UTC midnight of the calendar day.
func utcDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validScores(a, b int, aOK, bOK bool) bool {
	if !aOK || !bOK {
		return false
	}
	if a < 0 || a > models.WinningScore || b < 0 || b > models.WinningScore {
		return false
	}
	if a != models.WinningScore && b != models.WinningScore {
		return false
	}
	if a == models.WinningScore && b == models.WinningScore {
		return false
	}
	return true
}

// Validate cross-checks a parsed spreadsheet against the current roster and
// match history. Every pass scans the full row set before any record is
// produced, so a rejection lists all offending rows of its category.
// Precedence: conflicting dates, then future dates, then invalid score/date
// rows, then unknown players (a pause state, not a failure). Only when all
// passes are clean are matches materialized, all-or-nothing.
func Validate(rows []Row, players []models.Player, history []models.Match, now time.Time) (*Result, error) {
	endOfToday := utcDay(now.UTC()).Add(24*time.Hour - time.Nanosecond)

	existingDays := make(map[string]struct{}, len(history))
	for _, m := range history {
		existingDays[utcDay(m.Date.UTC()).Format("2006-01-02")] = struct{}{}
	}

	playerByName := make(map[string]models.Player, len(players))
	for _, p := range players {
		playerByName[strings.ToLower(strings.TrimSpace(p.Name))] = p
	}

	var (
		conflictingDates = newOrderedSet()
		futureRows       []int
		invalidRows      []int
		unknownNames     = newOrderedSet()
	)

	for _, row := range rows {
		scoreA, errA := strconv.Atoi(strings.TrimSpace(row.ScoreA))
		scoreB, errB := strconv.Atoi(strings.TrimSpace(row.ScoreB))
		if !validScores(scoreA, scoreB, errA == nil, errB == nil) {
			invalidRows = append(invalidRows, row.Line)
		}

		if date, ok := parseDate(row.Date); ok {
			if date.After(endOfToday) {
				futureRows = append(futureRows, row.Line)
			}
			if _, exists := existingDays[utcDay(date).Format("2006-01-02")]; exists {
				conflictingDates.add(utcDay(date).Format("02/01/2006"))
			}
		} else {
			// An unparseable date is reported as an invalid-data row,
			// same category as bad scores.
			invalidRows = append(invalidRows, row.Line)
		}

		for _, name := range row.Players {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, known := playerByName[strings.ToLower(name)]; !known {
				unknownNames.add(name)
			}
		}
	}

	switch {
	case conflictingDates.len() > 0:
		return nil, &RejectionError{Category: CategoryConflictingDates, Dates: conflictingDates.values()}
	case len(futureRows) > 0:
		return nil, &RejectionError{Category: CategoryFutureDates, Rows: dedupeInts(futureRows)}
	case len(invalidRows) > 0:
		return nil, &RejectionError{Category: CategoryInvalidRows, Rows: dedupeInts(invalidRows)}
	case unknownNames.len() > 0:
		// Recoverable pause: the caller registers these players and
		// re-submits the same file. No rows are materialized meanwhile.
		return &Result{PendingPlayers: unknownNames.values()}, nil
	}

	matches := make([]models.Match, 0, len(rows))
	for i, row := range rows {
		date, ok := parseDate(row.Date)
		if !ok {
			return nil, fmt.Errorf("%w: row %d", ErrMaterializeFailed, row.Line)
		}
		day := utcDay(date)

		var ids [4]string
		for j, name := range row.Players {
			p, known := playerByName[strings.ToLower(strings.TrimSpace(name))]
			if strings.TrimSpace(name) == "" || !known {
				return nil, fmt.Errorf("%w: row %d", ErrMaterializeFailed, row.Line)
			}
			ids[j] = p.ID
		}

		scoreA, err := strconv.Atoi(strings.TrimSpace(row.ScoreA))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d", ErrMaterializeFailed, row.Line)
		}
		scoreB, err := strconv.Atoi(strings.TrimSpace(row.ScoreB))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d", ErrMaterializeFailed, row.Line)
		}

		matches = append(matches, models.Match{
			// Deterministic identity: repeated runs over an unchanged
			// file produce the same ids. DayID is left for the storage
			// layer to assign.
			ID:    fmt.Sprintf("imported-%d-%d", day.UnixMilli(), i),
			Date:  day,
			TeamA: models.Team{Players: [2]string{ids[0], ids[1]}, Score: scoreA},
			TeamB: models.Team{Players: [2]string{ids[2], ids[3]}, Score: scoreB},
		})
	}
	return &Result{Matches: matches}, nil
}

type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) len() int { return len(s.order) }

func (s *orderedSet) values() []string { return s.order }

func dedupeInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func joinInts(in []int) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
