package bilan

import (
	"cmp"
	"slices"
	"time"

	"github.com/guillaumevincent/monpatrimoine/internal/models"
)

// Wealth summarises a snapshot.
type Wealth struct {
	// Gross is the sum of the positive non-debt category totals.
	Gross int64 `json:"gross"`
	// Liabilities is |debt| plus the magnitude of every negative non-debt total.
	Liabilities int64 `json:"liabilities"`
	// Net is Gross - Liabilities and may be negative.
	Net int64 `json:"net"`
	// DebtRatio is Liabilities / Gross * 100, or 0 when Gross is not positive.
	DebtRatio float64 `json:"debt_ratio"`
}

// Snapshot is the aggregated state of the positions for one date.
//
// Percentages of non-debt categories are shares of the sum of their
// absolute totals. The debt slot holds the debt ratio instead.
type Snapshot struct {
	Date        string      `json:"date"`
	Amounts     Amounts     `json:"amounts"`
	Percentages Percentages `json:"percentages"`
	Wealth      Wealth      `json:"wealth"`
}

// Compute aggregates records into snapshots. The first snapshot is dated
// now and uses the most recent record of each position; it is followed by
// one snapshot per distinct record date, most recent first, each using only
// the records carrying exactly that date.
//
// Records whose position is unknown are ignored, as are positions with an
// undeclared category. Several records for the same position and date are
// summed. Compute never fails and does not modify its inputs.
func Compute(positions []models.Position, records []models.ValueRecord, now time.Time) []Snapshot {
	instants := parseInstants(records)
	dates := sortedDates(instants)

	snapshots := make([]Snapshot, 0, 1+len(dates))

	var current Amounts
	for _, p := range positions {
		if !p.Category.Valid() {
			continue
		}
		if i := latestIndex(records, instants, p.ID); i >= 0 {
			current[p.Category] += records[i].Amount
		}
	}
	snapshots = append(snapshots, summarize(FormatDate(now), current))

	for _, date := range dates {
		var totals Amounts
		for _, p := range positions {
			if !p.Category.Valid() {
				continue
			}
			for _, r := range records {
				if r.Date == date && r.PositionID == p.ID {
					totals[p.Category] += r.Amount
				}
			}
		}
		snapshots = append(snapshots, summarize(date, totals))
	}

	return snapshots
}

// Latest returns the most recent record of a position. When several records
// share the most recent date, the one appearing last in records wins.
func Latest(records []models.ValueRecord, positionID string) (models.ValueRecord, bool) {
	i := latestIndex(records, parseInstants(records), positionID)
	if i < 0 {
		return models.ValueRecord{}, false
	}
	return records[i], true
}

// Dates returns the distinct record dates, most recent first.
func Dates(records []models.ValueRecord) []string {
	return sortedDates(parseInstants(records))
}

// instant is the parsed form of a record date. Unparseable dates sort
// before every valid one.
type instant struct {
	t  time.Time
	ok bool
}

func (a instant) compare(b instant) int {
	switch {
	case a.ok && b.ok:
		return a.t.Compare(b.t)
	case a.ok:
		return 1
	case b.ok:
		return -1
	}
	return 0
}

func parseInstants(records []models.ValueRecord) map[string]instant {
	instants := make(map[string]instant, len(records))
	for _, r := range records {
		if _, seen := instants[r.Date]; seen {
			continue
		}
		t, err := ParseDate(r.Date)
		instants[r.Date] = instant{t: t, ok: err == nil}
	}
	return instants
}

// sortedDates orders dates by instant, descending. Distinct strings denoting
// the same instant stay distinct and are ordered by string, descending.
func sortedDates(instants map[string]instant) []string {
	dates := make([]string, 0, len(instants))
	for d := range instants {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b string) int {
		if c := instants[b].compare(instants[a]); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	return dates
}

func latestIndex(records []models.ValueRecord, instants map[string]instant, positionID string) int {
	best := -1
	for i, r := range records {
		if r.PositionID != positionID {
			continue
		}
		if best < 0 || instants[r.Date].compare(instants[records[best].Date]) >= 0 {
			best = i
		}
	}
	return best
}

func summarize(date string, totals Amounts) Snapshot {
	var w Wealth
	var totalAbs int64
	for _, c := range models.Categories() {
		if c.IsDebt() {
			continue
		}
		v := totals[c]
		if v > 0 {
			w.Gross += v
		} else {
			w.Liabilities += -v
		}
		totalAbs += abs(v)
	}
	w.Liabilities += abs(totals[models.CategoryDebt])
	w.Net = w.Gross - w.Liabilities
	if w.Gross > 0 {
		w.DebtRatio = float64(w.Liabilities) / float64(w.Gross) * 100
	}

	var pct Percentages
	if totalAbs > 0 {
		for _, c := range models.Categories() {
			if c.IsDebt() {
				continue
			}
			pct[c] = float64(abs(totals[c])) / float64(totalAbs) * 100
		}
	}
	pct[models.CategoryDebt] = w.DebtRatio

	return Snapshot{
		Date:        date,
		Amounts:     totals,
		Percentages: pct,
		Wealth:      w,
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
