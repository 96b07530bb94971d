package journal

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"

	"tableflip.dev/daybook/pkg/day"
)

// ErrUnknownItem is returned by Merge when a change names an item the
// day's checklist does not hold.
var ErrUnknownItem = errors.New("unknown item")

// GetOrCreate returns the record for date. A missing record is seeded from
// the current global lists, every item incomplete, with a freshly drawn
// quote, and kept in memory. It is not written to storage until some later
// write happens, so a record that is only ever read does not survive a
// reload.
func (j *Journal) GetOrCreate(date string) day.Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.getOrCreate(date).Clone()
}

func (j *Journal) getOrCreate(date string) *day.Record {
	if rec, ok := j.days[date]; ok {
		return rec
	}
	rec := day.New(date, j.lists[day.Tasks], j.lists[day.Wellness], j.quotes.Pick())
	j.days[date] = rec
	return rec
}

// Update merges the provided top-level fields of p into the record for
// date and writes every record. Maps in p replace the record's maps whole.
func (j *Journal) Update(date string, p day.Patch) {
	j.mu.Lock()
	defer j.mu.Unlock()
	rec := j.getOrCreate(date)
	p.Apply(rec)
	j.saveDays()
}

// Merge is Update with the item maps of p laid over the record's current
// mappings instead of replacing them. Every named item must already be on
// the record; otherwise nothing changes and ErrUnknownItem is returned. The
// check and the write happen under one lock, so a concurrent SetList or
// Toggle is never undone.
func (j *Journal) Merge(date string, p day.Patch) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	rec := j.getOrCreate(date)

	var unknown []string
	for _, kind := range day.Kinds() {
		current := rec.Items(kind)
		for name := range patchItems(p, kind) {
			if _, ok := current[name]; !ok {
				unknown = append(unknown, string(kind)+"/"+name)
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownItem, strings.Join(unknown, ", "))
	}

	for _, kind := range day.Kinds() {
		if changes := patchItems(p, kind); changes != nil {
			maps.Copy(rec.Items(kind), changes)
		}
	}
	day.Patch{Score: p.Score, Notes: p.Notes}.Apply(rec)
	j.saveDays()
	return nil
}

func patchItems(p day.Patch, kind day.Kind) map[string]bool {
	if kind == day.Wellness {
		return p.Wellness
	}
	return p.Tasks
}

// Toggle flips item in the kind mapping of date's record. Items that are
// not part of the record are ignored.
func (j *Journal) Toggle(date string, kind day.Kind, item string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	items := j.getOrCreate(date).Items(kind)
	done, ok := items[item]
	if !ok {
		return
	}
	items[item] = !done
	j.saveDays()
}

// ProgressStats counts the completed and total items of date's record.
func (j *Journal) ProgressStats(date string) day.Stats {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.getOrCreate(date).Stats()
}

// Lookup returns the record for date without creating one.
func (j *Journal) Lookup(date string) (day.Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	rec, ok := j.days[date]
	if !ok {
		return day.Record{}, false
	}
	return rec.Clone(), true
}

// Dates lists the keys of every record held, oldest first.
func (j *Journal) Dates() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dates()
}

func (j *Journal) dates() []string {
	dates := make([]string, 0, len(j.days))
	for date := range j.days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Range returns the existing records with from <= date <= to, oldest first.
// An empty bound is open.
func (j *Journal) Range(from, to string) []day.Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]day.Record, 0)
	for _, date := range j.dates() {
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		out = append(out, j.days[date].Clone())
	}
	return out
}
