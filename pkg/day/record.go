// Package day defines the per-date record tracked by the journal.
package day

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	layoutISO = "2006-01-02"

	// MinScore and MaxScore bound the daily score.
	MinScore = 0
	MaxScore = 10
)

// Kind selects one of the two global item lists.
type Kind string

const (
	Tasks    Kind = "tasks"
	Wellness Kind = "wellness"
)

// Kinds lists every Kind in display order.
func Kinds() []Kind {
	return []Kind{Tasks, Wellness}
}

// ParseKind accepts the list names plus their common singular forms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tasks", "task", "t":
		return Tasks, nil
	case "wellness", "habit", "habits", "w":
		return Wellness, nil
	}
	return "", fmt.Errorf("unknown list %q, expected tasks or wellness", s)
}

func (k Kind) String() string {
	return string(k)
}

// Title is the heading used when rendering the list.
func (k Kind) Title() string {
	switch k {
	case Tasks:
		return "Tasks"
	case Wellness:
		return "Wellness"
	}
	return string(k)
}

// Record is the full tracked state for one calendar date.
type Record struct {
	Date     string          `json:"date" yaml:"date"`
	Score    int             `json:"score" yaml:"score"`
	Tasks    map[string]bool `json:"tasks" yaml:"tasks"`
	Wellness map[string]bool `json:"wellness" yaml:"wellness"`
	Notes    string          `json:"notes" yaml:"notes"`
	Quote    string          `json:"quote" yaml:"quote"`
}

// New seeds a record for date with every item of tasks and wellness
// incomplete.
func New(date string, tasks, wellness []string, quote string) *Record {
	return &Record{
		Date:     date,
		Tasks:    seed(tasks),
		Wellness: seed(wellness),
		Quote:    quote,
	}
}

func seed(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, item := range items {
		m[item] = false
	}
	return m
}

// Items returns the mapping for kind. The map is the record's own.
func (r *Record) Items(kind Kind) map[string]bool {
	switch kind {
	case Tasks:
		return r.Tasks
	case Wellness:
		return r.Wellness
	}
	return nil
}

// SetItems replaces the mapping for kind.
func (r *Record) SetItems(kind Kind, items map[string]bool) {
	switch kind {
	case Tasks:
		r.Tasks = items
	case Wellness:
		r.Wellness = items
	}
}

// Clone deep-copies r so the copy shares no maps with it.
func (r *Record) Clone() Record {
	c := *r
	c.Tasks = copyMap(r.Tasks)
	c.Wellness = copyMap(r.Wellness)
	return c
}

func copyMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Stats are the derived completed/total counts for a record.
type Stats struct {
	TaskTotal     int `json:"taskTotal" yaml:"taskTotal"`
	TaskDone      int `json:"taskDone" yaml:"taskDone"`
	WellnessTotal int `json:"wellnessTotal" yaml:"wellnessTotal"`
	WellnessDone  int `json:"wellnessDone" yaml:"wellnessDone"`
}

// Stats counts the entries of each mapping and how many of them are true.
func (r *Record) Stats() Stats {
	s := Stats{
		TaskTotal:     len(r.Tasks),
		WellnessTotal: len(r.Wellness),
	}
	for _, done := range r.Tasks {
		if done {
			s.TaskDone++
		}
	}
	for _, done := range r.Wellness {
		if done {
			s.WellnessDone++
		}
	}
	return s
}

// Patch carries the top-level fields of an update. Nil fields are left
// alone; non-nil maps replace the record's map wholesale.
type Patch struct {
	Score    *int
	Tasks    map[string]bool
	Wellness map[string]bool
	Notes    *string
}

// Apply merges p into r. The score is clamped.
func (p Patch) Apply(r *Record) {
	if p.Score != nil {
		r.Score = ClampScore(*p.Score)
	}
	if p.Tasks != nil {
		r.Tasks = copyMap(p.Tasks)
	}
	if p.Wellness != nil {
		r.Wellness = copyMap(p.Wellness)
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// Empty reports whether p sets nothing.
func (p Patch) Empty() bool {
	return p.Score == nil && p.Tasks == nil && p.Wellness == nil && p.Notes == nil
}

// ClampScore bounds s to [MinScore, MaxScore].
func ClampScore(s int) int {
	switch {
	case s < MinScore:
		return MinScore
	case s > MaxScore:
		return MaxScore
	}
	return s
}

// Key formats t as the local calendar date used to key records.
func Key(t time.Time) string {
	return t.Format(layoutISO)
}

// ParseKey validates a record key and returns midnight local time for it.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ScorePatch is a Patch that sets only the score.
func ScorePatch(score int) Patch {
	return Patch{Score: &score}
}

// NotesPatch is a Patch that sets only the notes.
func NotesPatch(notes string) Patch {
	return Patch{Notes: &notes}
}

// Item is one entry of a mapping, as displayed.
type Item struct {
	Name string `json:"name" yaml:"name"`
	Done bool   `json:"done" yaml:"done"`
}

// Ordered lists the kind mapping in the order of list. Keys missing from
// list follow, sorted by name.
func (r *Record) Ordered(kind Kind, list []string) []Item {
	m := r.Items(kind)
	out := make([]Item, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, name := range list {
		done, ok := m[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, Item{Name: name, Done: done})
	}
	rest := make([]string, 0)
	for name := range m {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, Item{Name: name, Done: m[name]})
	}
	return out
}
