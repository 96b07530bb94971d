// Package journal keeps the per-day records and the two global item lists
// consistent with each other and with the backing key-value store.
//
// Storage failures never surface to callers. Read failures are logged and
// fall back to empty state; write failures are logged and the in-memory
// state stays authoritative for the rest of the session.
package journal

import (
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

// Journal is the day record store and the global item list manager.
type Journal struct {
	mu       sync.Mutex
	kv       store.KV
	quotes   quote.Source
	log      *slog.Logger
	defaults map[day.Kind][]string

	days  map[string]*day.Record
	lists map[day.Kind][]string
}

// Option configures a Journal.
type Option func(*Journal)

// WithQuotes sets the source of quotes for new records.
func WithQuotes(src quote.Source) Option {
	return func(j *Journal) {
		if src != nil {
			j.quotes = src
		}
	}
}

// WithLogger sets the logger storage failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(j *Journal) {
		if l != nil {
			j.log = l
		}
	}
}

// WithDefaults sets the lists used on first load and by ResetToDefault.
func WithDefaults(tasks, wellness []string) Option {
	return func(j *Journal) {
		j.defaults[day.Tasks] = slices.Clone(tasks)
		j.defaults[day.Wellness] = slices.Clone(wellness)
	}
}

// Open loads the journal from kv. It never fails: anything unreadable is
// logged and replaced by empty or default state.
func Open(kv store.KV, opts ...Option) *Journal {
	j := &Journal{
		kv:     kv,
		quotes: quote.Default(),
		log:    slog.Default(),
		defaults: map[day.Kind][]string{
			day.Tasks:    {},
			day.Wellness: {},
		},
		days:  make(map[string]*day.Record),
		lists: make(map[day.Kind][]string),
	}
	for _, opt := range opts {
		opt(j)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.load(false)
	return j
}

// Reload re-reads every entry from storage, replacing in-memory state.
// Entries that cannot be read keep their current in-memory value. Records
// materialized by GetOrCreate but never written are dropped.
func (j *Journal) Reload() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.load(true)
}

func listKey(kind day.Kind) string {
	if kind == day.Wellness {
		return store.KeyWellness
	}
	return store.KeyTasks
}

func (j *Journal) load(reload bool) {
	if days, err := j.readDays(); err == nil {
		j.days = days
	} else if !reload {
		j.log.Error("error loading day records, starting empty", "key", store.KeyDays, "err", err)
		j.days = make(map[string]*day.Record)
	} else {
		j.log.Warn("error reloading day records, keeping current", "key", store.KeyDays, "err", err)
	}

	for _, kind := range day.Kinds() {
		key := listKey(kind)
		list, err := j.readList(key)
		switch {
		case errors.Is(err, store.ErrNotFound):
			list = slices.Clone(j.defaults[kind])
			j.lists[kind] = list
			j.saveList(kind)
		case err != nil && reload:
			j.log.Warn("error reloading list, keeping current", "key", key, "err", err)
		case err != nil:
			j.log.Error("error loading list, using defaults", "key", key, "err", err)
			j.lists[kind] = slices.Clone(j.defaults[kind])
		default:
			j.lists[kind] = list
		}
	}
}

func (j *Journal) readDays() (map[string]*day.Record, error) {
	data, err := j.kv.Read(store.KeyDays)
	if errors.Is(err, store.ErrNotFound) {
		return make(map[string]*day.Record), nil
	}
	if err != nil {
		return nil, err
	}
	days := make(map[string]*day.Record)
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, err
	}
	for date, rec := range days {
		if rec == nil {
			delete(days, date)
			continue
		}
		if rec.Date == "" {
			rec.Date = date
		}
		if rec.Tasks == nil {
			rec.Tasks = make(map[string]bool)
		}
		if rec.Wellness == nil {
			rec.Wellness = make(map[string]bool)
		}
	}
	return days, nil
}

func (j *Journal) readList(key string) ([]string, error) {
	data, err := j.kv.Read(key)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// saveDays writes the full day map.
func (j *Journal) saveDays() {
	data, err := json.Marshal(j.days)
	if err != nil {
		j.log.Error("error encoding day records", "key", store.KeyDays, "err", err)
		return
	}
	if err := j.kv.Write(store.KeyDays, data); err != nil {
		j.log.Error("error saving day records", "key", store.KeyDays, "err", err)
	}
}

func (j *Journal) saveList(kind day.Kind) {
	key := listKey(kind)
	list := j.lists[kind]
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		j.log.Error("error encoding list", "key", key, "err", err)
		return
	}
	if err := j.kv.Write(key, data); err != nil {
		j.log.Error("error saving list", "key", key, "err", err)
	}
}
