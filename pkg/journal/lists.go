package journal

import (
	"slices"

	"tableflip.dev/daybook/pkg/day"
)

// SetList replaces the kind list with items and rebuilds that mapping of
// every existing record to exactly those keys. Surviving items keep their
// completion, new items start incomplete and dropped items lose their
// history. The list and the records are written together.
//
// items is expected to be trimmed and free of empty names. Duplicates are
// not removed; they collapse into a single mapping key.
func (j *Journal) SetList(kind day.Kind, items []string) {
	if kind != day.Tasks && kind != day.Wellness {
		j.log.Warn("ignoring unknown list", "kind", kind)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	list := slices.Clone(items)
	if list == nil {
		list = []string{}
	}
	j.lists[kind] = list

	for _, rec := range j.days {
		prior := rec.Items(kind)
		next := make(map[string]bool, len(list))
		for _, item := range list {
			next[item] = prior[item]
		}
		rec.SetItems(kind, next)
	}

	j.saveList(kind)
	j.saveDays()
}

// ResetToDefault sets the kind list back to its defaults.
func (j *Journal) ResetToDefault(kind day.Kind) {
	j.SetList(kind, j.Defaults(kind))
}

// Defaults returns the default items for kind.
func (j *Journal) Defaults(kind day.Kind) []string {
	return slices.Clone(j.defaults[kind])
}

// List returns a copy of the kind list in display order.
func (j *Journal) List(kind day.Kind) []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	list := slices.Clone(j.lists[kind])
	if list == nil {
		list = []string{}
	}
	return list
}

// Tasks returns the global task list.
func (j *Journal) Tasks() []string {
	return j.List(day.Tasks)
}

// Wellness returns the global wellness list.
func (j *Journal) Wellness() []string {
	return j.List(day.Wellness)
}
