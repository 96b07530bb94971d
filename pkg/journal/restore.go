package journal

import (
	"tableflip.dev/daybook/pkg/day"
)

// Restore brings in records from an export. Dates the journal does not
// hold yet are inserted with their own quote; dates it already holds take
// the incoming score, notes and completion but keep their quote. Either way
// the mappings are rebuilt against the current global lists, so items that
// are not on a list are dropped. Everything is written once.
func (j *Journal) Restore(records []day.Record) {
	if len(records) == 0 {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for i := range records {
		in := records[i].Clone()
		if in.Date == "" {
			continue
		}
		if in.Quote == "" {
			in.Quote = j.quotes.Pick()
		}
		in.Score = day.ClampScore(in.Score)

		rec, ok := j.days[in.Date]
		if !ok {
			rec = &in
			j.days[in.Date] = rec
		} else {
			day.Patch{Score: &in.Score, Notes: &in.Notes}.Apply(rec)
			rec.Tasks = in.Tasks
			rec.Wellness = in.Wellness
		}

		for _, kind := range day.Kinds() {
			prior := rec.Items(kind)
			next := make(map[string]bool, len(j.lists[kind]))
			for _, item := range j.lists[kind] {
				next[item] = prior[item]
			}
			rec.SetItems(kind, next)
		}
	}

	j.saveDays()
}
