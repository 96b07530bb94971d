package journal

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

func TestGetOrCreateSeedsFromCurrentLists(t *testing.T) {
	j := Open(store.NewMemory(), WithDefaults([]string{"Read", "Write"}, []string{"Walk"}))
	pool := quote.Default()

	rec := j.GetOrCreate("2024-03-07")

	assert.Equal(t, "2024-03-07", rec.Date)
	assert.Equal(t, map[string]bool{"Read": false, "Write": false}, rec.Tasks)
	assert.Equal(t, map[string]bool{"Walk": false}, rec.Wellness)
	assert.True(t, pool.Contains(rec.Quote), "quote %q not from the pool", rec.Quote)
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	j := Open(store.NewMemory(), WithDefaults([]string{"Read"}, nil))

	first := j.GetOrCreate("2024-03-07")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, j.GetOrCreate("2024-03-07"))
	}
}

func TestGetOrCreateDoesNotPersist(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv)

	j.GetOrCreate("2024-03-07")
	_, err := kv.Read(store.KeyDays)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// A later write commits the materialized record along with the new one.
	j.Update("2024-03-08", day.ScorePatch(2))
	var days map[string]day.Record
	readJSON(t, kv, store.KeyDays, &days)
	assert.Contains(t, days, "2024-03-07")
	assert.Contains(t, days, "2024-03-08")
}

func TestGetOrCreateReturnsCopy(t *testing.T) {
	j := Open(store.NewMemory(), WithDefaults([]string{"Read"}, nil))

	rec := j.GetOrCreate("2024-03-07")
	rec.Tasks["Read"] = true

	assert.False(t, j.GetOrCreate("2024-03-07").Tasks["Read"])
}

func TestToggleScenario(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv, WithDefaults([]string{"Read"}, nil))

	assert.Equal(t, map[string]bool{"Read": false}, j.GetOrCreate("2024-01-01").Tasks)

	j.Toggle("2024-01-01", day.Tasks, "Read")
	assert.Equal(t, map[string]bool{"Read": true}, j.GetOrCreate("2024-01-01").Tasks)

	assert.Equal(t, day.Stats{TaskTotal: 1, TaskDone: 1, WellnessTotal: 0, WellnessDone: 0}, j.ProgressStats("2024-01-01"))

	var days map[string]day.Record
	readJSON(t, kv, store.KeyDays, &days)
	assert.True(t, days["2024-01-01"].Tasks["Read"])
}

func TestToggleTwiceRestores(t *testing.T) {
	j := openTest(t, store.NewMemory(), WithDefaults([]string{"Exercise", "Read"}, nil))
	j.Toggle("2024-01-01", day.Tasks, "Read")
	before := j.GetOrCreate("2024-01-01")

	j.Toggle("2024-01-01", day.Tasks, "Exercise")
	j.Toggle("2024-01-01", day.Tasks, "Exercise")

	assert.Equal(t, before, j.GetOrCreate("2024-01-01"))
}

func TestToggleUnknownItemIsNoop(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv, WithDefaults([]string{"Read"}, []string{"Walk"}))

	j.Toggle("2024-01-01", day.Tasks, "Walk")
	j.Toggle("2024-01-01", day.Wellness, "Read")
	j.Toggle("2024-01-01", day.Kind("chores"), "Read")

	rec := j.GetOrCreate("2024-01-01")
	assert.Equal(t, map[string]bool{"Read": false}, rec.Tasks)
	assert.Equal(t, map[string]bool{"Walk": false}, rec.Wellness)

	_, err := kv.Read(store.KeyDays)
	assert.ErrorIs(t, err, store.ErrNotFound, "a no-op toggle writes nothing")
}

func TestUpdateMergesTopLevelFields(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv, WithDefaults([]string{"Read", "Write"}, []string{"Walk"}))
	j.Toggle("2024-01-01", day.Wellness, "Walk")

	j.Update("2024-01-01", day.Patch{Tasks: map[string]bool{"Read": true, "Write": false}})
	j.Update("2024-01-01", day.NotesPatch("slept well"))

	rec := j.GetOrCreate("2024-01-01")
	assert.Equal(t, map[string]bool{"Read": true, "Write": false}, rec.Tasks)
	assert.Equal(t, map[string]bool{"Walk": true}, rec.Wellness)
	assert.Equal(t, "slept well", rec.Notes)
	assert.Equal(t, "keep going", rec.Quote)
}

func TestUpdateScoreDoesNotAffectStats(t *testing.T) {
	j := openTest(t, store.NewMemory(), WithDefaults([]string{"Read"}, []string{"Walk"}))
	j.Toggle("2024-01-01", day.Tasks, "Read")
	before := j.ProgressStats("2024-01-01")

	j.Update("2024-01-01", day.ScorePatch(7))

	assert.Equal(t, before, j.ProgressStats("2024-01-01"))
	assert.Equal(t, 7, j.GetOrCreate("2024-01-01").Score)
}

func TestUpdateClampsScore(t *testing.T) {
	j := openTest(t, store.NewMemory())
	j.Update("2024-01-01", day.ScorePatch(42))
	assert.Equal(t, day.MaxScore, j.GetOrCreate("2024-01-01").Score)
}

func TestQuoteNeverChanges(t *testing.T) {
	kv := store.NewMemory()
	j := Open(kv, WithQuotes(quote.Fixed("first")))
	j.Update("2024-01-01", day.ScorePatch(1))

	reopened := Open(kv, WithQuotes(quote.Fixed("second")))
	reopened.Update("2024-01-01", day.ScorePatch(2))

	assert.Equal(t, "first", reopened.GetOrCreate("2024-01-01").Quote)
}

func TestDatesAndRange(t *testing.T) {
	j := openTest(t, store.NewMemory())
	for _, d := range []string{"2024-02-01", "2024-01-15", "2024-01-31", "2024-03-01"} {
		j.Update(d, day.ScorePatch(5))
	}

	assert.Equal(t, []string{"2024-01-15", "2024-01-31", "2024-02-01", "2024-03-01"}, j.Dates())

	got := j.Range("2024-01-20", "2024-02-29")
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-31", got[0].Date)
	assert.Equal(t, "2024-02-01", got[1].Date)

	assert.Len(t, j.Range("", ""), 4)
}

func TestLookupDoesNotCreate(t *testing.T) {
	j := openTest(t, store.NewMemory())
	_, ok := j.Lookup("2024-01-01")
	assert.False(t, ok)
	assert.Empty(t, j.Dates())
}

func TestMergeOverlaysItems(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv, WithDefaults([]string{"Read", "Write"}, []string{"Walk"}))
	j.Toggle("2024-03-07", day.Tasks, "Read")

	score := 6
	require.NoError(t, j.Merge("2024-03-07", day.Patch{
		Score:    &score,
		Tasks:    map[string]bool{"Write": true},
		Wellness: map[string]bool{"Walk": true},
	}))

	rec := j.GetOrCreate("2024-03-07")
	assert.Equal(t, map[string]bool{"Read": true, "Write": true}, rec.Tasks)
	assert.Equal(t, map[string]bool{"Walk": true}, rec.Wellness)
	assert.Equal(t, 6, rec.Score)

	var stored map[string]day.Record
	readJSON(t, kv, store.KeyDays, &stored)
	assert.Equal(t, rec, stored["2024-03-07"])
}

func TestMergeRejectsItemsDroppedFromTheList(t *testing.T) {
	j := openTest(t, store.NewMemory(), WithDefaults([]string{"A", "B"}, nil))
	j.GetOrCreate("2024-03-07")
	j.SetList(day.Tasks, []string{"B"})

	score := 9
	err := j.Merge("2024-03-07", day.Patch{Score: &score, Tasks: map[string]bool{"A": true}})
	assert.True(t, errors.Is(err, ErrUnknownItem), "got %v", err)

	rec := j.GetOrCreate("2024-03-07")
	assert.Equal(t, map[string]bool{"B": false}, rec.Tasks)
	assert.Equal(t, 0, rec.Score, "a rejected merge changes nothing")
}

func TestMergeConcurrentWithSetList(t *testing.T) {
	j := Open(store.NewMemory(), WithQuotes(quote.Fixed("q")), WithDefaults([]string{"A", "B"}, nil))
	lists := [][]string{{"A", "B"}, {"B"}, {"A"}}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 300; i++ {
			j.SetList(day.Tasks, lists[i%len(lists)])
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 300; i++ {
			_ = j.Merge("2024-03-07", day.Patch{Tasks: map[string]bool{"A": true}})
		}
	}()
	wg.Wait()

	rec := j.GetOrCreate("2024-03-07")
	keys := slices.Sorted(maps.Keys(rec.Tasks))
	assert.Equal(t, slices.Sorted(slices.Values(j.Tasks())), keys)
}
