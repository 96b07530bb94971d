package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := journal.Open(store.NewMemory(),
		journal.WithQuotes(quote.Fixed("Begin.")),
		journal.WithDefaults([]string{"Read"}, []string{"Walk"}),
	)
	src.Update("2024-03-07", day.ScorePatch(6))
	src.Toggle("2024-03-07", day.Wellness, "Walk")

	var buf bytes.Buffer
	require.NoError(t, (&Export{Journal: src, Format: "json", Out: &buf}).Do(ctx))

	dst := journal.Open(store.NewMemory(), journal.WithQuotes(quote.Fixed("Other.")))
	var out bytes.Buffer
	require.NoError(t, (&Import{Journal: dst, In: &buf, Out: &out}).Do(ctx))

	assert.Equal(t, "imported 1 days, lists now hold 1 tasks and 1 wellness items\n", out.String())
	rec, ok := dst.Lookup("2024-03-07")
	require.True(t, ok)
	assert.Equal(t, 6, rec.Score)
	assert.Equal(t, "Begin.", rec.Quote)
	assert.Equal(t, map[string]bool{"Walk": true}, rec.Wellness)
}

func TestImportLocalStorage(t *testing.T) {
	dump := `{
  "calendarTrackerTasks": "[\"Journal\"]",
  "calendarTrackerWellness": "[]",
  "calendarTrackerData": "{\"2024-01-02\":{\"score\":5,\"tasks\":{\"Journal\":true},\"wellness\":{},\"notes\":\"\",\"quote\":\"Dream big.\"}}"
}`
	j := journal.Open(store.NewMemory())
	require.NoError(t, (&Import{Journal: j, In: strings.NewReader(dump), LocalStorage: true, Out: &bytes.Buffer{}}).Do(context.Background()))

	assert.Equal(t, []string{"Journal"}, j.Tasks())
	rec, ok := j.Lookup("2024-01-02")
	require.True(t, ok)
	assert.True(t, rec.Tasks["Journal"])
	assert.Equal(t, "Dream big.", rec.Quote)
}

func TestImportDaysOnlyKeepsLists(t *testing.T) {
	j := journal.Open(store.NewMemory(), journal.WithQuotes(quote.Fixed("Begin.")))
	j.SetList(day.Tasks, []string{"Read", "Run"})
	j.SetList(day.Wellness, []string{"Sleep"})
	j.Toggle("2024-01-01", day.Tasks, "Read")

	dump := `{"calendarTrackerData": "{\"2024-01-02\":{\"score\":4,\"tasks\":{\"Run\":true},\"wellness\":{},\"notes\":\"\",\"quote\":\"Q\"}}"}`
	var out bytes.Buffer
	require.NoError(t, (&Import{Journal: j, In: strings.NewReader(dump), LocalStorage: true, Out: &out}).Do(context.Background()))

	assert.Equal(t, "imported 1 days, lists now hold 2 tasks and 1 wellness items\n", out.String())
	assert.Equal(t, []string{"Read", "Run"}, j.Tasks())
	assert.Equal(t, []string{"Sleep"}, j.Wellness())

	rec, ok := j.Lookup("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"Read": true, "Run": false}, rec.Tasks)

	rec, ok = j.Lookup("2024-01-02")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"Read": false, "Run": true}, rec.Tasks)
	assert.Equal(t, map[string]bool{"Sleep": false}, rec.Wellness)
}

func TestExportUnknownFormat(t *testing.T) {
	j := journal.Open(store.NewMemory())
	assert.Error(t, (&Export{Journal: j, Format: "csv", Out: &bytes.Buffer{}}).Do(context.Background()))
}
