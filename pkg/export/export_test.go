package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

func sampleJournal() *journal.Journal {
	j := journal.Open(store.NewMemory(),
		journal.WithQuotes(quote.Fixed("Start where you are.")),
		journal.WithDefaults([]string{"Read", "Write"}, []string{"Walk"}),
	)
	j.Toggle("2024-03-07", day.Tasks, "Read")
	j.Update("2024-03-07", day.ScorePatch(7))
	j.Update("2024-03-07", day.NotesPatch("Good *focus*."))
	j.Update("2024-03-08", day.ScorePatch(3))
	return j
}

func TestJSONGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, Snapshot(sampleJournal())))

	g := goldie.New(t)
	g.Assert(t, "export", buf.Bytes())
}

func TestJSONRoundTripThroughApply(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, Snapshot(sampleJournal())))

	doc, err := ReadJSON(&buf)
	require.NoError(t, err)

	target := journal.Open(store.NewMemory(), journal.WithQuotes(quote.Fixed("other")))
	Apply(target, doc)

	assert.Equal(t, []string{"Read", "Write"}, target.Tasks())
	assert.Equal(t, []string{"Walk"}, target.Wellness())
	rec, ok := target.Lookup("2024-03-07")
	require.True(t, ok)
	assert.Equal(t, "Start where you are.", rec.Quote)
	assert.Equal(t, 7, rec.Score)
	assert.True(t, rec.Tasks["Read"])
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, Snapshot(sampleJournal())))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{"Read", "Write"}, doc.Tasks)
	assert.Equal(t, 3, doc.Days["2024-03-08"].Score)
	assert.Contains(t, buf.String(), "notes: Good *focus*.")
}

func TestHTMLRendersNotesMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Snapshot(sampleJournal())))

	out := buf.String()
	assert.Contains(t, out, "<p>Good <em>focus</em>.</p>")
	assert.Contains(t, out, `<span class="score good">7/10</span>`)
	assert.Contains(t, out, `<span class="score low">3/10</span>`)
	assert.Contains(t, out, "Tasks (1/2)")
	assert.Less(t, strings.Index(out, "2024-03-07"), strings.Index(out, "2024-03-08"))
}

func TestHTMLEscapesRawHTMLInNotes(t *testing.T) {
	doc := Document{Days: map[string]day.Record{
		"2024-01-01": {Date: "2024-01-01", Notes: "<script>alert(1)</script>"},
	}}
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, doc))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestReadLocalStorageStringValues(t *testing.T) {
	dump := `{
		"calendarTrackerData": "{\"2024-03-07\":{\"date\":\"2024-03-07\",\"score\":5,\"tasks\":{\"Read\":true},\"wellness\":{},\"notes\":\"hi\",\"quote\":\"Q\"}}",
		"calendarTrackerTasks": "[\"Read\"]",
		"calendarTrackerWellness": "[]",
		"theme": "dark"
	}`

	doc, err := ReadLocalStorage(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, []string{"Read"}, doc.Tasks)
	assert.Empty(t, doc.Wellness)
	require.Contains(t, doc.Days, "2024-03-07")
	assert.Equal(t, "Q", doc.Days["2024-03-07"].Quote)
	assert.True(t, doc.Days["2024-03-07"].Tasks["Read"])
}

func TestReadLocalStorageRawValues(t *testing.T) {
	dump := `{"calendarTrackerTasks": ["A", "B"]}`
	doc, err := ReadLocalStorage(strings.NewReader(dump))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.Tasks)
	assert.Nil(t, doc.Wellness, "absent entry stays unset")
	assert.Empty(t, doc.Days)
}

func TestApplySkipsListsTheDocumentLacks(t *testing.T) {
	j := sampleJournal()

	doc, err := ReadJSON(strings.NewReader(`{"days": {"2024-03-09": {"score": 8, "tasks": {"Write": true}}}}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Tasks)
	Apply(j, doc)

	assert.Equal(t, []string{"Read", "Write"}, j.Tasks())
	assert.Equal(t, []string{"Walk"}, j.Wellness())
	rec, ok := j.Lookup("2024-03-07")
	require.True(t, ok)
	assert.True(t, rec.Tasks["Read"], "history survives a days-only import")
	rec, ok = j.Lookup("2024-03-09")
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"Read": false, "Write": true}, rec.Tasks)
}

func TestApplyEmptyListClears(t *testing.T) {
	j := sampleJournal()
	doc, err := ReadLocalStorage(strings.NewReader(`{"calendarTrackerWellness": "[]"}`))
	require.NoError(t, err)
	Apply(j, doc)

	assert.Empty(t, j.Wellness())
	assert.Equal(t, []string{"Read", "Write"}, j.Tasks())
}

func TestReadLocalStorageCorrupt(t *testing.T) {
	_, err := ReadLocalStorage(strings.NewReader(`{"calendarTrackerTasks": "{oops"}`))
	assert.Error(t, err)
}
