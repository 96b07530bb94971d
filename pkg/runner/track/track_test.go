package track

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/lists"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

const date = "2024-03-07"

func newJournal() *journal.Journal {
	color.NoColor = true
	return journal.Open(store.NewMemory(),
		journal.WithQuotes(quote.Fixed("Begin.")),
		journal.WithDefaults([]string{"Read", "Write code"}, []string{"Walk", "Water"}),
	)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in       string
		value    int
		relative bool
		wantErr  bool
	}{
		{in: "7", value: 7},
		{in: "+1", value: 1, relative: true},
		{in: "-2", value: -2, relative: true},
		{in: "seven", wantErr: true},
		{in: "7.5", wantErr: true},
	}
	for _, tt := range tests {
		v, rel, err := ParseScore(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.value, v, tt.in)
		assert.Equal(t, tt.relative, rel, tt.in)
	}
}

func TestScoreRelativeClamps(t *testing.T) {
	j := newJournal()
	var buf bytes.Buffer

	s := Score{Journal: j, Date: date, Value: 9, Output: &options.OutputOptions{}, Out: &buf}
	require.NoError(t, s.Do(context.Background()))
	s = Score{Journal: j, Date: date, Value: 5, Relative: true, Output: &options.OutputOptions{}, Out: &buf}
	require.NoError(t, s.Do(context.Background()))

	assert.Equal(t, 10, j.GetOrCreate(date).Score)
	assert.Contains(t, buf.String(), "10/10")
}

func TestNoteAppend(t *testing.T) {
	j := newJournal()
	var buf bytes.Buffer

	n := Note{Journal: j, Date: date, Text: "first", Output: &options.OutputOptions{}, Out: &buf}
	require.NoError(t, n.Do(context.Background()))
	n = Note{Journal: j, Date: date, Text: "second", Append: true, Output: &options.OutputOptions{}, Out: &buf}
	require.NoError(t, n.Do(context.Background()))

	assert.Equal(t, "first\nsecond", j.GetOrCreate(date).Notes)
}

func TestToggleResolvesQuery(t *testing.T) {
	j := newJournal()
	var buf bytes.Buffer

	tg := Toggle{Journal: j, Date: date, Kind: day.Tasks, Query: "wrt", Output: &options.OutputOptions{}, Out: &buf}
	require.NoError(t, tg.Do(context.Background()))

	rec := j.GetOrCreate(date)
	assert.True(t, rec.Tasks["Write code"])
	assert.False(t, rec.Tasks["Read"])
	assert.Contains(t, buf.String(), "☑ Write code")
	assert.Contains(t, buf.String(), "Tasks 1/2")
}

func TestToggleNoMatch(t *testing.T) {
	j := newJournal()
	tg := Toggle{Journal: j, Date: date, Kind: day.Wellness, Query: "zzz", Output: &options.OutputOptions{}, Out: &bytes.Buffer{}}
	err := tg.Do(context.Background())
	assert.True(t, errors.Is(err, lists.ErrNoMatch), "got %v", err)
}

func TestTogglePicker(t *testing.T) {
	j := newJournal()
	var offered []day.Item
	tg := Toggle{
		Journal: j,
		Date:    date,
		Kind:    day.Wellness,
		Pick: func(kind day.Kind, items []day.Item) (string, error) {
			offered = items
			return items[1].Name, nil
		},
		Output: &options.OutputOptions{},
		Out:    &bytes.Buffer{},
	}
	require.NoError(t, tg.Do(context.Background()))

	require.Len(t, offered, 2)
	assert.Equal(t, "Walk", offered[0].Name)
	assert.True(t, j.GetOrCreate(date).Wellness["Water"])
}
