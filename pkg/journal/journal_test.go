package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

// failingKV wraps a Memory store and fails writes while failWrites is set.
type failingKV struct {
	*store.Memory
	failWrites bool
	failRead   map[string]bool
}

func (f *failingKV) Write(key string, val []byte) error {
	if f.failWrites {
		return errors.New("quota exceeded")
	}
	return f.Memory.Write(key, val)
}

func (f *failingKV) Read(key string) ([]byte, error) {
	if f.failRead[key] {
		return nil, errors.New("disk on fire")
	}
	return f.Memory.Read(key)
}

func testLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func openTest(t *testing.T, kv store.KV, opts ...Option) *Journal {
	t.Helper()
	logger, _ := testLogger()
	return Open(kv, append([]Option{WithQuotes(quote.Fixed("keep going")), WithLogger(logger)}, opts...)...)
}

func readJSON(t *testing.T, kv store.KV, key string, v any) {
	t.Helper()
	data, err := kv.Read(key)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestOpenFreshStoreWritesDefaultLists(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv, WithDefaults([]string{"Read"}, []string{"Walk"}))

	assert.Equal(t, []string{"Read"}, j.Tasks())
	assert.Equal(t, []string{"Walk"}, j.Wellness())

	var tasks []string
	readJSON(t, kv, store.KeyTasks, &tasks)
	assert.Equal(t, []string{"Read"}, tasks)

	_, err := kv.Read(store.KeyDays)
	assert.ErrorIs(t, err, store.ErrNotFound, "no day records until something is written")
}

func TestOpenWithoutDefaultsStartsEmpty(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv)

	assert.Empty(t, j.Tasks())
	assert.Empty(t, j.Wellness())

	data, err := kv.Read(store.KeyWellness)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestOpenLoadsPersistedState(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Write(store.KeyTasks, []byte(`["Read","Write"]`)))
	require.NoError(t, kv.Write(store.KeyWellness, []byte(`["Walk"]`)))
	require.NoError(t, kv.Write(store.KeyDays, []byte(`{
		"2024-03-07": {"date":"2024-03-07","score":6,"tasks":{"Read":true,"Write":false},"wellness":{"Walk":true},"notes":"ok","quote":"old"}
	}`)))

	j := openTest(t, kv)

	rec := j.GetOrCreate("2024-03-07")
	assert.Equal(t, 6, rec.Score)
	assert.Equal(t, "old", rec.Quote)
	assert.Equal(t, "ok", rec.Notes)
	assert.Equal(t, day.Stats{TaskTotal: 2, TaskDone: 1, WellnessTotal: 1, WellnessDone: 1}, j.ProgressStats("2024-03-07"))
}

func TestOpenCorruptPayloadFallsBackAndLogs(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Write(store.KeyDays, []byte(`{not json`)))
	require.NoError(t, kv.Write(store.KeyTasks, []byte(`"just a string"`)))

	logger, buf := testLogger()
	j := Open(kv, WithLogger(logger), WithDefaults([]string{"Default"}, nil))

	assert.Empty(t, j.Dates())
	assert.Equal(t, []string{"Default"}, j.Tasks())
	assert.Contains(t, buf.String(), "error loading day records")
	assert.Contains(t, buf.String(), "error loading list")
}

func TestOpenReadFailureFallsBack(t *testing.T) {
	kv := &failingKV{Memory: store.NewMemory(), failRead: map[string]bool{store.KeyDays: true}}
	logger, buf := testLogger()

	j := Open(kv, WithLogger(logger))

	assert.Empty(t, j.Dates())
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestOpenFillsMissingMaps(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Write(store.KeyDays, []byte(`{"2024-01-02":{"score":3}}`)))

	j := openTest(t, kv)
	rec, ok := j.Lookup("2024-01-02")
	require.True(t, ok)
	assert.Equal(t, "2024-01-02", rec.Date)
	assert.NotNil(t, rec.Tasks)
	assert.NotNil(t, rec.Wellness)
}

func TestWriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	kv := &failingKV{Memory: store.NewMemory()}
	logger, buf := testLogger()
	j := Open(kv, WithLogger(logger), WithQuotes(quote.Fixed("q")))

	kv.failWrites = true
	j.Update("2024-01-01", day.ScorePatch(9))

	assert.Equal(t, 9, j.GetOrCreate("2024-01-01").Score)
	assert.Contains(t, buf.String(), "error saving day records")

	// The change never reached storage.
	reopened := Open(kv.Memory, WithLogger(logger))
	_, ok := reopened.Lookup("2024-01-01")
	assert.False(t, ok)
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	kv := store.NewMemory()
	j := openTest(t, kv)
	other := openTest(t, kv)

	other.SetList(day.Tasks, []string{"Stretch"})
	other.Update("2024-01-01", day.NotesPatch("from elsewhere"))

	j.Reload()
	assert.Equal(t, []string{"Stretch"}, j.Tasks())
	rec, ok := j.Lookup("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "from elsewhere", rec.Notes)
}

func TestReloadKeepsStateOnReadFailure(t *testing.T) {
	kv := &failingKV{Memory: store.NewMemory(), failRead: map[string]bool{}}
	j := openTest(t, kv)
	j.Update("2024-01-01", day.ScorePatch(4))

	kv.failRead[store.KeyDays] = true
	j.Reload()

	rec, ok := j.Lookup("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, 4, rec.Score)
}
