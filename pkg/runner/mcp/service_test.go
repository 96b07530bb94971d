package mcp

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/lists"
	"tableflip.dev/daybook/pkg/quote"
	"tableflip.dev/daybook/pkg/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	j := journal.Open(store.NewMemory(),
		journal.WithQuotes(quote.Fixed("Begin.")),
		journal.WithDefaults([]string{"Read", "Write"}, []string{"Walk"}),
	)
	svc := NewService(j)
	svc.now = func() time.Time { return time.Date(2024, time.March, 7, 12, 0, 0, 0, time.Local) }
	return svc
}

func TestServiceGetDayRelative(t *testing.T) {
	svc := newService(t)

	dto, err := svc.GetDay("yesterday")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if dto.Date != "2024-03-06" {
		t.Fatalf("expected 2024-03-06, got %s", dto.Date)
	}
	if len(dto.Tasks) != 2 || dto.Tasks[0].Name != "Read" || dto.Tasks[0].Done {
		t.Fatalf("unexpected tasks %+v", dto.Tasks)
	}
	if dto.Quote != "Begin." {
		t.Fatalf("unexpected quote %q", dto.Quote)
	}
}

func TestServiceUpdateDayMerges(t *testing.T) {
	svc := newService(t)
	score := 12
	notes := "steady"

	dto, err := svc.UpdateDay(UpdateDayOptions{
		Score: &score,
		Notes: &notes,
		Tasks: map[string]bool{"Write": true},
	})
	if err != nil {
		t.Fatalf("UpdateDay failed: %v", err)
	}
	if dto.Score != 10 {
		t.Fatalf("expected clamped score 10, got %d", dto.Score)
	}
	if dto.Stats != (day.Stats{TaskTotal: 2, TaskDone: 1, WellnessTotal: 1}) {
		t.Fatalf("unexpected stats %+v", dto.Stats)
	}
	if dto.Notes != "steady" {
		t.Fatalf("unexpected notes %q", dto.Notes)
	}
}

func TestServiceUpdateDayRejectsUnknownItems(t *testing.T) {
	svc := newService(t)
	_, err := svc.UpdateDay(UpdateDayOptions{Wellness: map[string]bool{"Swim": true}})
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := svc.UpdateDay(UpdateDayOptions{}); err == nil {
		t.Fatal("expected error for an empty update")
	}
}

func TestServiceUpdateDayAfterListChange(t *testing.T) {
	svc := newService(t)
	if _, err := svc.GetDay("2024-03-07"); err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if _, err := svc.SetList(day.Tasks, []string{"Write"}); err != nil {
		t.Fatalf("SetList failed: %v", err)
	}

	_, err := svc.UpdateDay(UpdateDayOptions{Date: "2024-03-07", Tasks: map[string]bool{"Read": true}})
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem for a dropped item, got %v", err)
	}
	dto, err := svc.GetDay("2024-03-07")
	if err != nil {
		t.Fatalf("GetDay failed: %v", err)
	}
	if len(dto.Tasks) != 1 || dto.Tasks[0].Name != "Write" {
		t.Fatalf("record keys drifted from the list: %+v", dto.Tasks)
	}
}

func TestWholeScore(t *testing.T) {
	for _, v := range []float64{0, 7, 10} {
		got, err := wholeScore(v)
		if err != nil || got != int(v) {
			t.Errorf("wholeScore(%v) = %d, %v", v, got, err)
		}
	}
	for _, v := range []float64{7.9, 0.5, math.NaN(), math.Inf(1)} {
		if _, err := wholeScore(v); err == nil {
			t.Errorf("wholeScore(%v) should fail", v)
		}
	}
}

func TestServiceToggleItemFuzzy(t *testing.T) {
	svc := newService(t)

	dto, err := svc.ToggleItem("2024-03-07", day.Tasks, "wri")
	if err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	if !dto.Tasks[1].Done {
		t.Fatalf("expected Write done, got %+v", dto.Tasks)
	}

	if _, err := svc.ToggleItem("2024-03-07", day.Wellness, "zzz"); !errors.Is(err, lists.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestServiceSetAndResetList(t *testing.T) {
	svc := newService(t)

	if _, err := svc.ToggleItem("today", day.Wellness, "Walk"); err != nil {
		t.Fatalf("ToggleItem failed: %v", err)
	}
	got, err := svc.SetList(day.Wellness, []string{" Walk", "Stretch", "Walk", ""})
	if err != nil {
		t.Fatalf("SetList failed: %v", err)
	}
	if len(got.Wellness) != 2 || got.Wellness[1] != "Stretch" {
		t.Fatalf("unexpected wellness list %v", got.Wellness)
	}
	stats, err := svc.ProgressStats("today")
	if err != nil {
		t.Fatalf("ProgressStats failed: %v", err)
	}
	if stats.WellnessTotal != 2 || stats.WellnessDone != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	got, err = svc.ResetList(day.Wellness)
	if err != nil {
		t.Fatalf("ResetList failed: %v", err)
	}
	if len(got.Wellness) != 1 || got.Wellness[0] != "Walk" {
		t.Fatalf("unexpected wellness after reset %v", got.Wellness)
	}
}

func TestServiceWithoutJournal(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.GetDay("today"); err == nil {
		t.Fatal("expected error without a journal")
	}
}

func TestToJSONResult(t *testing.T) {
	res, err := toJSONResult(ListsDTO{Tasks: []string{"Read"}, Wellness: []string{}})
	if err != nil {
		t.Fatalf("toJSONResult failed: %v", err)
	}
	if res.IsError {
		t.Fatal("unexpected error result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	var back ListsDTO
	if err := json.Unmarshal([]byte(text.Text), &back); err != nil {
		t.Fatalf("result is not json: %v", err)
	}
	if len(back.Tasks) != 1 || back.Tasks[0] != "Read" {
		t.Fatalf("unexpected round trip %+v", back)
	}
}
