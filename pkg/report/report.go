// Package report summarizes scores and completion over a range of days.
package report

import (
	"time"

	"tableflip.dev/daybook/pkg/day"
)

// Band groups scores the way every view colors them.
type Band string

const (
	BandLow   Band = "low"
	BandMid   Band = "mid"
	BandGood  Band = "good"
	BandGreat Band = "great"
)

// ScoreBand places a score in its band.
func ScoreBand(score int) Band {
	switch {
	case score <= 3:
		return BandLow
	case score <= 6:
		return BandMid
	case score <= 8:
		return BandGood
	}
	return BandGreat
}

// Row is one tracked day.
type Row struct {
	Date  string    `json:"date" yaml:"date"`
	Score int       `json:"score" yaml:"score"`
	Stats day.Stats `json:"stats" yaml:"stats"`
}

// Summary covers the recorded days between From and To inclusive.
type Summary struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
	Rows []Row  `json:"rows" yaml:"rows"`

	AverageScore float64 `json:"averageScore" yaml:"averageScore"`
	TaskRate     float64 `json:"taskRate" yaml:"taskRate"`
	WellnessRate float64 `json:"wellnessRate" yaml:"wellnessRate"`
}

// Window returns the first and last date keys of a window of days ending
// on end.
func Window(end time.Time, days int) (string, string) {
	start := end.AddDate(0, 0, -(days - 1))
	return day.Key(start), day.Key(end)
}

// Summarize builds a Summary from records, keeping those within [from, to].
// Rates are completed over total items across all kept days; 0 when there
// are no items.
func Summarize(records []day.Record, from, to string) Summary {
	s := Summary{From: from, To: to, Rows: make([]Row, 0, len(records))}

	scoreSum := 0
	var taskDone, taskTotal, wellDone, wellTotal int
	for i := range records {
		rec := &records[i]
		if (from != "" && rec.Date < from) || (to != "" && rec.Date > to) {
			continue
		}
		stats := rec.Stats()
		s.Rows = append(s.Rows, Row{Date: rec.Date, Score: rec.Score, Stats: stats})
		scoreSum += rec.Score
		taskDone += stats.TaskDone
		taskTotal += stats.TaskTotal
		wellDone += stats.WellnessDone
		wellTotal += stats.WellnessTotal
	}

	if n := len(s.Rows); n > 0 {
		s.AverageScore = float64(scoreSum) / float64(n)
	}
	s.TaskRate = rate(taskDone, taskTotal)
	s.WellnessRate = rate(wellDone, wellTotal)
	return s
}

func rate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}
