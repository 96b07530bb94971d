// Package export snapshots a journal to JSON, YAML or HTML and reads
// snapshots back, including browser localStorage dumps.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/report"
	"tableflip.dev/daybook/pkg/store"
)

// Document is a complete snapshot of a journal. A nil list means the
// source did not carry it; an empty one clears the list on Apply.
type Document struct {
	Days     map[string]day.Record `json:"days" yaml:"days"`
	Tasks    []string              `json:"tasks" yaml:"tasks"`
	Wellness []string              `json:"wellness" yaml:"wellness"`
}

// Snapshot copies the journal's records and lists.
func Snapshot(j *journal.Journal) Document {
	doc := Document{
		Days:     make(map[string]day.Record),
		Tasks:    orEmpty(j.Tasks()),
		Wellness: orEmpty(j.Wellness()),
	}
	for _, rec := range j.Range("", "") {
		doc.Days[rec.Date] = rec
	}
	return doc
}

// Apply writes doc into j: the lists first, then the records, so every
// imported record ends up keyed by the lists in effect. A list the
// document does not carry is left as it is.
func Apply(j *journal.Journal, doc Document) {
	if doc.Tasks != nil {
		j.SetList(day.Tasks, doc.Tasks)
	}
	if doc.Wellness != nil {
		j.SetList(day.Wellness, doc.Wellness)
	}

	records := make([]day.Record, 0, len(doc.Days))
	for date, rec := range doc.Days {
		if rec.Date == "" {
			rec.Date = date
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, k int) bool { return records[i].Date < records[k].Date })
	j.Restore(records)
}

// JSON writes doc as indented JSON.
func JSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// YAML writes doc as YAML.
func YAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// ReadJSON parses a document written by JSON.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode export: %w", err)
	}
	return doc, nil
}

// ReadLocalStorage parses a dump of the browser app's localStorage: an
// object holding the three entries, each either a JSON-encoded string (as
// localStorage stores them) or the raw JSON value.
func ReadLocalStorage(r io.Reader) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, fmt.Errorf("decode localStorage dump: %w", err)
	}

	doc := Document{Days: map[string]day.Record{}}
	if err := decodeEntry(raw, store.KeyDays, &doc.Days); err != nil {
		return Document{}, err
	}
	if err := decodeEntry(raw, store.KeyTasks, &doc.Tasks); err != nil {
		return Document{}, err
	}
	if err := decodeEntry(raw, store.KeyWellness, &doc.Wellness); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func decodeEntry(raw map[string]json.RawMessage, key string, v any) error {
	val, ok := raw[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(val, &s); err == nil {
		val = json.RawMessage(s)
	}
	if err := json.Unmarshal(val, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>daybook</title></head>
<body>
{{- range .}}
<section class="day">
<h2>{{.Date}} <span class="score {{.Band}}">{{.Score}}/10</span></h2>
<blockquote>{{.Quote}}</blockquote>
<h3>Tasks ({{.Stats.TaskDone}}/{{.Stats.TaskTotal}})</h3>
<ul>{{range .Tasks}}<li>{{if .Done}}&#9745;{{else}}&#9744;{{end}} {{.Name}}</li>{{end}}</ul>
<h3>Wellness ({{.Stats.WellnessDone}}/{{.Stats.WellnessTotal}})</h3>
<ul>{{range .Wellness}}<li>{{if .Done}}&#9745;{{else}}&#9744;{{end}} {{.Name}}</li>{{end}}</ul>
{{- if .Notes}}
<div class="notes">{{.Notes}}</div>
{{- end}}
</section>
{{- end}}
</body>
</html>
`))

type htmlDay struct {
	Date     string
	Score    int
	Band     report.Band
	Quote    string
	Stats    day.Stats
	Tasks    []day.Item
	Wellness []day.Item
	Notes    template.HTML
}

// HTML renders every record as a static page, oldest first. List items
// follow the global list order; notes are rendered from Markdown.
func HTML(w io.Writer, doc Document) error {
	dates := make([]string, 0, len(doc.Days))
	for date := range doc.Days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]htmlDay, 0, len(dates))
	for _, date := range dates {
		rec := doc.Days[date]
		hd := htmlDay{
			Date:     date,
			Score:    rec.Score,
			Band:     report.ScoreBand(rec.Score),
			Quote:    rec.Quote,
			Stats:    rec.Stats(),
			Tasks:    rec.Ordered(day.Tasks, doc.Tasks),
			Wellness: rec.Ordered(day.Wellness, doc.Wellness),
		}
		if rec.Notes != "" {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(rec.Notes), &buf); err != nil {
				return fmt.Errorf("render notes for %s: %w", date, err)
			}
			hd.Notes = template.HTML(buf.String())
		}
		days = append(days, hd)
	}
	return htmlReport.Execute(w, days)
}
