// Package mcp provides the Model Context Protocol server integration for
// daybook.
package mcp

import (
	"errors"
	"time"

	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/lists"
)

// Service coordinates the journal operations shared by the MCP tools and
// resources.
type Service struct {
	Journal *journal.Journal
	now     func() time.Time
}

// ErrUnknownItem is returned when an update names an item that is not on
// the day's checklist.
var ErrUnknownItem = journal.ErrUnknownItem

// DayDTO is a transport-friendly projection of a day record.
type DayDTO struct {
	Date     string     `json:"date"`
	Score    int        `json:"score"`
	Quote    string     `json:"quote"`
	Notes    string     `json:"notes"`
	Tasks    []day.Item `json:"tasks"`
	Wellness []day.Item `json:"wellness"`
	Stats    day.Stats  `json:"stats"`
}

// ListsDTO holds both global lists.
type ListsDTO struct {
	Tasks    []string `json:"tasks"`
	Wellness []string `json:"wellness"`
}

// UpdateDayOptions captures the optional fields of an update. Item maps
// are merged into the day's checklists.
type UpdateDayOptions struct {
	Date     string
	Score    *int
	Notes    *string
	Tasks    map[string]bool
	Wellness map[string]bool
}

// NewService builds a service over j.
func NewService(j *journal.Journal) *Service {
	return &Service{Journal: j, now: time.Now}
}

func (s *Service) check() error {
	if s.Journal == nil {
		return errors.New("journal is not configured")
	}
	return nil
}

// date resolves relative input such as "today" to a record key.
func (s *Service) date(in string) (string, error) {
	now := time.Now
	if s.now != nil {
		now = s.now
	}
	return day.ParseDate(in, now())
}

func (s *Service) dto(date string) DayDTO {
	rec := s.Journal.GetOrCreate(date)
	return DayDTO{
		Date:     rec.Date,
		Score:    rec.Score,
		Quote:    rec.Quote,
		Notes:    rec.Notes,
		Tasks:    rec.Ordered(day.Tasks, s.Journal.Tasks()),
		Wellness: rec.Ordered(day.Wellness, s.Journal.Wellness()),
		Stats:    rec.Stats(),
	}
}

// GetDay returns the record for date, creating it in memory when absent.
func (s *Service) GetDay(date string) (DayDTO, error) {
	if err := s.check(); err != nil {
		return DayDTO{}, err
	}
	key, err := s.date(date)
	if err != nil {
		return DayDTO{}, err
	}
	return s.dto(key), nil
}

// UpdateDay applies opts in one persisted change.
func (s *Service) UpdateDay(opts UpdateDayOptions) (DayDTO, error) {
	if err := s.check(); err != nil {
		return DayDTO{}, err
	}
	key, err := s.date(opts.Date)
	if err != nil {
		return DayDTO{}, err
	}

	p := day.Patch{Score: opts.Score, Notes: opts.Notes}
	if len(opts.Tasks) > 0 {
		p.Tasks = opts.Tasks
	}
	if len(opts.Wellness) > 0 {
		p.Wellness = opts.Wellness
	}
	if p.Empty() {
		return DayDTO{}, errors.New("nothing to update, provide score, notes, tasks or wellness")
	}
	if err := s.Journal.Merge(key, p); err != nil {
		return DayDTO{}, err
	}
	return s.dto(key), nil
}

// ToggleItem flips one item, resolved against the day's checklist.
func (s *Service) ToggleItem(date string, kind day.Kind, item string) (DayDTO, error) {
	if err := s.check(); err != nil {
		return DayDTO{}, err
	}
	key, err := s.date(date)
	if err != nil {
		return DayDTO{}, err
	}
	rec := s.Journal.GetOrCreate(key)
	names := make([]string, 0, len(rec.Items(kind)))
	for _, it := range rec.Ordered(kind, s.Journal.List(kind)) {
		names = append(names, it.Name)
	}
	match, err := lists.Resolve(names, item)
	if err != nil {
		return DayDTO{}, err
	}
	s.Journal.Toggle(key, kind, match)
	return s.dto(key), nil
}

// ProgressStats returns the counts for date.
func (s *Service) ProgressStats(date string) (day.Stats, error) {
	if err := s.check(); err != nil {
		return day.Stats{}, err
	}
	key, err := s.date(date)
	if err != nil {
		return day.Stats{}, err
	}
	return s.Journal.ProgressStats(key), nil
}

// Lists returns both global lists.
func (s *Service) Lists() (ListsDTO, error) {
	if err := s.check(); err != nil {
		return ListsDTO{}, err
	}
	return ListsDTO{Tasks: s.Journal.Tasks(), Wellness: s.Journal.Wellness()}, nil
}

// SetList replaces a global list. Items are sanitized first.
func (s *Service) SetList(kind day.Kind, items []string) (ListsDTO, error) {
	if err := s.check(); err != nil {
		return ListsDTO{}, err
	}
	s.Journal.SetList(kind, lists.Sanitize(items))
	return s.Lists()
}

// ResetList restores a global list to its defaults.
func (s *Service) ResetList(kind day.Kind) (ListsDTO, error) {
	if err := s.check(); err != nil {
		return ListsDTO{}, err
	}
	s.Journal.ResetToDefault(kind)
	return s.Lists()
}

// Days lists the dates that have a stored record.
func (s *Service) Days() ([]string, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.Journal.Dates(), nil
}
