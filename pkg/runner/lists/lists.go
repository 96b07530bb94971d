// Package lists provides the runners that edit the global item lists.
package lists

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	itemlists "tableflip.dev/daybook/pkg/lists"
	"tableflip.dev/daybook/pkg/printers"
)

// View is the structured form of both lists.
type View struct {
	Tasks    []string `json:"tasks" yaml:"tasks"`
	Wellness []string `json:"wellness" yaml:"wellness"`
}

// Show prints one list, or both when Kind is empty.
type Show struct {
	Journal *journal.Journal
	Kind    day.Kind
	Output  *options.OutputOptions
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show lists, no journal")
	}
	if n.Output.Structured() {
		if n.Kind != "" {
			return n.Output.Write(n.Out, n.Journal.List(n.Kind))
		}
		return n.Output.Write(n.Out, View{Tasks: n.Journal.Tasks(), Wellness: n.Journal.Wellness()})
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Kind != "" {
		pp.List(n.Kind, n.Journal.List(n.Kind))
		return nil
	}
	pp.Lists(n.Journal.Tasks(), n.Journal.Wellness())
	return nil
}

// Edit computes a new list from the current one and applies it with
// SetList. Items are sanitized first.
type Edit struct {
	Journal *journal.Journal
	Kind    day.Kind
	Change  func(current []string) ([]string, error)
	Out     io.Writer
}

// Replace returns a Change that discards the current list.
func Replace(items []string) func([]string) ([]string, error) {
	return func([]string) ([]string, error) {
		return items, nil
	}
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit list, no journal")
	}
	if n.Change == nil {
		return errors.New("can not edit list, no change")
	}
	next, err := n.Change(n.Journal.List(n.Kind))
	if err != nil {
		return err
	}
	n.Journal.SetList(n.Kind, itemlists.Sanitize(next))

	pp := printers.PrettyPrint{Out: n.Out}
	pp.List(n.Kind, n.Journal.List(n.Kind))
	return nil
}

// Reset restores a list to its configured defaults.
type Reset struct {
	Journal *journal.Journal
	Kind    day.Kind
	Out     io.Writer
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not reset list, no journal")
	}
	n.Journal.ResetToDefault(n.Kind)

	w := n.Out
	if w == nil {
		w = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(w, "%s reset to defaults\n", n.Kind.Title())
	pp := printers.PrettyPrint{Out: w}
	pp.List(n.Kind, n.Journal.List(n.Kind))
	return nil
}

// Rename returns a Change renaming old to name. old must name an item
// exactly, ignoring case, since the rename drops its history.
func Rename(old, name string) func([]string) ([]string, error) {
	return func(current []string) ([]string, error) {
		match, err := itemlists.ResolveExact(current, old)
		if err != nil {
			return nil, err
		}
		return itemlists.Rename(current, match, name)
	}
}

// Remove returns a Change dropping the item query names exactly, ignoring
// case.
func Remove(query string) func([]string) ([]string, error) {
	return func(current []string) ([]string, error) {
		match, err := itemlists.ResolveExact(current, query)
		if err != nil {
			return nil, err
		}
		return itemlists.Remove(current, match), nil
	}
}

// Move returns a Change putting the item query resolves to at position to
// (1 based).
func Move(query string, to int) func([]string) ([]string, error) {
	return func(current []string) ([]string, error) {
		if to < 1 {
			return nil, fmt.Errorf("invalid position %d, positions start at 1", to)
		}
		match, err := itemlists.Resolve(current, query)
		if err != nil {
			return nil, err
		}
		return itemlists.Move(current, match, to-1)
	}
}

// Add returns a Change inserting item at position at (1 based); 0 appends.
func Add(item string, at int) func([]string) ([]string, error) {
	return func(current []string) ([]string, error) {
		if at < 0 {
			return nil, fmt.Errorf("invalid position %d", at)
		}
		return itemlists.Add(current, item, at-1), nil
	}
}
