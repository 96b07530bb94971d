// Package ui starts the interactive terminal front end.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui"
)

// ErrNotTerminal is returned when stdout can not host the UI.
var ErrNotTerminal = errors.New("the ui needs an interactive terminal, try 'daybook show' instead")

type UI struct {
	Journal *journal.Journal
	// KV is watched for writes from other processes when it supports it.
	KV store.KV
	// Out is checked to be a terminal; os.Stdout when nil.
	Out *os.File
}

func (d *UI) Do(ctx context.Context) error {
	if d.Journal == nil {
		return errors.New("can not start ui, no journal")
	}
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	if !IsTerminal(out) {
		return ErrNotTerminal
	}

	opts := tui.Options{Journal: d.Journal}
	if w, ok := d.KV.(store.Watcher); ok {
		opts.Watcher = w
	}
	return tui.Run(ctx, opts)
}

// IsTerminal reports whether f is a terminal, including cygwin ones.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
