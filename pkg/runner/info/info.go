package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/store"
)

type Info struct {
	Config  *store.FileConfig
	KV      store.KV
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "DAYBOOK_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "DAYBOOK_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig("")
		if err != nil {
			return err
		}
	}

	file := n.Config.File
	if file == "" {
		file = "none found, using defaults"
	}
	_, _ = fmt.Fprintln(w, "Config.file:", file)
	_, _ = fmt.Fprintln(w, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Config.backend:", n.Config.Backend())

	if n.KV == nil || n.Journal == nil {
		return errors.New("failed to open the store")
	}

	_, _ = fmt.Fprintf(w, "Keys:\n")
	found := 0
	for _, k := range n.KV.Keys(ctx) {
		_, _ = fmt.Fprintf(w, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", "no keys written yet")
	}

	dates := n.Journal.Dates()
	_, _ = fmt.Fprintf(w, "Days recorded: %d\n", len(dates))
	if len(dates) > 0 {
		_, _ = fmt.Fprintf(w, "  %s to %s\n", dates[0], dates[len(dates)-1])
	}
	_, _ = fmt.Fprintf(w, "Tasks: %d\nWellness: %d\n", len(n.Journal.Tasks()), len(n.Journal.Wellness()))
	return nil
}
