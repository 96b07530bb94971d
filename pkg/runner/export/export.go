// Package export provides the runners that move whole journals in and out.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/export"
	"tableflip.dev/daybook/pkg/journal"
)

// Formats accepted by Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTML = "html"
)

// Export writes a snapshot of the journal to Out.
type Export struct {
	Journal *journal.Journal
	Format  string
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}

	doc := export.Snapshot(n.Journal)
	switch f := strings.ToLower(n.Format); f {
	case "", FormatJSON:
		return export.JSON(w, doc)
	case FormatYAML, "yml":
		return export.YAML(w, doc)
	case FormatHTML:
		return export.HTML(w, doc)
	default:
		return fmt.Errorf("unknown export format %q, expected json, yaml or html", n.Format)
	}
}

// Import reads a document from In and applies it to the journal. With
// LocalStorage the input is a dump of the browser app's storage.
type Import struct {
	Journal      *journal.Journal
	In           io.Reader
	LocalStorage bool
	Out          io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not import, no journal")
	}
	if n.In == nil {
		return errors.New("can not import, no input")
	}

	read := export.ReadJSON
	if n.LocalStorage {
		read = export.ReadLocalStorage
	}
	doc, err := read(n.In)
	if err != nil {
		return err
	}
	export.Apply(n.Journal, doc)

	w := n.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintf(w, "imported %d days, lists now hold %d tasks and %d wellness items\n",
		len(doc.Days), len(n.Journal.Tasks()), len(n.Journal.Wellness()))
	return nil
}
