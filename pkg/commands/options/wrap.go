package options

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Wrap80 folds help text to 80 columns.
func Wrap80(text string) string {
	return Wrap(text, 80)
}

// Wrap joins the words of text with single spaces and folds the result at
// width. Text without words is returned as is.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	return wordwrap.String(strings.Join(words, " "), width)
}
