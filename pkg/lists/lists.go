// Package lists computes the replacement lists produced by list-editing
// intents. Every function returns a new slice; none touch the journal.
package lists

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// ErrNoMatch is returned by Resolve when nothing resembles the query.
var ErrNoMatch = errors.New("no matching item")

// Clean trims s and normalises it to NFC so visually identical names
// compare equal.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Sanitize cleans every item and drops the empty ones and repeats. The
// first occurrence of a repeated name keeps its place.
func Sanitize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if c := Clean(item); c != "" && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// FromLines splits text into one item per line and sanitizes them.
func FromLines(text string) []string {
	return Sanitize(strings.Split(text, "\n"))
}

// Add inserts item at index at. An out of range index appends.
func Add(list []string, item string, at int) []string {
	item = Clean(item)
	out := slices.Clone(list)
	if item == "" {
		return out
	}
	if at < 0 || at >= len(out) {
		return append(out, item)
	}
	return slices.Insert(out, at, item)
}

// Remove drops every item equal to item.
func Remove(list []string, item string) []string {
	return slices.DeleteFunc(slices.Clone(list), func(s string) bool {
		return s == item
	})
}

// Rename replaces old with name in place. Renaming is a remove plus an add
// as far as completion history goes.
func Rename(list []string, old, name string) ([]string, error) {
	name = Clean(name)
	if name == "" {
		return nil, errors.New("new name is empty")
	}
	i := slices.Index(list, old)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", old, ErrNoMatch)
	}
	out := slices.Clone(list)
	out[i] = name
	return out, nil
}

// Move relocates item to index to, clamped to the list bounds.
func Move(list []string, item string, to int) ([]string, error) {
	i := slices.Index(list, item)
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", item, ErrNoMatch)
	}
	out := slices.Delete(slices.Clone(list), i, i+1)
	to = max(0, min(to, len(out)))
	return slices.Insert(out, to, item), nil
}

// Resolve maps a typed query to an exact list item. An exact match wins,
// then a case-insensitive one, then the best fuzzy match.
func Resolve(list []string, query string) (string, error) {
	if item, ok := exact(list, query); ok {
		return item, nil
	}
	if item, ok := closest(list, query); ok {
		return item, nil
	}
	return "", noMatch(query)
}

// ResolveExact is Resolve without the fuzzy step, for edits that drop
// history. The error names the closest item when there is one.
func ResolveExact(list []string, query string) (string, error) {
	if item, ok := exact(list, query); ok {
		return item, nil
	}
	if item, ok := closest(list, query); ok {
		return "", fmt.Errorf("%q: %w, did you mean %q?", query, ErrNoMatch, item)
	}
	return "", noMatch(query)
}

func exact(list []string, query string) (string, bool) {
	q := Clean(query)
	if q == "" {
		return "", false
	}
	if slices.Contains(list, q) {
		return q, true
	}
	for _, item := range list {
		if strings.EqualFold(item, q) {
			return item, true
		}
	}
	return "", false
}

func closest(list []string, query string) (string, bool) {
	q := Clean(query)
	if q == "" {
		return "", false
	}
	matches := fuzzy.Find(q, list)
	if len(matches) == 0 {
		return "", false
	}
	return list[matches[0].Index], true
}

func noMatch(query string) error {
	if Clean(query) == "" {
		return fmt.Errorf("empty query: %w", ErrNoMatch)
	}
	return fmt.Errorf("%q: %w", query, ErrNoMatch)
}
