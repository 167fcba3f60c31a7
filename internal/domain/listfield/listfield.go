// Package listfield parses list-valued form fields that the admin UI edits
// as free text (one entry per line, or comma separated) or sends as arrays.
package listfield

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Split splits s on sep, trims each entry and drops empty ones.
func Split(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func SplitLines(s string) []string {
	return Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func SplitCommas(s string) []string {
	return Split(s, ",")
}

// Clean trims entries of an already-split list and drops empty ones.
func Clean(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Lines accepts a JSON array of strings or a newline separated string.
type Lines []string

func (l *Lines) UnmarshalJSON(data []byte) error {
	items, err := decode(data, SplitLines)
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// Commas accepts a JSON array of strings or a comma separated string.
type Commas []string

func (c *Commas) UnmarshalJSON(data []byte) error {
	items, err := decode(data, SplitCommas)
	if err != nil {
		return err
	}
	*c = items
	return nil
}

func decode(data []byte, split func(string) []string) ([]string, error) {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		return split(text), nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("list field must be a string or an array of strings: %w", err)
	}
	return Clean(items), nil
}
