// Package facet handles inbound facet-filter selections and outbound facet
// requests.
package facet

import "strings"

// Selections maps a facet name to the values selected for it.
type Selections map[string][]string

// ParseSelections parses a filter string of the form "name1=v1,v2::name2=v3"
// into selections. A blank string yields an empty map. Malformed segments
// (no "=", empty name, empty value list) are dropped so a bad facet group
// never blocks the text search from working.
func ParseSelections(s string) Selections {
	sel := Selections{}
	if strings.TrimSpace(s) == "" {
		return sel
	}

	for _, group := range strings.Split(s, "::") {
		name, rest, ok := strings.Cut(group, "=")
		if !ok || name == "" {
			continue
		}
		var values []string
		for _, v := range strings.Split(rest, ",") {
			if v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		sel[name] = values
	}
	return sel
}

// Request asks the engine for a term facet over a field.
type Request struct {
	Name  string
	Field string
	Size  int
}
