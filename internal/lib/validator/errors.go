package validator

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to every rule it failed.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
