// Package tags normalizes free-text tag input.
package tags

import "strings"

// Normalize splits every element on commas, trims whitespace and drops
// empty results. Order is preserved and duplicates are kept. The
// function is idempotent, so form fields may arrive either as one
// comma-separated string or as an already split list.
func Normalize(raw []string) []string {
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, tag := range strings.Split(item, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			result = append(result, tag)
		}
	}
	return result
}
