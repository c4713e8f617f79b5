package keys

import (
	"sort"
	"strings"
)

// PartyKey produces a canonical key for a party of card ids: trimmed,
// lower-cased, spaces replaced with underscores, sorted and joined with
// commas. Duplicates are kept so "a,a,b" and "a,b" stay distinct.
func PartyKey(cardIDs []string) string {
	parts := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		s := strings.TrimSpace(id)
		if s == "" {
			continue
		}
		parts = append(parts, strings.ToLower(strings.ReplaceAll(s, " ", "_")))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
