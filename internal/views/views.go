// Package views holds pure projections over store snapshots, used by the
// listing endpoints. No state, no side effects.
package views

import (
	"strings"

	"eventPortal/internal/models"
)

// Categories is the suggestion list offered to clubs when submitting an
// event. It is not enforced at the store level.
var Categories = []string{"Technology", "Workshop", "Cultural", "Sports", "Social Service", "Academic"}

// categoryAliases maps the dashboard filter chips to the stored category
// names they cover.
var categoryAliases = map[string]string{
	"Technical": "Technology",
	"Social":    "Social Service",
}

// Filter narrows events by a free-text query (case-insensitive substring on
// title or category) combined with a category filter. "All" or an empty
// category matches everything.
func Filter(events []models.Event, query, category string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []models.Event
	for _, e := range events {
		if !matchesQuery(e, q) {
			continue
		}
		if !matchesCategory(e, category) {
			continue
		}
		out = append(out, e)
	}

	return out
}

func matchesQuery(e models.Event, q string) bool {
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Category), q)
}

func matchesCategory(e models.Event, category string) bool {
	if category == "" || category == "All" {
		return true
	}
	if alias, ok := categoryAliases[category]; ok && e.Category == alias {
		return true
	}

	return e.Category == category
}
