package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventPortal/internal/models"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: "1", Title: "PACE Tech Fest 2024", Category: "Technology"},
		{ID: "2", Title: "Linux Install Fest", Category: "Workshop"},
		{ID: "4", Title: "Ethnic Day Celebration", Category: "Cultural"},
		{ID: "5", Title: "Inter-Department Cricket Tournament", Category: "Sports"},
		{ID: "6", Title: "Mega Blood Donation Camp", Category: "Social Service"},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{
			name:     "No filters returns everything",
			category: "All",
			wantIDs:  []string{"1", "2", "4", "5", "6"},
		},
		{
			name:    "Query matches title case-insensitively",
			query:   "fest",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "Query matches category",
			query:   "sports",
			wantIDs: []string{"5"},
		},
		{
			name:     "Category equality",
			category: "Cultural",
			wantIDs:  []string{"4"},
		},
		{
			name:     "Technical alias covers Technology",
			category: "Technical",
			wantIDs:  []string{"1"},
		},
		{
			name:     "Social alias covers Social Service",
			category: "Social",
			wantIDs:  []string{"6"},
		},
		{
			name:     "Query and category combine",
			query:    "fest",
			category: "Workshop",
			wantIDs:  []string{"2"},
		},
		{
			name:    "No match",
			query:   "symposium on nothing",
			wantIDs: nil,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(sampleEvents(), tc.query, tc.category)

			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}

			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}
