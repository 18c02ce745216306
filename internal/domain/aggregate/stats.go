package aggregate

import "icebreaker/internal/domain/entity"

// UserStats counts what a user contributed.
type UserStats struct {
	Entries  int `json:"entries"`
	Comments int `json:"comments"`
}

// StatsForUser counts the entries authored by userID and the comments authored by
// userID across every entry's comment list.
func StatsForUser(entries []*entity.Entry, userID string) UserStats {
	var stats UserStats
	for _, e := range entries {
		if e.AuthorID == userID {
			stats.Entries++
		}
		for _, c := range e.Comments {
			if c.AuthorID == userID {
				stats.Comments++
			}
		}
	}

	return stats
}

// DefaultRecentEntries is how many entries a profile lists under recent activity.
const DefaultRecentEntries = 5

// ImageEntrySummary stands in for the text of an entry that only carries an image.
const ImageEntrySummary = "Image entry"

// RecentEntry is one line of a user's recent activity.
type RecentEntry struct {
	EntryID      string `json:"entry_id"`
	IcebreakerID string `json:"icebreaker_id"`
	Summary      string `json:"summary"`
}

// RecentEntriesForUser returns the first n entries authored by userID in collection order.
func RecentEntriesForUser(entries []*entity.Entry, userID string, n int) []RecentEntry {
	recent := make([]RecentEntry, 0, n)
	for _, e := range entries {
		if len(recent) >= n {
			break
		}
		if e.AuthorID != userID {
			continue
		}

		summary := e.Text
		if summary == "" {
			summary = ImageEntrySummary
		}
		recent = append(recent, RecentEntry{EntryID: e.ID, IcebreakerID: e.IcebreakerID, Summary: summary})
	}

	return recent
}
