package journal

import (
	"fmt"
	"iter"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/samber/lo"
)

// Filter narrows a query beyond the search term.
type Filter string

const (
	FilterAll Filter = "all"
	// FilterRecent matches the same entries as FilterAll; the collection is
	// already newest first.
	FilterRecent       Filter = "recent"
	FilterMoodPositive Filter = "moodPositive"
)

// ParseFilter accepts the filter names case-insensitively. "mood" is an alias
// for moodPositive and the empty string selects all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "recent":
		return FilterRecent, nil
	case "moodpositive", "mood":
		return FilterMoodPositive, nil
	}
	return "", models.NewValidationError("filter", fmt.Sprintf("Unknown filter %q", s))
}

type Query struct {
	Search string
	Filter Filter
}

// Match reports whether e satisfies both the search term and the filter.
func (q Query) Match(e models.JournalEntry) bool {
	if q.Filter == FilterMoodPositive && !e.Mood.IsPositive() {
		return false
	}
	term := strings.ToLower(q.Search)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Content), term) ||
		lo.SomeBy(e.Tags, func(t string) bool { return strings.Contains(strings.ToLower(t), term) })
}

// Search yields the entries matching q in their stored order. The sequence is
// evaluated lazily and may be ranged over any number of times.
func Search(entries []models.JournalEntry, q Query) iter.Seq[models.JournalEntry] {
	return func(yield func(models.JournalEntry) bool) {
		for _, e := range entries {
			if !q.Match(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
