// Package journal builds journal entries and answers queries over them.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Validation messages shown to the user when a save is rejected.
const (
	MsgTitleRequired   = "Please add a title to your journal entry"
	MsgContentRequired = "Your journal entry is empty"
)

// EntryInput is the editor state submitted for saving.
type EntryInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// NewEntry validates in and builds an entry stamped with now. Title is checked
// before content; title and content are stored as typed.
func NewEntry(in EntryInput, now time.Time) (models.JournalEntry, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.JournalEntry{}, models.NewValidationError("title", MsgTitleRequired)
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.JournalEntry{}, models.NewValidationError("content", MsgContentRequired)
	}
	label, err := mood.ParseLabel(in.Mood)
	if err != nil {
		return models.JournalEntry{}, models.NewValidationError("mood", fmt.Sprintf("Unknown mood %q", in.Mood))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("journal: new id: %w", err)
	}

	return models.JournalEntry{
		ID:        id.String(),
		Title:     in.Title,
		Content:   in.Content,
		Mood:      label,
		Tags:      NormalizeTags(in.Tags),
		Date:      now.UTC(),
		WordCount: WordCount(in.Content),
	}, nil
}

// WordCount counts whitespace-delimited tokens.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// NormalizeTag trims and lower-cases a tag. The result may be empty.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// NormalizeTags normalizes every tag, dropping blanks and repeats while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := lo.Uniq(lo.FilterMap(tags, func(t string, _ int) (string, bool) {
		t = NormalizeTag(t)
		return t, t != ""
	}))
	if out == nil {
		return []string{}
	}
	return out
}

// AddTag appends tag unless it is blank or already present, reporting whether
// the set changed. Repeats are not an error.
func AddTag(tags []string, tag string) ([]string, bool) {
	tag = NormalizeTag(tag)
	if tag == "" || lo.Contains(tags, tag) {
		return tags, false
	}
	return append(tags, tag), true
}

func RemoveTag(tags []string, tag string) []string {
	tag = NormalizeTag(tag)
	return lo.Without(tags, tag)
}
