package models

import (
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
)

// JournalEntry is a saved journal record. Entries are never mutated after save.
type JournalEntry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Mood      mood.Label `json:"mood,omitempty"`
	Tags      []string   `json:"tags"`
	Date      time.Time  `json:"date"`
	WordCount int        `json:"wordCount"`
}

// EntryID is the id accessor used by the entries collection.
func EntryID(e JournalEntry) string { return e.ID }

// Draft mirrors the in-progress editor state.
type Draft struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Mood      mood.Label `json:"mood,omitempty"`
	Tags      []string   `json:"tags"`
	LastSaved time.Time  `json:"lastSaved"`
}

// HasWork reports whether the draft carries a non-blank title or content.
func (d Draft) HasWork() bool {
	return !isBlank(d.Title) || !isBlank(d.Content)
}
