package journal

import (
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
)

const (
	wordsPerMinute = 200
	excerptRunes   = 160
	longDateLayout = "January 2, 2006"
)

// ReadTime is the whole-minute reading estimate, never below one.
func ReadTime(wordCount int) int {
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	return max(1, minutes)
}

// FormatDate renders t as a long date in loc (UTC when nil).
func FormatDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(longDateLayout)
}

// Excerpt returns up to 160 runes of content, marking truncation with an ellipsis.
func Excerpt(content string) string {
	r := []rune(content)
	if len(r) <= excerptRunes {
		return content
	}
	return string(r[:excerptRunes]) + "…"
}

// EntryView is an entry plus the fields derived for display.
type EntryView struct {
	models.JournalEntry
	ReadTime      int    `json:"readTime"`
	FormattedDate string `json:"formattedDate"`
	Excerpt       string `json:"excerpt"`
}

func View(e models.JournalEntry, loc *time.Location) EntryView {
	return EntryView{
		JournalEntry:  e,
		ReadTime:      ReadTime(e.WordCount),
		FormattedDate: FormatDate(e.Date, loc),
		Excerpt:       Excerpt(e.Content),
	}
}
