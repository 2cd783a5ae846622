package services

import (
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
)

// records resolves the persisted collections and slots of a user.
type records struct {
	root *recordstore.Store
}

func (r records) entries(userID string) *recordstore.Collection[models.JournalEntry] {
	return recordstore.NewCollection(r.root.ForUser(userID), recordstore.KeyJournalEntries, models.EntryID)
}

func (r records) moodChecks(userID string) *recordstore.Collection[models.MoodCheck] {
	return recordstore.NewCollection(r.root.ForUser(userID), recordstore.KeyMoodChecks, func(c models.MoodCheck) string {
		return c.Date.Format(time.RFC3339Nano)
	})
}

func (r records) draft(userID string) *recordstore.Slot[models.Draft] {
	return recordstore.NewSlot[models.Draft](r.root.ForUser(userID), recordstore.KeyDraft)
}

func (r records) selectedPrompt(userID string) *recordstore.TextSlot {
	return recordstore.NewTextSlot(r.root.ForUser(userID), recordstore.KeySelectedPrompt)
}

func (r records) selectedMood(userID string) *recordstore.TextSlot {
	return recordstore.NewTextSlot(r.root.ForUser(userID), recordstore.KeySelectedMood)
}

func (r records) theme(userID string) *recordstore.TextSlot {
	return recordstore.NewTextSlot(r.root.ForUser(userID), recordstore.KeyTheme)
}

func (r records) mode(userID string) *recordstore.TextSlot {
	return recordstore.NewTextSlot(r.root.ForUser(userID), recordstore.KeyMode)
}

func (r records) user(userID string) *recordstore.Slot[models.DemoUser] {
	return recordstore.NewSlot[models.DemoUser](r.root.ForUser(userID), recordstore.KeyUser)
}

// session is the token index. It lives outside every user namespace.
func (r records) session(token string) *recordstore.Slot[models.Session] {
	return recordstore.NewSlot[models.Session](r.root, SessionKeyPrefix+token)
}
