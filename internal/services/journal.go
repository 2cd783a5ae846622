package services

import (
	"context"
	"fmt"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/journal"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type JournalService struct {
	records  records
	editors  *EditorService
	clock    clockwork.Clock
	notifier notify.Notifier
	log      *zap.Logger
	loc      *time.Location
}

func NewJournalService(store *recordstore.Store, editors *EditorService, clock clockwork.Clock, notifier notify.Notifier, log *zap.Logger) *JournalService {
	return &JournalService{
		records:  records{root: store},
		editors:  editors,
		clock:    clock,
		notifier: notifier,
		log:      log.Named("journal"),
		loc:      time.UTC,
	}
}

// Save validates and stores a new entry, newest first. A rejected entry leaves
// the store untouched. After the write the draft is dropped and the insight
// panel reset.
func (s *JournalService) Save(ctx context.Context, userID string, in journal.EntryInput) (models.JournalEntry, error) {
	entry, err := journal.NewEntry(in, s.clock.Now())
	if err != nil {
		return models.JournalEntry{}, err
	}
	if err := s.records.entries(userID).AppendFront(ctx, entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("journal: save: %w", err)
	}

	if err := s.editors.AfterSave(ctx, userID); err != nil {
		// the entry is stored; a stale draft is only offered for recovery later
		s.log.Error("draft invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}

	s.log.Info("journal entry saved",
		zap.String("user_id", userID),
		zap.String("entry_id", entry.ID),
		zap.Int("word_count", entry.WordCount))
	s.notifier.Notify(userID, notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Journal entry saved",
		Description: "Your thoughts have been recorded",
	})
	return entry, nil
}

// Delete removes an entry. Deleting an unknown id is not an error.
func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if err := s.records.entries(userID).RemoveByID(ctx, id); err != nil {
		return fmt.Errorf("journal: delete: %w", err)
	}
	return nil
}

// List runs q over the stored entries and returns display views.
func (s *JournalService) List(ctx context.Context, userID string, q journal.Query) ([]journal.EntryView, error) {
	entries, err := s.records.entries(userID).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	views := []journal.EntryView{}
	for e := range journal.Search(entries, q) {
		views = append(views, journal.View(e, s.loc))
	}
	return views, nil
}
