// Package services orchestrates the record store, the editors and the
// notification sink into the operations exposed over HTTP.
package services

import (
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Services struct {
	Sessions *SessionService
	Journal  *JournalService
	Editors  *EditorService
	Mood     *MoodService
	Handoff  *HandoffService
	Settings *SettingsService
}

func New(store *recordstore.Store, clock clockwork.Clock, notifier notify.Notifier, cfg EditorConfig, log *zap.Logger) *Services {
	handoff := NewHandoffService(store)
	editors := NewEditorService(store, handoff, clock, cfg, notifier, log)
	return &Services{
		Sessions: NewSessionService(store, editors, notifier, log),
		Journal:  NewJournalService(store, editors, clock, notifier, log),
		Editors:  editors,
		Mood:     NewMoodService(store, handoff, clock, notifier, log),
		Handoff:  handoff,
		Settings: NewSettingsService(store),
	}
}
