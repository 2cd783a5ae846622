// Package draft keeps in-progress editor state safe across reloads by
// snapshotting it into the draft slot on a fixed interval.
package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultInterval is the autosave period when none is configured.
const DefaultInterval = 30 * time.Second

const writeTimeout = 5 * time.Second

var ErrMounted = errors.New("draft: manager already mounted")

// Config carries the manager's collaborators.
type Config struct {
	UserID   string
	Slot     *recordstore.Slot[models.Draft]
	Clock    clockwork.Clock
	Interval time.Duration
	Notifier notify.Notifier
	Logger   *zap.Logger
}

// Manager autosaves the editor state of one user while mounted.
type Manager struct {
	userID   string
	slot     *recordstore.Slot[models.Draft]
	clock    clockwork.Clock
	interval time.Duration
	notifier notify.Notifier
	log      *zap.Logger

	// writeMu orders autosave writes against Invalidate so a snapshot taken
	// before an invalidation is never written after it.
	writeMu sync.Mutex
	mu      sync.Mutex
	state   models.Draft
	mounted bool
	stop    chan struct{}
	done    chan struct{}
}

func New(cfg Config) *Manager {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Manager{
		userID:   cfg.UserID,
		slot:     cfg.Slot,
		clock:    cfg.Clock,
		interval: cfg.Interval,
		notifier: cfg.Notifier,
		log:      cfg.Logger.Named("draft").With(zap.String("user_id", cfg.UserID)),
	}
}

// Mount reads the draft slot once and starts the autosave ticker. A stored
// draft with a non-blank title or content becomes the editor state and is
// reported as recovered; anything else (missing, malformed, blank) is no draft.
func (m *Manager) Mount(ctx context.Context) (models.Draft, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mounted {
		return models.Draft{}, false, ErrMounted
	}

	stored, ok, err := m.slot.Get(ctx)
	if err != nil {
		return models.Draft{}, false, fmt.Errorf("draft: mount: %w", err)
	}
	recovered := ok && stored.HasWork()
	if recovered {
		if stored.Tags == nil {
			stored.Tags = []string{}
		}
		m.state = stored
		m.log.Info("draft recovered", zap.Time("last_saved", stored.LastSaved))
		if m.notifier != nil {
			m.notifier.Notify(m.userID, notify.Notification{
				Kind:        notify.KindInfo,
				Title:       "Draft recovered",
				Description: "Your unsaved journal entry has been restored",
			})
		}
	} else {
		m.state = models.Draft{Tags: []string{}}
	}

	m.mounted = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	ticker := m.clock.NewTicker(m.interval)
	go m.run(ticker, m.stop, m.done)

	return m.snapshotLocked(), recovered, nil
}

func (m *Manager) run(ticker clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			m.autosave()
		}
	}
}

// autosave writes a snapshot when there is unsaved work and does nothing
// otherwise. Failures are logged; the next tick retries.
func (m *Manager) autosave() {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	if !m.state.HasWork() {
		m.mu.Unlock()
		return
	}
	d := m.snapshotLocked()
	d.LastSaved = m.clock.Now().UTC()
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := m.slot.Put(ctx, d); err != nil {
		m.log.Error("autosave failed", zap.Error(err))
		return
	}

	m.mu.Lock()
	m.state.LastSaved = d.LastSaved
	m.mu.Unlock()
	m.log.Debug("draft autosaved")
}

// Update replaces the in-memory editor state. LastSaved is kept.
func (m *Manager) Update(d models.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.LastSaved = m.state.LastSaved
	if d.Tags == nil {
		d.Tags = []string{}
	}
	m.state = d
}

// State returns a copy of the editor state.
func (m *Manager) State() models.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Invalidate removes the stored draft and clears the editor state. It is
// called after a successful save.
func (m *Manager) Invalidate(ctx context.Context) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	m.state = models.Draft{Tags: []string{}}
	m.mu.Unlock()

	if err := m.slot.Delete(ctx); err != nil {
		return fmt.Errorf("draft: invalidate: %w", err)
	}
	return nil
}

// Unmount stops the ticker and waits for the autosave goroutine to exit. It is
// safe to call on a manager that is not mounted.
func (m *Manager) Unmount() {
	m.mu.Lock()
	if !m.mounted {
		m.mu.Unlock()
		return
	}
	m.mounted = false
	close(m.stop)
	done := m.done
	m.mu.Unlock()

	<-done
}

func (m *Manager) Mounted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted
}

func (m *Manager) snapshotLocked() models.Draft {
	d := m.state
	d.Tags = append([]string{}, m.state.Tags...)
	return d
}
