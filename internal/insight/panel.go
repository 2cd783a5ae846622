// Package insight runs the editor's simulated analysis panel.
//
// The panel moves idle -> analyzing on Request and analyzing -> shown when the
// configured delay elapses. Hide returns it to idle from any state and cancels
// a pending analysis.
package insight

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusAnalyzing Status = "analyzing"
	StatusShown     Status = "shown"
)

const (
	DefaultDelay     = 2 * time.Second
	DefaultMinLength = 20
	MsgTooShort      = "Please write more to get AI insights"
)

// Snapshot is the observable panel state. Insight, Pattern and Trend are set
// only when Status is shown.
type Snapshot struct {
	Status  Status      `json:"status"`
	Insight string      `json:"insight,omitempty"`
	Pattern string      `json:"pattern,omitempty"`
	Trend   *mood.Trend `json:"trend,omitempty"`
}

type Config struct {
	UserID    string
	Clock     clockwork.Clock
	Delay     time.Duration
	MinLength int
	Notifier  notify.Notifier
	Logger    *zap.Logger
}

type Panel struct {
	userID    string
	clock     clockwork.Clock
	delay     time.Duration
	minLength int
	notifier  notify.Notifier
	log       *zap.Logger

	mu      sync.Mutex
	status  Status
	gen     uint64
	timer   clockwork.Timer
	pending Snapshot
	shown   Snapshot
}

func NewPanel(cfg Config) *Panel {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	return &Panel{
		userID:    cfg.UserID,
		clock:     cfg.Clock,
		delay:     cfg.Delay,
		minLength: cfg.MinLength,
		notifier:  cfg.Notifier,
		log:       cfg.Logger.Named("insight").With(zap.String("user_id", cfg.UserID)),
		status:    StatusIdle,
	}
}

// Request starts an analysis of content. history is the prior mood window,
// oldest first; current is appended to it as "Today".
//
// A request while analyzing is ignored, whatever its content, and returns the
// current snapshot. Otherwise content shorter than the minimum length is
// rejected with a validation error and the state is left alone.
func (p *Panel) Request(content string, current mood.Label, history []mood.Observation) (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusAnalyzing {
		return p.snapshotLocked(), nil
	}
	if utf8.RuneCountInString(content) < p.minLength {
		return p.snapshotLocked(), models.NewValidationError("content", MsgTooShort)
	}

	window := append(append([]mood.Observation{}, history...), mood.Observe("Today", current, "Current journal entry"))
	trend, _ := mood.Summarize(window)
	p.pending = Snapshot{
		Status:  StatusShown,
		Insight: Text(current),
		Pattern: mood.Pattern(trend.Current.Value),
		Trend:   &trend,
	}

	p.gen++
	gen := p.gen
	p.status = StatusAnalyzing
	p.timer = p.clock.AfterFunc(p.delay, func() { p.complete(gen) })
	p.log.Debug("analysis started", zap.Duration("delay", p.delay))

	return p.snapshotLocked(), nil
}

// complete fires when the delay elapses. A generation that was hidden or
// superseded in the meantime is dropped.
func (p *Panel) complete(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.status != StatusAnalyzing {
		p.mu.Unlock()
		return
	}
	p.status = StatusShown
	p.shown = p.pending
	p.timer = nil
	p.mu.Unlock()

	if p.notifier != nil {
		p.notifier.Notify(p.userID, notify.Notification{
			Kind:        notify.KindSuccess,
			Title:       "AI insights generated!",
			Description: "New patterns and suggestions are available",
		})
	}
}

// Hide discards the panel, cancelling any pending analysis.
func (p *Panel) Hide() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
	p.status = StatusIdle
	p.pending = Snapshot{}
	p.shown = Snapshot{}
}

// Close tears the panel down with its editor.
func (p *Panel) Close() { p.Hide() }

func (p *Panel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Panel) snapshotLocked() Snapshot {
	if p.status == StatusShown {
		return p.shown
	}
	return Snapshot{Status: p.status}
}
