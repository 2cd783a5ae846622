package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/draft"
	"github.com/AnshRaj112/neurosphere-backend/internal/insight"
	"github.com/AnshRaj112/neurosphere-backend/internal/journal"
	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// historySize is how many prior entries feed the insight mood window.
const historySize = 6

type EditorConfig struct {
	AutosaveInterval time.Duration
	InsightDelay     time.Duration
	InsightMinLength int
}

// EditorService hosts one mounted editor per user: its autosave manager and
// its insight panel.
type EditorService struct {
	records  records
	handoff  *HandoffService
	clock    clockwork.Clock
	cfg      EditorConfig
	notifier notify.Notifier
	log      *zap.Logger

	mu       sync.Mutex
	sessions map[string]*editorSession
}

type editorSession struct {
	draft *draft.Manager
	panel *insight.Panel
}

func (e *editorSession) close() {
	e.panel.Close()
	e.draft.Unmount()
}

// MountOptions are explicit navigation arguments. When set they win over the
// stored handoffs, which are then left untouched.
type MountOptions struct {
	Prompt string `json:"prompt"`
	Mood   string `json:"mood"`
}

// EditorInput is the editor state sent by the client.
type EditorInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

type EditorState struct {
	models.Draft
	WordCount int              `json:"wordCount"`
	Recovered bool             `json:"recovered"`
	Insight   insight.Snapshot `json:"insight"`
}

func NewEditorService(store *recordstore.Store, handoff *HandoffService, clock clockwork.Clock, cfg EditorConfig, notifier notify.Notifier, log *zap.Logger) *EditorService {
	return &EditorService{
		records:  records{root: store},
		handoff:  handoff,
		clock:    clock,
		cfg:      cfg,
		notifier: notifier,
		log:      log.Named("editor"),
		sessions: make(map[string]*editorSession),
	}
}

// Mount opens the editor for userID, replacing one that is already open. It
// recovers the stored draft, then applies the prompt and mood handoffs: a
// prompt fills blank content, a mood replaces the selected mood.
func (s *EditorService) Mount(ctx context.Context, userID string, opts MountOptions) (EditorState, error) {
	s.Unmount(userID)

	mgr := draft.New(draft.Config{
		UserID:   userID,
		Slot:     s.records.draft(userID),
		Clock:    s.clock,
		Interval: s.cfg.AutosaveInterval,
		Notifier: s.notifier,
		Logger:   s.log,
	})
	state, recovered, err := mgr.Mount(ctx)
	if err != nil {
		return EditorState{}, fmt.Errorf("editor: mount: %w", err)
	}

	if strings.TrimSpace(state.Content) == "" {
		prompt, err := s.prompt(ctx, userID, opts.Prompt)
		if err != nil {
			mgr.Unmount()
			return EditorState{}, err
		}
		if prompt != "" {
			state.Content = prompt + "\n\n"
		}
	}

	label, err := s.mood(ctx, userID, opts.Mood)
	if err != nil {
		mgr.Unmount()
		return EditorState{}, err
	}
	if label != "" {
		state.Mood = label
	}
	mgr.Update(state)

	sess := &editorSession{
		draft: mgr,
		panel: insight.NewPanel(insight.Config{
			UserID:    userID,
			Clock:     s.clock,
			Delay:     s.cfg.InsightDelay,
			MinLength: s.cfg.InsightMinLength,
			Notifier:  s.notifier,
			Logger:    s.log,
		}),
	}

	s.mu.Lock()
	prev := s.sessions[userID]
	s.sessions[userID] = sess
	s.mu.Unlock()
	if prev != nil {
		prev.close()
	}

	st := s.state(sess)
	st.Recovered = recovered
	return st, nil
}

func (s *EditorService) prompt(ctx context.Context, userID, explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	p, _, err := s.handoff.TakePrompt(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("editor: prompt handoff: %w", err)
	}
	return strings.TrimSpace(p), nil
}

func (s *EditorService) mood(ctx context.Context, userID, explicit string) (mood.Label, error) {
	raw := strings.TrimSpace(explicit)
	fromHandoff := raw == ""
	if fromHandoff {
		v, _, err := s.handoff.TakeMood(ctx, userID)
		if err != nil {
			return "", fmt.Errorf("editor: mood handoff: %w", err)
		}
		raw = v
	}
	label, _, ok := resolveMood(raw)
	if !ok && raw != "" {
		if !fromHandoff {
			return "", models.NewValidationError("mood", fmt.Sprintf("Unknown mood %q", raw))
		}
		s.log.Warn("ignoring unknown mood handoff", zap.String("user_id", userID), zap.String("mood", raw))
	}
	return label, nil
}

// resolveMood accepts either picker vocabulary and returns the canonical label
// with its 1..5 level.
func resolveMood(raw string) (mood.Label, int, bool) {
	if raw == "" {
		return "", 0, false
	}
	if q, err := mood.ParseQuickMood(raw); err == nil {
		l, v := q.Canonical()
		return l, v, true
	}
	if l, err := mood.ParseLabel(raw); err == nil && l != "" {
		return l, mood.DefaultLevel, true
	}
	return "", 0, false
}

func (s *EditorService) session(userID string) (*editorSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("editor: not mounted: %w", models.ErrNotFound)
	}
	return sess, nil
}

func (s *EditorService) state(sess *editorSession) EditorState {
	d := sess.draft.State()
	return EditorState{
		Draft:     d,
		WordCount: journal.WordCount(d.Content),
		Insight:   sess.panel.Snapshot(),
	}
}

func (s *EditorService) State(userID string) (EditorState, error) {
	sess, err := s.session(userID)
	if err != nil {
		return EditorState{}, err
	}
	return s.state(sess), nil
}

// UpdateState replaces the editor fields. Tags are normalized and the mood
// must come from the vocabulary.
func (s *EditorService) UpdateState(userID string, in EditorInput) (EditorState, error) {
	sess, err := s.session(userID)
	if err != nil {
		return EditorState{}, err
	}
	label, err := mood.ParseLabel(in.Mood)
	if err != nil {
		return EditorState{}, models.NewValidationError("mood", fmt.Sprintf("Unknown mood %q", in.Mood))
	}
	sess.draft.Update(models.Draft{
		Title:   in.Title,
		Content: in.Content,
		Mood:    label,
		Tags:    journal.NormalizeTags(in.Tags),
	})
	return s.state(sess), nil
}

// AddTag reports false when the tag was blank or already present.
func (s *EditorService) AddTag(userID, tag string) (EditorState, bool, error) {
	sess, err := s.session(userID)
	if err != nil {
		return EditorState{}, false, err
	}
	d := sess.draft.State()
	tags, added := journal.AddTag(d.Tags, tag)
	if added {
		d.Tags = tags
		sess.draft.Update(d)
	}
	return s.state(sess), added, nil
}

func (s *EditorService) RemoveTag(userID, tag string) (EditorState, error) {
	sess, err := s.session(userID)
	if err != nil {
		return EditorState{}, err
	}
	d := sess.draft.State()
	d.Tags = journal.RemoveTag(d.Tags, tag)
	sess.draft.Update(d)
	return s.state(sess), nil
}

// RequestInsight analyzes the current content against the mood history.
func (s *EditorService) RequestInsight(ctx context.Context, userID string) (insight.Snapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return insight.Snapshot{}, err
	}
	history, err := s.moodHistory(ctx, userID)
	if err != nil {
		return insight.Snapshot{}, err
	}
	d := sess.draft.State()
	return sess.panel.Request(d.Content, d.Mood, history)
}

func (s *EditorService) Insight(userID string) (insight.Snapshot, error) {
	sess, err := s.session(userID)
	if err != nil {
		return insight.Snapshot{}, err
	}
	return sess.panel.Snapshot(), nil
}

func (s *EditorService) HideInsight(userID string) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}
	sess.panel.Hide()
	return nil
}

// moodHistory returns the most recent saved entries that carry a mood, oldest
// first.
func (s *EditorService) moodHistory(ctx context.Context, userID string) ([]mood.Observation, error) {
	entries, err := s.records.entries(userID).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("editor: history: %w", err)
	}
	withMood := lo.Filter(entries, func(e models.JournalEntry, _ int) bool { return e.Mood != "" })
	if len(withMood) > historySize {
		withMood = withMood[:historySize]
	}
	obs := lo.Map(withMood, func(e models.JournalEntry, _ int) mood.Observation {
		return mood.Observe(e.Date.UTC().Format("Jan 2"), e.Mood, journal.Excerpt(e.Content))
	})
	slices.Reverse(obs)
	return obs, nil
}

// AfterSave clears the draft and the panel once an entry is stored. With no
// editor mounted the draft slot is deleted directly.
func (s *EditorService) AfterSave(ctx context.Context, userID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		if err := s.records.draft(userID).Delete(ctx); err != nil {
			return fmt.Errorf("editor: invalidate draft: %w", err)
		}
		return nil
	}
	sess.panel.Hide()
	return sess.draft.Invalidate(ctx)
}

// Unmount stops the editor of userID. It is a no-op when none is mounted.
func (s *EditorService) Unmount(userID string) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()
	if !ok {
		return
	}
	sess.close()
}

// UnmountAll stops every editor; used on shutdown.
func (s *EditorService) UnmountAll() {
	s.mu.Lock()
	ids := lo.Keys(s.sessions)
	s.mu.Unlock()
	for _, id := range ids {
		s.Unmount(id)
	}
}

func (s *EditorService) Mounted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
