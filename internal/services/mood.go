package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const MsgMoodRequired = "Please select a mood"

// MoodCheckInput is a check-in as submitted. Zero levels mean the default.
type MoodCheckInput struct {
	Mood    string   `json:"mood"`
	Value   int      `json:"value"`
	Energy  int      `json:"energy"`
	Factors []string `json:"factors"`
}

// Prefill is the mood check form state derived from a mood handoff.
type Prefill struct {
	Mood  mood.Label `json:"mood,omitempty"`
	Value int        `json:"value"`
	Found bool       `json:"found"`
}

type MoodService struct {
	records  records
	handoff  *HandoffService
	clock    clockwork.Clock
	notifier notify.Notifier
	log      *zap.Logger
}

func NewMoodService(store *recordstore.Store, handoff *HandoffService, clock clockwork.Clock, notifier notify.Notifier, log *zap.Logger) *MoodService {
	return &MoodService{
		records:  records{root: store},
		handoff:  handoff,
		clock:    clock,
		notifier: notifier,
		log:      log.Named("mood"),
	}
}

// SaveCheck validates and prepends a mood check.
func (s *MoodService) SaveCheck(ctx context.Context, userID string, in MoodCheckInput) (models.MoodCheck, error) {
	check, err := s.newCheck(in)
	if err != nil {
		return models.MoodCheck{}, err
	}
	if err := s.records.moodChecks(userID).AppendFront(ctx, check); err != nil {
		return models.MoodCheck{}, fmt.Errorf("mood: save: %w", err)
	}

	s.log.Info("mood check saved", zap.String("user_id", userID), zap.String("mood", string(check.Mood.Type)))
	s.notifier.Notify(userID, notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Mood check-in saved",
		Description: "Your mood has been recorded",
	})
	return check, nil
}

func (s *MoodService) newCheck(in MoodCheckInput) (models.MoodCheck, error) {
	label, _, ok := resolveMood(in.Mood)
	if !ok {
		if strings.TrimSpace(in.Mood) == "" {
			return models.MoodCheck{}, models.NewValidationError("mood", MsgMoodRequired)
		}
		return models.MoodCheck{}, models.NewValidationError("mood", fmt.Sprintf("Unknown mood %q", in.Mood))
	}
	value, err := level("value", "Mood level", in.Value)
	if err != nil {
		return models.MoodCheck{}, err
	}
	energy, err := level("energy", "Energy level", in.Energy)
	if err != nil {
		return models.MoodCheck{}, err
	}

	factors := make([]mood.Factor, 0, len(in.Factors))
	for _, raw := range lo.Uniq(lo.Map(in.Factors, func(f string, _ int) string { return strings.ToLower(strings.TrimSpace(f)) })) {
		f := mood.Factor(raw)
		if !f.Known() {
			return models.MoodCheck{}, models.NewValidationError("factors", fmt.Sprintf("Unknown factor %q", raw))
		}
		factors = append(factors, f)
	}

	return models.MoodCheck{
		Mood:    models.MoodReading{Type: label, Value: value},
		Energy:  energy,
		Factors: factors,
		Date:    s.clock.Now().UTC(),
	}, nil
}

func level(field, name string, v int) (int, error) {
	if v == 0 {
		return mood.DefaultLevel, nil
	}
	if !mood.ValidLevel(v) {
		return 0, models.NewValidationError(field, fmt.Sprintf("%s must be between %d and %d", name, mood.MinLevel, mood.MaxLevel))
	}
	return v, nil
}

func (s *MoodService) ListChecks(ctx context.Context, userID string) ([]models.MoodCheck, error) {
	checks, err := s.records.moodChecks(userID).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("mood: list: %w", err)
	}
	return checks, nil
}

// Quick records a dashboard quick mood as a handoff for the next editor or
// mood check.
func (s *MoodService) Quick(ctx context.Context, userID, raw string) (mood.QuickMood, error) {
	q, err := mood.ParseQuickMood(raw)
	if err != nil {
		return "", models.NewValidationError("mood", fmt.Sprintf("Unknown mood %q", raw))
	}
	if err := s.handoff.OfferMood(ctx, userID, string(q)); err != nil {
		return "", err
	}

	s.notifier.Notify(userID, notify.Notification{
		Kind:        notify.KindSuccess,
		Title:       "Mood recorded: " + string(q),
		Description: "Your mood has been logged for today",
	})
	s.notifier.Notify(userID, notify.Notification{
		Kind:        notify.KindInfo,
		Title:       "Want to journal about your mood?",
		Description: "Click 'Write Now' to start journaling",
	})
	return q, nil
}

// Prefill consumes the mood handoff. Without one the form starts at the
// default level and no mood.
func (s *MoodService) Prefill(ctx context.Context, userID string) (Prefill, error) {
	raw, ok, err := s.handoff.TakeMood(ctx, userID)
	if err != nil {
		return Prefill{}, fmt.Errorf("mood: prefill: %w", err)
	}
	if !ok {
		return Prefill{Value: mood.DefaultLevel}, nil
	}
	label, value, ok := resolveMood(raw)
	if !ok {
		s.log.Warn("ignoring unknown mood handoff", zap.String("user_id", userID), zap.String("mood", raw))
		return Prefill{Value: mood.DefaultLevel}, nil
	}
	return Prefill{Mood: label, Value: value, Found: true}, nil
}
