package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
	"github.com/samber/lo"
)

var (
	Themes = []string{"mindspace", "neuro", "soul", "purple", "blue", "pink"}
	Modes  = []string{"light", "dark"}
)

const (
	DefaultTheme = "mindspace"
	DefaultMode  = "light"
)

type SettingsService struct {
	records records
}

func NewSettingsService(store *recordstore.Store) *SettingsService {
	return &SettingsService{records: records{root: store}}
}

// Appearance returns the stored theme and mode. Missing or unknown values read
// as the defaults.
func (s *SettingsService) Appearance(ctx context.Context, userID string) (models.Appearance, error) {
	theme, _, err := s.records.theme(userID).Get(ctx)
	if err != nil {
		return models.Appearance{}, fmt.Errorf("settings: theme: %w", err)
	}
	mode, _, err := s.records.mode(userID).Get(ctx)
	if err != nil {
		return models.Appearance{}, fmt.Errorf("settings: mode: %w", err)
	}
	if !lo.Contains(Themes, theme) {
		theme = DefaultTheme
	}
	if !lo.Contains(Modes, mode) {
		mode = DefaultMode
	}
	return models.Appearance{Theme: theme, Mode: mode}, nil
}

// SetAppearance stores the non-empty fields of a and returns the result.
func (s *SettingsService) SetAppearance(ctx context.Context, userID string, a models.Appearance) (models.Appearance, error) {
	theme := strings.ToLower(strings.TrimSpace(a.Theme))
	mode := strings.ToLower(strings.TrimSpace(a.Mode))
	if theme != "" && !lo.Contains(Themes, theme) {
		return models.Appearance{}, models.NewValidationError("theme", fmt.Sprintf("Unknown theme %q", a.Theme))
	}
	if mode != "" && !lo.Contains(Modes, mode) {
		return models.Appearance{}, models.NewValidationError("mode", fmt.Sprintf("Unknown mode %q", a.Mode))
	}

	if theme != "" {
		if err := s.records.theme(userID).Put(ctx, theme); err != nil {
			return models.Appearance{}, fmt.Errorf("settings: theme: %w", err)
		}
	}
	if mode != "" {
		if err := s.records.mode(userID).Put(ctx, mode); err != nil {
			return models.Appearance{}, fmt.Errorf("settings: mode: %w", err)
		}
	}
	return s.Appearance(ctx, userID)
}
