package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/recordstore"
)

// HandoffService passes a choice from one view to the next. A value offered
// here is owned by the first consumer that takes it and is cleared on take.
type HandoffService struct {
	records records
}

func NewHandoffService(store *recordstore.Store) *HandoffService {
	return &HandoffService{records: records{root: store}}
}

func (h *HandoffService) OfferPrompt(ctx context.Context, userID, prompt string) error {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return models.NewValidationError("prompt", "Please choose a prompt")
	}
	if err := h.records.selectedPrompt(userID).Put(ctx, prompt); err != nil {
		return fmt.Errorf("handoff: offer prompt: %w", err)
	}
	return nil
}

func (h *HandoffService) TakePrompt(ctx context.Context, userID string) (string, bool, error) {
	return h.records.selectedPrompt(userID).Take(ctx)
}

// OfferMood stores a raw mood choice, either a quick mood or a label.
func (h *HandoffService) OfferMood(ctx context.Context, userID, choice string) error {
	if err := h.records.selectedMood(userID).Put(ctx, choice); err != nil {
		return fmt.Errorf("handoff: offer mood: %w", err)
	}
	return nil
}

func (h *HandoffService) TakeMood(ctx context.Context, userID string) (string, bool, error) {
	return h.records.selectedMood(userID).Take(ctx)
}
