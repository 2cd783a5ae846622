package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Unwrap(t *testing.T) {
	err := fmt.Errorf("journal: save: %w", NewValidationError("title", "Please add a title to your journal entry"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "title", ve.Field)
	assert.Equal(t, "Please add a title to your journal entry", ve.Message)
}

func TestDraft_HasWork(t *testing.T) {
	assert.False(t, Draft{}.HasWork())
	assert.False(t, Draft{Title: "  ", Content: "\n\t"}.HasWork())
	assert.True(t, Draft{Title: "Morning"}.HasWork())
	assert.True(t, Draft{Content: "x"}.HasWork())
	assert.False(t, Draft{Tags: []string{"a"}, Mood: "Happy"}.HasWork())
}
