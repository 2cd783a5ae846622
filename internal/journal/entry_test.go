package journal

import (
	"errors"
	"testing"
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/models"
	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var saveTime = time.Date(2024, 3, 14, 18, 45, 0, 0, time.FixedZone("IST", 5*3600+1800))

func TestNewEntry(t *testing.T) {
	e, err := NewEntry(EntryInput{
		Title:   "Evening walk",
		Content: "one two three",
		Mood:    "calm",
		Tags:    []string{"Nature", " nature ", "", "Walk"},
	}, saveTime)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Evening walk", e.Title)
	assert.Equal(t, mood.Calm, e.Mood)
	assert.Equal(t, []string{"nature", "walk"}, e.Tags)
	assert.Equal(t, 3, e.WordCount)
	assert.Equal(t, time.UTC, e.Date.Location())
	assert.True(t, e.Date.Equal(saveTime))
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		e, err := NewEntry(EntryInput{Title: "t", Content: "c"}, saveTime)
		require.NoError(t, err)
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestNewEntry_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    EntryInput
		field string
		msg   string
	}{
		{"missing title", EntryInput{Title: "  ", Content: "body"}, "title", MsgTitleRequired},
		{"title checked first", EntryInput{}, "title", MsgTitleRequired},
		{"blank content", EntryInput{Title: "t", Content: "\n\t "}, "content", MsgContentRequired},
		{"unknown mood", EntryInput{Title: "t", Content: "c", Mood: "Bored"}, "mood", `Unknown mood "Bored"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEntry(tt.in, saveTime)
			require.Error(t, err)
			assert.True(t, errors.Is(err, models.ErrValidation))

			var ve *models.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.msg, ve.Message)
		})
	}
}

func TestNewEntry_NoMoodIsAllowed(t *testing.T) {
	e, err := NewEntry(EntryInput{Title: "t", Content: "c"}, saveTime)
	require.NoError(t, err)
	assert.Equal(t, mood.Label(""), e.Mood)
	assert.Equal(t, []string{}, e.Tags)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("  "))
	assert.Equal(t, 2, WordCount("\tline\n\nnext  "))
}

func TestAddTag_CaseFolded(t *testing.T) {
	tags, added := AddTag(nil, "Mindful")
	assert.True(t, added)
	tags, added = AddTag(tags, "mindful")
	assert.False(t, added)
	tags, added = AddTag(tags, "   ")
	assert.False(t, added)

	assert.Equal(t, []string{"mindful"}, tags)
}

func TestRemoveTag(t *testing.T) {
	tags := []string{"growth", "routine"}
	assert.Equal(t, []string{"routine"}, RemoveTag(tags, " Growth"))
	assert.Equal(t, []string{"growth", "routine"}, RemoveTag(tags, "missing"))
}
