package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	l, err := ParseLabel("  happy ")
	require.NoError(t, err)
	assert.Equal(t, Happy, l)

	l, err = ParseLabel("REFLECTIVE")
	require.NoError(t, err)
	assert.Equal(t, Reflective, l)

	l, err = ParseLabel("")
	require.NoError(t, err)
	assert.Equal(t, Label(""), l)

	_, err = ParseLabel("bored")
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	assert.Equal(t, 5.0, Happy.Value())
	assert.Equal(t, 4.5, Excited.Value())
	assert.Equal(t, 4.0, Grateful.Value())
	assert.Equal(t, 3.0, Calm.Value())
	assert.Equal(t, 2.5, Reflective.Value())
	assert.Equal(t, 2.0, Neutral.Value())
	assert.Equal(t, 1.5, Tired.Value())
	assert.Equal(t, 1.0, Anxious.Value())
	assert.Equal(t, 0.5, Sad.Value())
	for _, l := range Labels {
		assert.True(t, l.Known(), l)
	}
}

func TestPositiveSet(t *testing.T) {
	for _, l := range []Label{Happy, Calm, Inspired, Grateful} {
		assert.True(t, l.IsPositive(), l)
	}
	assert.True(t, Calm.IsPositive())
	assert.False(t, Excited.IsPositive())
	assert.False(t, Label("").IsPositive())
}

func TestQuickMood_TotalMapping(t *testing.T) {
	tests := []struct {
		in    string
		label Label
		level int
	}{
		{"Great", Happy, 5},
		{"okay", Neutral, 3},
		{"not  good", Sad, 1},
	}
	for _, tt := range tests {
		q, err := ParseQuickMood(tt.in)
		require.NoError(t, err, tt.in)
		l, v := q.Canonical()
		assert.Equal(t, tt.label, l, tt.in)
		assert.Equal(t, tt.level, v, tt.in)
	}

	for _, q := range []QuickMood{Great, Okay, NotGood} {
		l, v := q.Canonical()
		assert.True(t, l.Known())
		assert.True(t, ValidLevel(v))
	}

	_, err := ParseQuickMood("meh")
	assert.Error(t, err)

	l, v := QuickMood("").Canonical()
	assert.Equal(t, Neutral, l)
	assert.Equal(t, 3, v)
}

func TestLevelLabel(t *testing.T) {
	assert.Equal(t, "Very Low", LevelLabel(1))
	assert.Equal(t, "Low", LevelLabel(2))
	assert.Equal(t, "Moderate", LevelLabel(3))
	assert.Equal(t, "High", LevelLabel(4))
	assert.Equal(t, "Very High", LevelLabel(5))
}

func TestFactors(t *testing.T) {
	assert.True(t, Factor("stressed").Known())
	assert.False(t, Factor("sleepy").Known())
	assert.Len(t, Factors, 5)
}
