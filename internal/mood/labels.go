// Package mood holds the canonical mood vocabulary and the trend aggregation
// built on top of it.
package mood

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label is a canonical mood name. The zero value means "no mood selected".
type Label string

const (
	Happy      Label = "Happy"
	Excited    Label = "Excited"
	Inspired   Label = "Inspired"
	Grateful   Label = "Grateful"
	Energetic  Label = "Energetic"
	Calm       Label = "Calm"
	Reflective Label = "Reflective"
	Neutral    Label = "Neutral"
	Tired      Label = "Tired"
	Anxious    Label = "Anxious"
	Sad        Label = "Sad"
)

// DefaultValue is the scalar used for unknown or missing labels.
const DefaultValue = 2.0

// Labels lists the vocabulary from most to least positive.
var Labels = []Label{Happy, Excited, Inspired, Grateful, Energetic, Calm, Reflective, Neutral, Tired, Anxious, Sad}

var scale = map[Label]float64{
	Happy:      5,
	Excited:    4.5,
	Inspired:   4.5,
	Grateful:   4,
	Energetic:  4,
	Calm:       3,
	Reflective: 2.5,
	Neutral:    2,
	Tired:      1.5,
	Anxious:    1,
	Sad:        0.5,
}

// positive is the label set behind the "moodPositive" journal filter.
var positive = []Label{Happy, Calm, Inspired, Grateful}

// ParseLabel normalizes s ("  happy " -> Happy). Empty input yields the zero Label.
func ParseLabel(s string) (Label, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	l := Label(cases.Title(language.English).String(s))
	if !l.Known() {
		return "", fmt.Errorf("mood: unknown label %q", s)
	}
	return l, nil
}

func (l Label) Known() bool {
	_, ok := scale[l]
	return ok
}

// Value maps the label onto the 0.5..5 scale; unknown labels score DefaultValue.
func (l Label) Value() float64 {
	if v, ok := scale[l]; ok {
		return v
	}
	return DefaultValue
}

func (l Label) IsPositive() bool {
	return lo.Contains(positive, l)
}

// OrNeutral substitutes Neutral for the empty label.
func (l Label) OrNeutral() Label {
	if l == "" {
		return Neutral
	}
	return l
}
