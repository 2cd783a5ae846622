package mood

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// QuickMood is the three-choice vocabulary of the dashboard picker.
type QuickMood string

const (
	Great   QuickMood = "Great"
	Okay    QuickMood = "Okay"
	NotGood QuickMood = "Not Good"
)

func ParseQuickMood(s string) (QuickMood, error) {
	q := QuickMood(cases.Title(language.English).String(strings.Join(strings.Fields(s), " ")))
	switch q {
	case Great, Okay, NotGood:
		return q, nil
	}
	return "", fmt.Errorf("mood: unknown quick mood %q", s)
}

// Canonical maps a quick mood onto the detailed vocabulary and the 1..5 mood level.
// Every QuickMood value has a mapping; the zero value maps to Neutral.
func (q QuickMood) Canonical() (Label, int) {
	switch q {
	case Great:
		return Happy, 5
	case NotGood:
		return Sad, 1
	default:
		return Neutral, 3
	}
}
