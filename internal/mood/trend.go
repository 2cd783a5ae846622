package mood

import "github.com/samber/lo"

// Trend bands for an average mood value.
const (
	BandVeryPositive = "Very Positive"
	BandPositive     = "Positive"
	BandNeutral      = "Neutral"
	BandNegative     = "Negative"
	BandVeryNegative = "Very Negative"
)

// Comparison of the current observation against the window average.
type Comparison string

const (
	MorePositive Comparison = "more positive than recent average"
	MoreNegative Comparison = "more negative than recent average"
	Consistent   Comparison = "consistent with recent patterns"
)

// comparisonThreshold is the distance from the mean that counts as a change.
const comparisonThreshold = 0.5

// Observation is one point of the trend line.
type Observation struct {
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
	Label   Label   `json:"label"`
	Snippet string  `json:"snippet"`
}

// Observe builds an observation whose value comes from the label scale.
func Observe(date string, l Label, snippet string) Observation {
	l = l.OrNeutral()
	return Observation{Date: date, Value: l.Value(), Label: l, Snippet: snippet}
}

type Trend struct {
	Average    float64       `json:"average"`
	Band       string        `json:"band"`
	Current    Observation   `json:"current"`
	Difference float64       `json:"difference"`
	Comparison Comparison    `json:"comparison"`
	Message    string        `json:"message"`
	Series     []Observation `json:"series"`
}

// Band classifies an average into one of five buckets.
func Band(avg float64) string {
	switch {
	case avg >= 4.5:
		return BandVeryPositive
	case avg >= 3.5:
		return BandPositive
	case avg >= 2.5:
		return BandNeutral
	case avg >= 1.5:
		return BandNegative
	default:
		return BandVeryNegative
	}
}

func Compare(current, avg float64) Comparison {
	diff := current - avg
	switch {
	case diff > comparisonThreshold:
		return MorePositive
	case diff < -comparisonThreshold:
		return MoreNegative
	default:
		return Consistent
	}
}

// Summarize aggregates an ordered window whose last element is the current
// observation. It reports false for an empty window.
func Summarize(window []Observation) (Trend, bool) {
	if len(window) == 0 {
		return Trend{}, false
	}
	avg := lo.SumBy(window, func(o Observation) float64 { return o.Value }) / float64(len(window))
	current := window[len(window)-1]
	cmp := Compare(current.Value, avg)

	return Trend{
		Average:    avg,
		Band:       Band(avg),
		Current:    current,
		Difference: current.Value - avg,
		Comparison: cmp,
		Message:    "Your mood today is " + string(cmp) + ".",
		Series:     append([]Observation(nil), window...),
	}, true
}

// Pattern is the weekly pattern sentence shown next to an insight, keyed on the
// current mood value.
func Pattern(value float64) string {
	switch {
	case value > 3:
		return "Based on your journal entries, your mood has been generally positive over the past week. " +
			"You've maintained higher emotional states consistently, which suggests good emotional resilience."
	case value > 2:
		return "Based on your journal entries, your mood has been relatively neutral over the past week. " +
			"Your emotional states have been balanced, with minor fluctuations throughout the week."
	default:
		return "Based on your journal entries, your mood has been somewhat challenging over the past week. " +
			"There have been some emotional challenges, but your journaling practice is an excellent tool for processing these feelings."
	}
}
