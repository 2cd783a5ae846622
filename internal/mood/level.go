package mood

import "github.com/samber/lo"

const (
	MinLevel     = 1
	MaxLevel     = 5
	DefaultLevel = 3
)

// LevelLabel describes a 1..5 slider value.
func LevelLabel(v int) string {
	switch {
	case v <= 1:
		return "Very Low"
	case v <= 2:
		return "Low"
	case v <= 3:
		return "Moderate"
	case v <= 4:
		return "High"
	default:
		return "Very High"
	}
}

func ValidLevel(v int) bool {
	return v >= MinLevel && v <= MaxLevel
}

// Factor is a tag attached to a mood check.
type Factor string

const (
	Productive   Factor = "productive"
	Unproductive Factor = "unproductive"
	Energized    Factor = "energetic"
	Drained      Factor = "tired"
	Stressed     Factor = "stressed"
)

var Factors = []Factor{Productive, Unproductive, Energized, Drained, Stressed}

func (f Factor) Known() bool {
	return lo.Contains(Factors, f)
}
