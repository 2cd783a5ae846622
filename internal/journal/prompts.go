package journal

import "math/rand/v2"

// Prompts are the reflection prompts offered on the dashboard.
var Prompts = []string{
	"What made you feel most alive today?",
	"Describe a moment of peace you experienced recently.",
	"What's a challenge you're currently facing, and what might it be teaching you?",
	"Write about something you're grateful for today.",
	"If your emotions had colors, what color are you feeling now and why?",
	"What's one small thing you could do today to nurture yourself?",
}

// PromptAt returns the prompt at i, wrapping out-of-range indexes.
func PromptAt(i int) string {
	n := len(Prompts)
	return Prompts[((i%n)+n)%n]
}

// NextPrompt picks a random prompt index different from current. intn is
// rand.IntN when nil.
func NextPrompt(current int, intn func(int) int) int {
	if intn == nil {
		intn = rand.IntN
	}
	n := len(Prompts)
	if n < 2 {
		return 0
	}
	if current < 0 || current >= n {
		return intn(n)
	}
	// draw from the n-1 other slots so no retry loop is needed
	i := intn(n - 1)
	if i >= current {
		i++
	}
	return i
}
