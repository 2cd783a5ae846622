package insight

import "github.com/AnshRaj112/neurosphere-backend/internal/mood"

const reflectiveInsight = "Based on your entry, I notice a reflective tone. You seem to be processing thoughts carefully. " +
	"Consider exploring how these feelings connect to your values and long-term goals."

var insights = map[mood.Label]string{
	mood.Happy: "Your entry radiates warmth and joy. Notice what contributed to this feeling today " +
		"so you can return to it on harder days.",
	mood.Excited: "There is a lot of energy in your writing. Channel this excitement into one concrete " +
		"next step while the momentum is high.",
	mood.Inspired: "Your entry carries a sense of possibility. Capture the ideas that sparked this " +
		"inspiration before they fade.",
	mood.Grateful: "Gratitude shines through your words. Reflecting on what you appreciate is linked " +
		"to lasting wellbeing, so keep noticing these moments.",
	mood.Energetic: "You sound energized today. Consider how rest and movement both played a part, " +
		"and plan to protect that balance.",
	mood.Calm: "Your writing has a calm, grounded quality. Take note of the routines that helped " +
		"you reach this steady state.",
	mood.Tired: "Your entry suggests you are running low on energy. Be gentle with yourself and " +
		"consider what small rest you can make room for.",
	mood.Anxious: "I notice some worry in your words. Naming what feels uncertain is a strong first " +
		"step; try separating what you can influence from what you cannot.",
	mood.Sad: "Your entry carries some heaviness. Writing it down is a healthy way to process it, " +
		"and reaching out to someone you trust may help too.",
}

// Text returns the canned insight for a mood label. Labels without their own
// text, including no mood, get the reflective insight.
func Text(l mood.Label) string {
	if s, ok := insights[l]; ok {
		return s
	}
	return reflectiveInsight
}
