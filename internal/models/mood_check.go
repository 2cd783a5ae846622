package models

import (
	"time"

	"github.com/AnshRaj112/neurosphere-backend/internal/mood"
)

type MoodReading struct {
	Type  mood.Label `json:"type"`
	Value int        `json:"value"`
}

// MoodCheck is a standalone mood, energy and factor observation.
type MoodCheck struct {
	Mood    MoodReading   `json:"mood"`
	Energy  int           `json:"energy"`
	Factors []mood.Factor `json:"factors"`
	Date    time.Time     `json:"date"`
}
