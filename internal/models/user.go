package models

import "strings"

// DemoUser is the demo-session marker stored under the user namespace.
type DemoUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	IsDemo bool   `json:"isDemo"`
}

// Session maps a bearer token to a user id.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// Appearance holds the stored theme name and colour mode.
type Appearance struct {
	Theme string `json:"theme"`
	Mode  string `json:"mode"`
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
