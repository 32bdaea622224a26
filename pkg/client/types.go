// Package client is the Go counterpart of the mobile app's data layer:
// an HTTP client for the bias-analysis API plus a local history replica
// that survives restarts through a JSON snapshot file. The replica is a
// cache for offline browsing, never the source of truth; clearing or
// removing entries locally does not touch server rows.
package client

// Finding mirrors the server's bias finding wire shape.
type Finding struct {
	ID         string  `json:"id"`
	Percentage float64 `json:"percentage"`
}

// Record mirrors the server's analysis record wire shape.
type Record struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Results   []Finding `json:"results"`
	Summary   string    `json:"summary"`
	Timestamp int64     `json:"timestamp"`
}

// Question is one generated clarifying question.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Answer pairs a question with the chosen option; an empty ChosenOption
// means the user skipped it.
type Answer struct {
	Question     string `json:"question"`
	ChosenOption string `json:"chosenOption"`
}
