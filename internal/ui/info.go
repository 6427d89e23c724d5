package ui

// StatusInfo carries the values shown on the status overlay.
type StatusInfo struct {
	Generation int
	Rate       int
	Population int
	Paused     bool
}
