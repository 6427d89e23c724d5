//go:build !ebiten

package ui

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus constructs a stub overlay.
func NewStatus() *Status { return &Status{} }

// Toggle is a no-op in the headless build.
func (s *Status) Toggle() {}

// Draw is a no-op placeholder.
func (s *Status) Draw(any, StatusInfo) {}
