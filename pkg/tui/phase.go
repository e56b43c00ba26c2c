package tui

// Phase represents the coarse lifecycle state of the overlay
type Phase string

const (
	// PhaseInitializing runs start hooks and opens the chat connection
	PhaseInitializing Phase = "initializing"

	// PhaseRunning is the normal countdown/chat display state
	PhaseRunning Phase = "running"

	// PhaseFinishing hides the elapsed timer; chat and keys still work
	PhaseFinishing Phase = "finishing"

	// PhaseTerminated runs exit hooks and ends the program
	PhaseTerminated Phase = "terminated"
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// Active reports whether the overlay still accepts input events.
func (p Phase) Active() bool {
	return p != PhaseTerminated
}
