package engine

// Phase is the execution phase of one element within a slot.
type Phase int

const (
	Idle Phase = iota
	Running
	Scrubbing
	Completed
	Interrupted
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Scrubbing:
		return "scrubbing"
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	default:
		return "idle"
	}
}

// Direction is the playback direction of a timed run.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// ExecutionState is owned exclusively by the execution driver. Consumers
// of emitted frames never read it.
type ExecutionState struct {
	Phase        Phase
	StartClock   float64
	Direction    Direction
	LastProgress float64
}

// InterruptPolicy governs what happens when a new activation conflicts
// with a Running element.
type InterruptPolicy int

const (
	// Immediate cancels the running animation and restarts from the
	// current emitted values instead of the configured from, avoiding a
	// visual snap.
	Immediate InterruptPolicy = iota

	// PreservePhase restarts with the clock shifted so the eased phase
	// continues instead of re-targeting values.
	PreservePhase
)
