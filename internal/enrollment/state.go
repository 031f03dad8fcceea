package enrollment

// Phase enumerates the workflow checks in the order every enrollment attempt
// runs them. The ordering is load-bearing: cheap local checks come before
// store round trips, and the capacity check short-circuits before the
// conflict and ban lookups.
type Phase int

const (
	PhaseIdentity Phase = iota
	PhaseWindow
	PhaseArena
	PhaseCapacity
	PhaseConflict
	PhasePayment
	PhaseBan
	PhaseCommit

	// Terminal and paused states.
	PhaseConfirmed
	PhaseAwaitingChoice
	PhaseRejected
)

var phaseNames = map[Phase]string{
	PhaseIdentity:       "identity",
	PhaseWindow:         "window",
	PhaseArena:          "arena",
	PhaseCapacity:       "capacity",
	PhaseConflict:       "conflict",
	PhasePayment:        "payment",
	PhaseBan:            "ban",
	PhaseCommit:         "commit",
	PhaseConfirmed:      "confirmed",
	PhaseAwaitingChoice: "awaiting_choice",
	PhaseRejected:       "rejected",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Machine tracks one enrollment attempt through its checks. A failed check
// is terminal and records the rejection; the payment check may pause the
// attempt until the user picks a wellness program.
type Machine struct {
	phase Phase
	err   error
}

func NewMachine() *Machine {
	return &Machine{phase: PhaseIdentity}
}

func (m *Machine) Phase() Phase { return m.phase }

// Err is the recorded rejection, nil unless the machine is in PhaseRejected.
func (m *Machine) Err() error { return m.err }

func (m *Machine) Terminal() bool {
	return m.phase == PhaseConfirmed || m.phase == PhaseRejected
}

// Pass moves to the next check. Passing the commit check confirms the
// attempt. A no-op on terminal or paused machines.
func (m *Machine) Pass() {
	if m.Terminal() || m.phase == PhaseAwaitingChoice {
		return
	}
	if m.phase == PhaseCommit {
		m.phase = PhaseConfirmed
		return
	}
	m.phase++
}

// Fail rejects the attempt with the given reason. Terminal machines keep
// their first rejection.
func (m *Machine) Fail(err error) {
	if m.Terminal() {
		return
	}
	m.phase = PhaseRejected
	m.err = err
}

// Pause suspends the attempt waiting for a wellness program choice. Only the
// payment check may pause.
func (m *Machine) Pause() {
	if m.phase == PhasePayment {
		m.phase = PhaseAwaitingChoice
	}
}

// Resume continues a paused attempt at the ban check; the caller supplies
// the chosen program out of band.
func (m *Machine) Resume() {
	if m.phase == PhaseAwaitingChoice {
		m.phase = PhaseBan
	}
}

// Outcome is the metrics label for the attempt's final state.
func (m *Machine) Outcome() string {
	switch m.phase {
	case PhaseConfirmed:
		return "confirmed"
	case PhaseAwaitingChoice:
		return "awaiting_choice"
	case PhaseRejected:
		return "rejected"
	default:
		return "in_progress"
	}
}
