package input

// Action is a semantic intent produced by the input classifier
type Action int

const (
	ActionNone Action = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionRotateLeft
	ActionRotateRight
	ActionSplint
	ActionJump
	ActionTrigger
	ActionQuickMoveForward
	ActionQuickMoveBackward
	ActionQuickMoveLeft
	ActionQuickMoveRight
	ActionQuickTurnLeft
	ActionQuickTurnRight

	ActionCount
)

var actionNames = [ActionCount]string{
	"none",
	"move-forward", "move-backward", "move-left", "move-right",
	"rotate-left", "rotate-right", "splint", "jump", "trigger",
	"quick-move-forward", "quick-move-backward", "quick-move-left", "quick-move-right",
	"quick-turn-left", "quick-turn-right",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsUrgent reports whether a is a quick-move or quick-turn variant
func (a Action) IsUrgent() bool {
	return a >= ActionQuickMoveForward && a < ActionCount
}

// Normal returns the continuous action a quick variant stands for.
// Any other action is returned unchanged.
func (a Action) Normal() Action {
	if !a.IsUrgent() {
		return a
	}
	return a - ActionQuickMoveForward + ActionMoveForward
}

// ActionFrame is the classifier output for one tick.
// Each action appears at most once with an intensity in [0,1].
// Urgency names the single quick variant claimed this tick, or ActionNone.
type ActionFrame struct {
	values  [ActionCount]float64
	present uint32

	Urgency Action
}

// Set records a with intensity v. Setting an action twice keeps the larger value.
func (f *ActionFrame) Set(a Action, v float64) {
	if a <= ActionNone || a >= ActionCount {
		return
	}
	v = clamp(v, 0, 1)
	if f.Has(a) && f.values[a] >= v {
		return
	}
	f.values[a] = v
	f.present |= 1 << a
}

// Claim records a as the tick's urgency action.
// Returns false, leaving the frame unchanged, when another action already holds it.
func (f *ActionFrame) Claim(a Action) bool {
	if f.Urgency != ActionNone || !a.IsUrgent() {
		return false
	}
	f.Urgency = a
	f.Set(a, 1)
	return true
}

// Has reports whether a is present
func (f ActionFrame) Has(a Action) bool {
	if a <= ActionNone || a >= ActionCount {
		return false
	}
	return f.present&(1<<a) != 0
}

// Get returns the intensity of a and whether it is present
func (f ActionFrame) Get(a Action) (float64, bool) {
	if !f.Has(a) {
		return 0, false
	}
	return f.values[a], true
}

// Len returns the number of present actions
func (f ActionFrame) Len() int {
	n := 0
	for v := f.present; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Empty reports whether no action is present
func (f ActionFrame) Empty() bool {
	return f.present == 0
}

// Actions lists the present actions in enum order
func (f ActionFrame) Actions() []Action {
	out := make([]Action, 0, f.Len())
	for a := ActionNone + 1; a < ActionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Reset clears the frame
func (f *ActionFrame) Reset() {
	*f = ActionFrame{}
}

// LookInput is the camera-facing part of one classified tick
type LookInput struct {
	DX, DY     float64 // Stick look deltas, already scaled by stick speed
	WheelSteps int     // Net wheel-pitch steps (+up, -down)

	LockPressed        bool // rsb rising edge
	RecenterReleased   bool // rsb release: unlock and recenter
	WheelResetReleased bool // y release: ramp wheel pitch back to 0
}

// Active reports whether the look stick moved beyond eps
func (l LookInput) Active(eps float64) bool {
	return abs(l.DX) > eps || abs(l.DY) > eps
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
