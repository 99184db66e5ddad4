// Package editor drives color edits on one icon: it owns the current markup,
// the scanned color inventory, the icon's persistent profile and the edit
// state machine, and exposes the operations the interactive surface raises.
package editor

import "fmt"

// State is the edit state of an open icon.
type State string

const (
	// StateBaseline: no edits since the icon was loaded.
	StateBaseline State = "baseline"
	// StateCustom: ad hoc color edits that are not a saved variant.
	StateCustom State = "custom"
	// StateApplied: the icon shows a saved variant.
	StateApplied State = "applied_variant"
	// StateFilterPending: filter settings have been entered but not yet
	// committed to the colors.
	StateFilterPending State = "filter_pending"
)

// Event is an edit transition trigger raised by the interactive surface.
type Event string

const (
	ColorEdited      Event = "color_edited"
	FilterEntered    Event = "filter_entered"
	FilterCommitted  Event = "filter_committed"
	VariantApplied   Event = "variant_applied"
	VariantSaved     Event = "variant_saved"
	BaselineRestored Event = "baseline_restored"
)

// transitionTable defines all valid state transitions.
// Key: current state → event → new state.
var transitionTable = map[State]map[Event]State{
	StateBaseline: {
		ColorEdited:      StateCustom,
		FilterEntered:    StateFilterPending,
		VariantApplied:   StateApplied,
		VariantSaved:     StateApplied,
		BaselineRestored: StateBaseline,
	},
	StateCustom: {
		ColorEdited:      StateCustom,
		FilterEntered:    StateFilterPending,
		VariantApplied:   StateApplied,
		VariantSaved:     StateApplied,
		BaselineRestored: StateBaseline,
	},
	StateFilterPending: {
		FilterEntered:    StateFilterPending, // live adjustment before commit
		FilterCommitted:  StateCustom,
		ColorEdited:      StateCustom, // a manual edit abandons the pending filter
		VariantApplied:   StateApplied,
		VariantSaved:     StateApplied,
		BaselineRestored: StateBaseline,
	},
	StateApplied: {
		ColorEdited:      StateCustom,
		FilterEntered:    StateFilterPending,
		VariantApplied:   StateApplied,
		VariantSaved:     StateApplied,
		BaselineRestored: StateBaseline,
	},
}

// Transition returns the new state for the given current state and event.
// Returns an error if the transition is not valid.
func Transition(current State, event Event) (State, error) {
	events, ok := transitionTable[current]
	if !ok {
		return "", fmt.Errorf("no transitions defined for state %q", current)
	}
	next, ok := events[event]
	if !ok {
		return "", fmt.Errorf("invalid transition: %q + %q", current, event)
	}
	return next, nil
}
