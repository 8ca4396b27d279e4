package engine

import "hotkeyengine/internal/buttontype"

// ModifierPredicate is satisfied iff every button in PressedRequired is
// currently pressed and none in ReleasedRequired is. Empty sets vacuously
// satisfy (spec.md §4.2).
type ModifierPredicate struct {
	PressedRequired  []buttontype.Button
	ReleasedRequired []buttontype.Button
}

// IsSatisfied evaluates the predicate against the current tracker state.
func (p ModifierPredicate) IsSatisfied(tracker *ModifierTracker) bool {
	for _, b := range p.PressedRequired {
		if !tracker.IsPressed(b) {
			return false
		}
	}
	for _, b := range p.ReleasedRequired {
		if tracker.IsPressed(b) {
			return false
		}
	}
	return true
}

// ConditionKind distinguishes the three HotkeyCondition variants of
// spec.md §3.
type ConditionKind int

const (
	ConditionAny ConditionKind = iota
	ConditionModifier
	ConditionActivation
)

// HotkeyCondition gates whether a Hook fires for a matching event.
type HotkeyCondition struct {
	Kind       ConditionKind
	Modifier   ModifierPredicate // used when Kind == ConditionModifier
	Activation *Latch            // used when Kind == ConditionActivation
}

// AnyCondition always fires.
func AnyCondition() HotkeyCondition { return HotkeyCondition{Kind: ConditionAny} }

// ModifierCondition fires iff the given predicate is satisfied.
func ModifierCondition(p ModifierPredicate) HotkeyCondition {
	return HotkeyCondition{Kind: ConditionModifier, Modifier: p}
}

// ActivationCondition fires iff latch is currently set, and resets it as a
// side effect of being evaluated (spec.md §3's HotkeyCondition.Activation).
func ActivationCondition(latch *Latch) HotkeyCondition {
	return HotkeyCondition{Kind: ConditionActivation, Activation: latch}
}

// IsSatisfied evaluates the condition, consulting tracker for the Modifier
// variant and consuming the latch (test-and-clear) for the Activation
// variant.
func (c HotkeyCondition) IsSatisfied(tracker *ModifierTracker) bool {
	switch c.Kind {
	case ConditionAny:
		return true
	case ConditionModifier:
		return c.Modifier.IsSatisfied(tracker)
	case ConditionActivation:
		return c.Activation.TestAndClear()
	default:
		return false
	}
}
