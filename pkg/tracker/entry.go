// Package tracker provides the change-tracking surface that consumes the
// mapping engine's modification verdicts. An Entry holds a property's
// original and current values and moves the entity between lifecycle states
// based on value equality, using the comparer the resolved mapping supplies
// for concurrency token properties.
package tracker

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/Itfly/typemap/pkg/typemap"
)

// EntityState is the lifecycle state of a tracked entity.
type EntityState int

const (
	StateUnchanged EntityState = iota
	StateModified
	StateAdded
	StateDeleted
)

// String returns the string representation of an EntityState.
func (s EntityState) String() string {
	switch s {
	case StateUnchanged:
		return "Unchanged"
	case StateModified:
		return "Modified"
	case StateAdded:
		return "Added"
	case StateDeleted:
		return "Deleted"
	default:
		return fmt.Sprintf("EntityState(%d)", int(s))
	}
}

// Property describes one tracked property.
type Property struct {
	Name string

	// ConcurrencyToken marks the property as a row version whose changes are
	// judged by value equality.
	ConcurrencyToken bool

	// Comparer decides value equality for the property. Concurrency token
	// properties get this from their resolved mapping. Nil falls back to
	// deep equality.
	Comparer typemap.Comparer
}

type propertyEntry struct {
	prop     Property
	original any
	current  any
	modified bool
}

// Entry tracks one entity's property values and lifecycle state. The entry
// serializes access with its own lock; the engine's comparers are pure and
// need none.
type Entry struct {
	mu    sync.Mutex
	state EntityState
	props map[string]*propertyEntry
}

// NewEntry creates an entry in the Unchanged state with every property's
// original and current value unset.
func NewEntry(props ...Property) *Entry {
	e := &Entry{
		state: StateUnchanged,
		props: make(map[string]*propertyEntry, len(props)),
	}
	for _, p := range props {
		e.props[p.Name] = &propertyEntry{prop: p}
	}
	return e
}

// State returns the entity's lifecycle state.
func (e *Entry) State() EntityState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IsModified reports whether the named property is flagged modified.
func (e *Entry) IsModified(name string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pe, err := e.property(name)
	if err != nil {
		return false, err
	}
	return pe.modified, nil
}

// OriginalValue returns the property's original value.
func (e *Entry) OriginalValue(name string) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pe, err := e.property(name)
	if err != nil {
		return nil, err
	}
	return pe.original, nil
}

// CurrentValue returns the property's current value.
func (e *Entry) CurrentValue(name string) (any, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pe, err := e.property(name)
	if err != nil {
		return nil, err
	}
	return pe.current, nil
}

// SetOriginalValue sets the property's original value and re-evaluates the
// property's modification flag. The verdict is the same one a direct
// assignment or a DetectChanges sweep would produce for the same value pair.
func (e *Entry) SetOriginalValue(name string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pe, err := e.property(name)
	if err != nil {
		return err
	}
	pe.original = value
	e.refresh(pe)
	return nil
}

// SetCurrentValue sets the property's current value and re-evaluates the
// property's modification flag. An assignment of an equal value leaves the
// property unflagged and the entity Unchanged even though the assignment
// executed.
func (e *Entry) SetCurrentValue(name string, value any) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	pe, err := e.property(name)
	if err != nil {
		return err
	}
	pe.current = value
	e.refresh(pe)
	return nil
}

// DetectChanges re-evaluates every property's modification flag against its
// original value, then the entity state.
func (e *Entry) DetectChanges() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, pe := range e.props {
		pe.modified = !valuesEqual(pe.prop, pe.original, pe.current)
	}
	e.recomputeState()
}

func (e *Entry) property(name string) (*propertyEntry, error) {
	pe, ok := e.props[name]
	if !ok {
		return nil, fmt.Errorf("unknown property %q", name)
	}
	return pe, nil
}

func (e *Entry) refresh(pe *propertyEntry) {
	pe.modified = !valuesEqual(pe.prop, pe.original, pe.current)
	e.recomputeState()
}

// recomputeState moves the entity between Unchanged and Modified. Added and
// Deleted entities keep their state regardless of property flags.
func (e *Entry) recomputeState() {
	if e.state != StateUnchanged && e.state != StateModified {
		return
	}
	for _, pe := range e.props {
		if pe.modified {
			e.state = StateModified
			return
		}
	}
	e.state = StateUnchanged
}

func valuesEqual(p Property, original, current any) bool {
	if p.Comparer != nil {
		return p.Comparer.Equal(original, current)
	}
	return reflect.DeepEqual(original, current)
}
