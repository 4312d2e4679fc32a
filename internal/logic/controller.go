package logic

import (
	"fmt"
	"slices"
)

// ViewState says what a listing should currently render.
type ViewState int

const (
	// Uninitialized means nothing has been resolved yet; render a loading placeholder.
	Uninitialized ViewState = iota
	// LoadedEmpty means the source resolved with zero items.
	LoadedEmpty
	// LoadFailed means the source failed; the collection is empty and Err holds the reason.
	LoadFailed
	// LoadedFilteredEmpty means there is data but the filters exclude all of it.
	LoadedFilteredEmpty
	// LoadedShowing means the filtered view has items.
	LoadedShowing
)

func (s ViewState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case LoadedEmpty:
		return "loaded-empty"
	case LoadFailed:
		return "load-failed"
	case LoadedFilteredEmpty:
		return "loaded-filtered-empty"
	case LoadedShowing:
		return "loaded-showing"
	default:
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
}

// Controller owns one browsing session: the source collection, the filter
// state and the derived view. It is not safe for concurrent use; the owner's
// event loop serializes calls.
type Controller[T Item] struct {
	source   []T
	resolved bool
	err      error
	filter   FilterState
	labels   []string
	view     []T
}

// NewController returns a controller in the Uninitialized state.
func NewController[T Item]() *Controller[T] {
	return &Controller[T]{}
}

// Resolve replaces the collection wholesale with the loader's outcome.
// On error the collection is emptied.
func (c *Controller[T]) Resolve(items []T, err error) {
	c.resolved = true
	c.err = err
	if err != nil {
		c.source = nil
	} else {
		c.source = slices.Clone(items)
	}
	c.labels = DeriveLabels(c.source)
	c.recompute()
}

// Reset discards the collection and filters, as on view teardown.
func (c *Controller[T]) Reset() {
	*c = Controller[T]{}
}

// SetQuery replaces the free-text query.
func (c *Controller[T]) SetQuery(q string) {
	c.filter.Query = q
	c.recompute()
}

// SelectLabel replaces the selected label. Selecting the active label again
// leaves it selected.
func (c *Controller[T]) SelectLabel(label string) {
	c.filter.Label = label
	c.recompute()
}

// ClearLabel resets the label selection ("all").
func (c *Controller[T]) ClearLabel() {
	c.filter.Label = ""
	c.recompute()
}

// ClearFilters resets both query and label.
func (c *Controller[T]) ClearFilters() {
	c.filter = FilterState{}
	c.recompute()
}

func (c *Controller[T]) recompute() {
	c.view = Apply(c.source, c.filter)
}

// State derives the current view state.
func (c *Controller[T]) State() ViewState {
	switch {
	case !c.resolved:
		return Uninitialized
	case c.err != nil:
		return LoadFailed
	case len(c.source) == 0:
		return LoadedEmpty
	case len(c.view) == 0:
		return LoadedFilteredEmpty
	default:
		return LoadedShowing
	}
}

// View returns the filtered view.
func (c *Controller[T]) View() []T { return c.view }

// ViewKeys returns the keys of the filtered view in order.
func (c *Controller[T]) ViewKeys() []string {
	keys := make([]string, len(c.view))
	for i, it := range c.view {
		keys[i] = it.Key()
	}
	return keys
}

// Source returns the full collection.
func (c *Controller[T]) Source() []T { return c.source }

// Labels returns the label index of the current collection.
func (c *Controller[T]) Labels() []string { return c.labels }

// Filter returns the current filter state.
func (c *Controller[T]) Filter() FilterState { return c.filter }

// Err returns the loader failure, if any.
func (c *Controller[T]) Err() error { return c.err }

// Lookup finds an item of the collection by key, ignoring filters.
func (c *Controller[T]) Lookup(key string) (T, error) {
	for _, it := range c.source {
		if it.Key() == key {
			return it, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%q: %w", key, ErrNotFound)
}
