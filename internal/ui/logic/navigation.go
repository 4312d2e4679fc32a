package logic

// Navigator handles the cursor and viewport of a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetMaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) GetMaxIndex() int {
	return n.totalItems - 1
}

// SetSelectedIndex clamps index to the list, scrolls it into view and returns
// the resulting cursor and offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index > n.GetMaxIndex() {
		index = n.GetMaxIndex()
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the cursor by delta rows
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// Page shifts the cursor by one viewport, keeping a row of overlap
func (n *Navigator) Page(direction int) (int, int) {
	pageSize := n.viewportHeight - 2
	if pageSize < 1 {
		pageSize = 1
	}
	return n.Move(direction * pageSize)
}

// VisibleRange returns the half-open row range [start, end) to draw
func (n *Navigator) VisibleRange() (int, int) {
	start := n.viewportOffset
	end := start + n.EffectiveHeight()
	if end > n.totalItems {
		end = n.totalItems
	}
	if start > end {
		start = end
	}
	return start, end
}

// EffectiveHeight is the viewport height minus the rows taken by the
// "more above" and "more below" indicators
func (n *Navigator) EffectiveHeight() int {
	needsTop := n.viewportOffset > 0
	needsBottom := n.viewportOffset+n.viewportHeight < n.totalItems

	// With a top indicator the last rows may no longer fit
	if !needsBottom && needsTop && n.totalItems-n.viewportOffset > n.viewportHeight-1 {
		needsBottom = true
	}

	h := n.viewportHeight
	if needsTop {
		h--
	}
	if needsBottom {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	effectiveHeight := n.EffectiveHeight()
	if n.selectedIndex >= n.viewportOffset+effectiveHeight {
		n.viewportOffset = n.selectedIndex - effectiveHeight + 1
		// Scrolling down may have added the top indicator
		effectiveHeight = n.EffectiveHeight()
		if n.selectedIndex >= n.viewportOffset+effectiveHeight {
			n.viewportOffset = n.selectedIndex - effectiveHeight + 1
		}
	}

	maxOffset := n.totalItems - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
