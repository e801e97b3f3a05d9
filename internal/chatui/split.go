package chatui

// Split layout constants, in terminal cells.
const (
	// MinChatWidth is the narrowest the chat pane may get.
	MinChatWidth = 36
	// MinMainWidth is the narrowest the main (page) pane may get.
	MinMainWidth = 60
	// SplitBreakpoint is the terminal width below which the split view is
	// unavailable and the chat takes the full width.
	SplitBreakpoint = 100
	// DividerWidth is the width of the divider column between the panes.
	DividerWidth = 1
	// SplitStep is the keyboard resize step for [ and ].
	SplitStep = 2
)

// splitLayout tracks the split view: whether it is open, the chat pane width,
// and the transient mouse-drag state. The root model owns the open/closed
// flag; nothing else toggles it.
type splitLayout struct {
	open      bool
	chatWidth int
	dragging  bool
}

// clampChatWidth keeps the chat pane inside [MinChatWidth, total-MinMainWidth].
func clampChatWidth(width, total int) int {
	max := total - MinMainWidth - DividerWidth
	if width > max {
		width = max
	}
	if width < MinChatWidth {
		width = MinChatWidth
	}
	return width
}

// available reports whether the terminal is wide enough for a split view.
func (s *splitLayout) available(total int) bool {
	return total >= SplitBreakpoint
}

// active reports whether the split view should render, given the current
// terminal width. Narrow terminals force full-width chat without clearing
// the open flag, so widening the terminal restores the split.
func (s *splitLayout) active(total int) bool {
	return s.open && s.available(total)
}

// toggle opens or closes the split view. Opening seeds the chat width at
// roughly a third of the terminal, clamped.
func (s *splitLayout) toggle(total int) {
	if s.open {
		s.open = false
		s.dragging = false
		return
	}
	if !s.available(total) {
		return
	}
	s.open = true
	if s.chatWidth == 0 {
		s.chatWidth = total / 3
	}
	s.chatWidth = clampChatWidth(s.chatWidth, total)
}

// resize moves the divider by delta cells, clamped.
func (s *splitLayout) resize(delta, total int) {
	if !s.active(total) {
		return
	}
	s.chatWidth = clampChatWidth(s.chatWidth+delta, total)
}

// dividerColumn returns the x position of the divider.
func (s *splitLayout) dividerColumn() int {
	return s.chatWidth
}

// startDrag begins a divider drag if x is on the divider column.
func (s *splitLayout) startDrag(x, total int) bool {
	if !s.active(total) {
		return false
	}
	if x == s.dividerColumn() {
		s.dragging = true
	}
	return s.dragging
}

// drag moves the divider to x while a drag is in progress.
func (s *splitLayout) drag(x, total int) {
	if !s.dragging || !s.active(total) {
		return
	}
	s.chatWidth = clampChatWidth(x, total)
}

// endDrag finishes a divider drag.
func (s *splitLayout) endDrag() {
	s.dragging = false
}

// mainWidth returns the width of the main pane for the given terminal width.
func (s *splitLayout) mainWidth(total int) int {
	return total - s.chatWidth - DividerWidth
}
