package cursor

// Advance moves the index one element forward. It is a no-op at the end.
func (c *Cursor[T]) Advance() {
	if len(c.after) > 0 {
		c.before = append(c.before, c.popAfter())
	}
}

// AdvanceBy moves the index n elements forward, stopping at the end.
func (c *Cursor[T]) AdvanceBy(n int) {
	for ; n > 0 && len(c.after) > 0; n-- {
		c.before = append(c.before, c.popAfter())
	}
}

// AdvanceByStepping moves the index n*step elements forward.
func (c *Cursor[T]) AdvanceByStepping(n, step int) {
	if total, ok := stride(n, step); ok {
		c.AdvanceBy(total)
	}
}

// AdvanceTo moves the index forward to the absolute position index.
// Targets behind the current index are ignored.
func (c *Cursor[T]) AdvanceTo(index int) {
	if index > len(c.before) {
		c.AdvanceBy(index - len(c.before))
	}
}

// AdvanceToEnd moves the index past the last live element.
func (c *Cursor[T]) AdvanceToEnd() {
	c.AdvanceBy(len(c.after))
}

// Rewind moves the index one element back. It is a no-op at the beginning.
// Consumed elements are not restored.
func (c *Cursor[T]) Rewind() {
	if len(c.before) > 0 {
		c.after = append(c.after, c.popBefore())
	}
}

// RewindBy moves the index n elements back, stopping at 0.
func (c *Cursor[T]) RewindBy(n int) {
	for ; n > 0 && len(c.before) > 0; n-- {
		c.after = append(c.after, c.popBefore())
	}
}

// RewindByStepping moves the index n*step elements back.
func (c *Cursor[T]) RewindByStepping(n, step int) {
	if total, ok := stride(n, step); ok {
		c.RewindBy(total)
	}
}

// RewindTo moves the index back to the absolute position index.
// Targets ahead of the current index are ignored; negative targets mean 0.
func (c *Cursor[T]) RewindTo(index int) {
	index = max(index, 0)
	if index < len(c.before) {
		c.RewindBy(len(c.before) - index)
	}
}

// RewindToBeginning moves the index to 0.
func (c *Cursor[T]) RewindToBeginning() {
	c.RewindBy(len(c.before))
}
