package cursor

// Peek returns the element at the index without moving.
func (c *Cursor[T]) Peek() (T, bool) {
	return c.PeekAt(0)
}

// PeekAt returns the element i positions after the index.
func (c *Cursor[T]) PeekAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(c.after) {
		return zero, false
	}
	return c.after[len(c.after)-1-i], true
}

// PeekMany returns exactly n elements starting at the index, or ok=false if
// fewer than n remain.
func (c *Cursor[T]) PeekMany(n int) ([]T, bool) {
	return c.PeekManyStepping(n, 1)
}

// PeekManyStepping returns the elements at offsets 0, step, ..., (n-1)*step.
// It requires n*step remaining elements; otherwise it returns ok=false.
func (c *Cursor[T]) PeekManyStepping(n, step int) ([]T, bool) {
	total, ok := stride(n, step)
	if !ok || total > len(c.after) {
		return nil, false
	}
	out := make([]T, n)
	for k := range n {
		out[k] = c.after[len(c.after)-1-k*step]
	}
	return out, true
}

// PeekBehind returns the element right before the index.
func (c *Cursor[T]) PeekBehind() (T, bool) {
	var zero T
	if len(c.before) == 0 {
		return zero, false
	}
	return c.before[len(c.before)-1], true
}

// PeekBehindMany returns the n elements preceding the index in sequence order.
func (c *Cursor[T]) PeekBehindMany(n int) ([]T, bool) {
	return c.PeekBehindManyStepping(n, 1)
}

// PeekBehindManyStepping returns n elements taken every step positions,
// starting n*step elements before the index, in sequence order.
func (c *Cursor[T]) PeekBehindManyStepping(n, step int) ([]T, bool) {
	total, ok := stride(n, step)
	if !ok || total > len(c.before) {
		return nil, false
	}
	base := len(c.before) - total
	out := make([]T, n)
	for k := range n {
		out[k] = c.before[base+k*step]
	}
	return out, true
}
