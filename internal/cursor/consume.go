package cursor

import "iter"

// Eat removes the element at the index from the live sequence, records it in
// history and returns it.
func (c *Cursor[T]) Eat() (T, bool) {
	var zero T
	if len(c.after) == 0 {
		return zero, false
	}
	v := c.popAfter()
	c.history = append(c.history, v)
	return v, true
}

// EatMany consumes exactly n elements starting at the index.
func (c *Cursor[T]) EatMany(n int) ([]T, bool) {
	return c.EatManyStepping(n, 1)
}

// EatManyStepping consumes the elements at offsets 0, step, ..., (n-1)*step.
// It requires n*step remaining elements and is atomic: on failure nothing is
// consumed.
func (c *Cursor[T]) EatManyStepping(n, step int) ([]T, bool) {
	total, ok := stride(n, step)
	if !ok || total > len(c.after) {
		return nil, false
	}
	eaten := make([]T, 0, n)
	kept := make([]T, 0, total-n)
	for i := range total {
		v := c.popAfter()
		if i%step == 0 {
			eaten = append(eaten, v)
		} else {
			kept = append(kept, v)
		}
	}
	for i := len(kept) - 1; i >= 0; i-- {
		c.after = append(c.after, kept[i])
	}
	c.history = append(c.history, eaten...)
	return eaten, true
}

// Restore undoes the most recent Eat: the last consumed element is put back
// at the index.
func (c *Cursor[T]) Restore() (T, bool) {
	var zero T
	if len(c.history) == 0 {
		return zero, false
	}
	last := len(c.history) - 1
	v := c.history[last]
	c.history[last] = zero
	c.history = c.history[:last]
	c.after = append(c.after, v)
	return v, true
}

// RestoreMany puts the n most recently consumed elements back at the index,
// in the order they were consumed.
func (c *Cursor[T]) RestoreMany(n int) ([]T, bool) {
	return c.RestoreManyStepping(n, 1)
}

// RestoreManyStepping is the inverse of EatManyStepping: the n most recently
// consumed elements are re-inserted at offsets 0, step, ..., (n-1)*step.
// Returned elements are in their original order.
func (c *Cursor[T]) RestoreManyStepping(n, step int) ([]T, bool) {
	if _, ok := stride(n, step); !ok || n > len(c.history) {
		return nil, false
	}
	if n == 0 {
		return []T{}, true
	}
	fill := (n - 1) * (step - 1)
	if fill > len(c.after) {
		return nil, false
	}

	restored := make([]T, n)
	copy(restored, c.history[len(c.history)-n:])
	var zero T
	for i := len(c.history) - n; i < len(c.history); i++ {
		c.history[i] = zero
	}
	c.history = c.history[:len(c.history)-n]

	fillers := make([]T, fill)
	for i := range fill {
		fillers[i] = c.popAfter()
	}
	window := make([]T, 0, n+fill)
	for k, v := range restored {
		window = append(window, v)
		if k < n-1 {
			window = append(window, fillers[k*(step-1):(k+1)*(step-1)]...)
		}
	}
	for i := len(window) - 1; i >= 0; i-- {
		c.after = append(c.after, window[i])
	}
	return restored, true
}

// ClearHistory forgets consumed elements; they can no longer be restored.
func (c *Cursor[T]) ClearHistory() {
	clear(c.history)
	c.history = c.history[:0]
}

// ClearData drops the live sequence and resets the index to 0.
func (c *Cursor[T]) ClearData() {
	clear(c.before)
	clear(c.after)
	c.before = c.before[:0]
	c.after = c.after[:0]
}

// Clear drops both the live sequence and the history.
func (c *Cursor[T]) Clear() {
	c.ClearData()
	c.ClearHistory()
}

// Next consumes and returns the next live element.
func (c *Cursor[T]) Next() (T, bool) {
	return c.Eat()
}

// All yields the remaining elements, consuming each one as it goes.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.Eat()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
