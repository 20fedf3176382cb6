package cursor

// Window describes the lookbehind/lookahead the caller expects to use.
// The bounds are sizing hints for the internal buffers, they are not enforced:
// any offset inside the live sequence can be peeked.
type Window struct {
	Behind int
	Ahead  int
}

// DefaultWindow is the window the lexer runs with unless configured otherwise.
var DefaultWindow = Window{Behind: 8, Ahead: 16}

func (w Window) normalized() Window {
	if w.Behind < 0 {
		w.Behind = 0
	}
	if w.Ahead < 0 {
		w.Ahead = 0
	}
	return w
}

// Cursor is a position-tracking, bidirectional peekable sequence with
// consume/undo history.
//
// Storage is a gap buffer: elements before the index live in `before` in
// sequence order, elements at and after the index live in `after` in reverse
// order (the current element is the last one). Moving the index, eating and
// restoring at the index are therefore O(1) transfers between slices.
type Cursor[T any] struct {
	before  []T
	after   []T // reversed: after[len(after)-1] is the element at the index
	history []T
	window  Window
}

// New creates a cursor over data using DefaultWindow.
// The cursor copies data; the caller keeps ownership of its slice.
func New[T any](data []T) *Cursor[T] {
	return NewWithWindow(data, DefaultWindow)
}

// NewWithWindow creates a cursor over data with the given window hints.
func NewWithWindow[T any](data []T, w Window) *Cursor[T] {
	w = w.normalized()
	after := make([]T, len(data))
	for i, v := range data {
		after[len(data)-1-i] = v
	}
	return &Cursor[T]{
		before:  make([]T, 0, max(w.Behind, 1)),
		after:   after,
		history: make([]T, 0, w.Behind+w.Ahead),
		window:  w,
	}
}

// Window returns the window hints the cursor was created with.
func (c *Cursor[T]) Window() Window { return c.window }

// Index returns the current position inside the live sequence.
func (c *Cursor[T]) Index() int { return len(c.before) }

// Len returns the length of the live sequence.
func (c *Cursor[T]) Len() int { return len(c.before) + len(c.after) }

// Remaining returns how many live elements are at or after the index.
func (c *Cursor[T]) Remaining() int { return len(c.after) }

// Consumed returns the number of elements held in history.
func (c *Cursor[T]) Consumed() int { return len(c.history) }

// EOF reports whether no live element is left at or after the index.
func (c *Cursor[T]) EOF() bool { return len(c.after) == 0 }

// Live returns a copy of the live sequence in order.
func (c *Cursor[T]) Live() []T {
	out := make([]T, 0, c.Len())
	out = append(out, c.before...)
	for i := len(c.after) - 1; i >= 0; i-- {
		out = append(out, c.after[i])
	}
	return out
}

// History returns a copy of the consumed elements in consumption order.
func (c *Cursor[T]) History() []T {
	out := make([]T, len(c.history))
	copy(out, c.history)
	return out
}

// stride returns n*step for valid arguments.
func stride(n, step int) (int, bool) {
	if n < 0 || step < 1 {
		return 0, false
	}
	return n * step, true
}

// popAfter снимает текущий элемент (тот, что под индексом) с хвоста after.
func (c *Cursor[T]) popAfter() T {
	last := len(c.after) - 1
	v := c.after[last]
	var zero T
	c.after[last] = zero
	c.after = c.after[:last]
	return v
}

func (c *Cursor[T]) popBefore() T {
	last := len(c.before) - 1
	v := c.before[last]
	var zero T
	c.before[last] = zero
	c.before = c.before[:last]
	return v
}
