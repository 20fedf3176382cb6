package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) []rune { return []rune(s) }

func TestPeekDoesNotAdvance(t *testing.T) {
	c := New(runes("abc"))

	v, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', v)

	v, ok = c.PeekAt(2)
	require.True(t, ok)
	assert.Equal(t, 'c', v)

	_, ok = c.PeekAt(3)
	assert.False(t, ok)
	_, ok = c.PeekAt(-1)
	assert.False(t, ok)

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 3, c.Remaining())
}

func TestPeekManyAllOrNothing(t *testing.T) {
	c := New(runes("abcd"))
	c.Advance()

	got, ok := c.PeekMany(3)
	require.True(t, ok)
	assert.Equal(t, runes("bcd"), got)

	got, ok = c.PeekMany(4)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, 1, c.Index(), "failed batch peek must not move the cursor")
}

func TestPeekManyStepping(t *testing.T) {
	c := New(runes("abcdef"))

	got, ok := c.PeekManyStepping(3, 2)
	require.True(t, ok)
	assert.Equal(t, runes("ace"), got)

	_, ok = c.PeekManyStepping(4, 2)
	assert.False(t, ok)
	_, ok = c.PeekManyStepping(1, 0)
	assert.False(t, ok, "zero step is rejected")
}

func TestPeekBehind(t *testing.T) {
	c := New(runes("abcdef"))

	_, ok := c.PeekBehind()
	assert.False(t, ok)

	c.AdvanceBy(4)
	v, ok := c.PeekBehind()
	require.True(t, ok)
	assert.Equal(t, 'd', v)

	got, ok := c.PeekBehindMany(2)
	require.True(t, ok)
	assert.Equal(t, runes("cd"), got)

	got, ok = c.PeekBehindManyStepping(2, 2)
	require.True(t, ok)
	assert.Equal(t, runes("ac"), got)

	_, ok = c.PeekBehindMany(5)
	assert.False(t, ok)
}

func TestAdvanceAndRewindSaturate(t *testing.T) {
	c := New(runes("abc"))

	c.AdvanceBy(10)
	assert.Equal(t, 3, c.Index())
	assert.True(t, c.EOF())
	c.Advance()
	assert.Equal(t, 3, c.Index())

	c.Rewind()
	assert.Equal(t, 2, c.Index())
	c.RewindBy(10)
	assert.Equal(t, 0, c.Index())
	c.Rewind()
	assert.Equal(t, 0, c.Index())

	c.AdvanceByStepping(1, 2)
	assert.Equal(t, 2, c.Index())
	c.RewindByStepping(1, 2)
	assert.Equal(t, 0, c.Index())
}

func TestAdvanceToRewindTo(t *testing.T) {
	c := New(runes("abcdef"))

	c.AdvanceTo(4)
	assert.Equal(t, 4, c.Index())
	c.AdvanceTo(2) // назад AdvanceTo не ходит
	assert.Equal(t, 4, c.Index())

	c.RewindTo(1)
	assert.Equal(t, 1, c.Index())
	c.RewindTo(3)
	assert.Equal(t, 1, c.Index())

	c.AdvanceToEnd()
	assert.Equal(t, 6, c.Index())
	c.RewindToBeginning()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, runes("abcdef"), c.Live(), "movement never changes the live sequence")
}

func TestEatMovesToHistory(t *testing.T) {
	c := New(runes("abc"))
	c.Advance()

	v, ok := c.Eat()
	require.True(t, ok)
	assert.Equal(t, 'b', v)
	assert.Equal(t, runes("ac"), c.Live())
	assert.Equal(t, runes("b"), c.History())
	assert.Equal(t, 1, c.Index())
}

func TestEatManyIsAtomic(t *testing.T) {
	c := New(runes("abc"))

	got, ok := c.EatMany(4)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, runes("abc"), c.Live())
	assert.Equal(t, 0, c.Consumed())

	got, ok = c.EatMany(2)
	require.True(t, ok)
	assert.Equal(t, runes("ab"), got)
	assert.Equal(t, runes("c"), c.Live())
}

func TestEatManySteppingRoundTrip(t *testing.T) {
	c := New(runes("abcdefg"))
	c.Advance()

	got, ok := c.EatManyStepping(2, 3)
	require.True(t, ok)
	assert.Equal(t, runes("be"), got)
	assert.Equal(t, runes("acdfg"), c.Live())

	back, ok := c.RestoreManyStepping(2, 3)
	require.True(t, ok)
	assert.Equal(t, runes("be"), back)
	assert.Equal(t, runes("abcdefg"), c.Live())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 0, c.Consumed())
}

func TestEatRestoreRoundTrip(t *testing.T) {
	inputs := []string{"", "a", "hello world", "line1\nline2"}
	for _, in := range inputs {
		for start := 0; start <= len(in); start++ {
			for n := 0; start+n <= len(in); n++ {
				c := New(runes(in))
				c.AdvanceTo(start)
				wantLive := c.Live()
				wantIdx := c.Index()

				for range n {
					_, ok := c.Eat()
					require.True(t, ok)
				}
				for range n {
					_, ok := c.Restore()
					require.True(t, ok)
				}

				assert.Equal(t, wantLive, c.Live(), "input %q start %d n %d", in, start, n)
				assert.Equal(t, wantIdx, c.Index(), "input %q start %d n %d", in, start, n)
			}
		}
	}
}

func TestRestoreManyOrder(t *testing.T) {
	c := New(runes("xyz"))
	_, ok := c.EatMany(3)
	require.True(t, ok)
	assert.True(t, c.EOF())

	got, ok := c.RestoreMany(2)
	require.True(t, ok)
	assert.Equal(t, runes("yz"), got)
	assert.Equal(t, runes("yz"), c.Live())

	_, ok = c.RestoreMany(2)
	assert.False(t, ok, "only one element left in history")
	v, ok := c.Restore()
	require.True(t, ok)
	assert.Equal(t, 'x', v)
	assert.Equal(t, runes("xyz"), c.Live())
}

func TestClearHistoryForfeitsRestore(t *testing.T) {
	c := New(runes("ab"))
	c.Eat()
	c.ClearHistory()

	_, ok := c.Restore()
	assert.False(t, ok)
	assert.Equal(t, runes("b"), c.Live())

	c.Eat()
	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Consumed())
	assert.True(t, c.EOF())
}

func TestClearDataKeepsHistory(t *testing.T) {
	c := New(runes("abc"))
	c.Eat()
	c.Advance()
	c.ClearData()

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, runes("a"), c.History())

	v, ok := c.Restore()
	require.True(t, ok)
	assert.Equal(t, 'a', v)
}

func TestAllConsumesLazily(t *testing.T) {
	c := New([]int{1, 2, 3, 4})

	var seen []int
	for v := range c.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, []int{3, 4}, c.Live())

	v, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, 4, v)
	_, ok = c.Next()
	assert.False(t, ok)
}

func TestWindowIsAdvisory(t *testing.T) {
	c := NewWithWindow(runes("abcdefghij"), Window{Behind: 1, Ahead: 2})
	assert.Equal(t, Window{Behind: 1, Ahead: 2}, c.Window())

	// peeking past the configured lookahead is allowed
	v, ok := c.PeekAt(9)
	require.True(t, ok)
	assert.Equal(t, 'j', v)

	c = NewWithWindow(runes("a"), Window{Behind: -3, Ahead: -1})
	assert.Equal(t, Window{}, c.Window())
}

func TestNewCopiesInput(t *testing.T) {
	data := runes("ab")
	c := New(data)
	data[0] = 'z'

	v, _ := c.Peek()
	assert.Equal(t, 'a', v)
}
