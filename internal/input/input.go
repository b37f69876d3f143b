// Package input defines the keyboard contract shared by the frame loop and
// the hosts that feed it.
package input

// Key bytes the frame loop reacts to.
const (
	Space byte = ' '
	Quit  byte = 'q'
	LF    byte = 0x0a
	CR    byte = 0x0d
)

// Source is a non-blocking keyboard.
type Source interface {
	// Pending reports whether ReadKey would return a key immediately.
	Pending() bool
	// ReadKey consumes the oldest pending key. It returns 0 when nothing
	// is pending.
	ReadKey() byte
}

// Queue is a FIFO Source that hosts push translated key presses into.
type Queue struct {
	keys []byte
}

// Push appends keys in arrival order.
func (q *Queue) Push(keys ...byte) {
	q.keys = append(q.keys, keys...)
}

// Pending reports whether any key is queued.
func (q *Queue) Pending() bool { return len(q.keys) > 0 }

// ReadKey pops the oldest key.
func (q *Queue) ReadKey() byte {
	if len(q.keys) == 0 {
		return 0
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k
}

// Len returns the number of queued keys.
func (q *Queue) Len() int { return len(q.keys) }

// Reset drops every queued key.
func (q *Queue) Reset() { q.keys = q.keys[:0] }
