package monitor

// InputPoller yields at most one key per tick.
type InputPoller interface {
	Poll() Key
}

// KeyQueue buffers keys that arrive between ticks. Poll hands them out one
// per tick, oldest first. When full, new keys are dropped, except Quit,
// which replaces the newest queued key so it is never lost.
type KeyQueue struct {
	keys     []Key
	capacity int
}

// NewKeyQueue returns a queue holding up to capacity keys.
func NewKeyQueue(capacity int) *KeyQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &KeyQueue{keys: make([]Key, 0, capacity), capacity: capacity}
}

// Push queues k and reports whether it was kept.
func (q *KeyQueue) Push(k Key) bool {
	if k == KeyNone {
		return false
	}
	if len(q.keys) < q.capacity {
		q.keys = append(q.keys, k)
		return true
	}
	if k == KeyQuit {
		q.keys[len(q.keys)-1] = KeyQuit
		return true
	}
	return false
}

// Poll returns the oldest queued key, or KeyNone.
func (q *KeyQueue) Poll() Key {
	if len(q.keys) == 0 {
		return KeyNone
	}
	k := q.keys[0]
	q.keys = append(q.keys[:0], q.keys[1:]...)
	return k
}

// Len returns the number of queued keys.
func (q *KeyQueue) Len() int {
	return len(q.keys)
}
