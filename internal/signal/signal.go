// Package signal provides single-threaded event signals modeled after
// wl_signal: listeners are invoked synchronously, in connection order,
// on the goroutine that emits.
package signal

// Listener is one connected callback. Remove is idempotent; removing a
// listener during emission prevents it from seeing the current event
// only if it has not fired yet.
type Listener[T any] struct {
	sig *Signal[T]
	fn  func(T)
}

// Remove disconnects the listener from its signal. Safe to call more
// than once and safe to call from inside an emission.
func (l *Listener[T]) Remove() {
	if l == nil || l.sig == nil {
		return
	}
	sig := l.sig
	l.sig = nil
	l.fn = nil
	for i, cand := range sig.listeners {
		if cand == l {
			sig.listeners = append(sig.listeners[:i], sig.listeners[i+1:]...)
			break
		}
	}
}

// Signal is an ordered set of listeners. The zero value is ready to use.
// Signals provide no locking: connect, emit and remove must all happen
// on the owning event-loop goroutine.
type Signal[T any] struct {
	listeners []*Listener[T]
}

// Connect appends a listener. It will be invoked after all listeners
// connected before it.
func (s *Signal[T]) Connect(fn func(T)) *Listener[T] {
	l := &Listener[T]{sig: s, fn: fn}
	s.listeners = append(s.listeners, l)
	return l
}

// Emit invokes every connected listener in connection order. Listeners
// connected during emission do not see the current event.
func (s *Signal[T]) Emit(v T) {
	// Snapshot so listeners may remove themselves (or each other)
	// while we iterate.
	snapshot := make([]*Listener[T], len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if l.fn != nil {
			l.fn(v)
		}
	}
}

// Len reports the number of connected listeners.
func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
