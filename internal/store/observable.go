package store

import "sync"

type listener struct {
	id uint64
	fn func()
}

// Observable holds a value and notifies subscribers after every mutation.
// State is committed before any listener runs, and listeners run outside the
// lock on a snapshot of the subscriber list, so they may read, mutate or
// unsubscribe re-entrantly.
type Observable[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners []listener
	nextID    uint64
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current snapshot. Callers must treat it as read-only.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is safe.
func (o *Observable[T]) Subscribe(fn func()) func() {
	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.listeners = append(o.listeners, listener{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, l := range o.listeners {
			if l.id == id {
				next := make([]listener, 0, len(o.listeners)-1)
				next = append(next, o.listeners[:i]...)
				o.listeners = append(next, o.listeners[i+1:]...)
				return
			}
		}
	}
}

// Set replaces the value and notifies every subscriber once.
func (o *Observable[T]) Set(value T) {
	o.Update(func(T) (T, bool) { return value, true })
}

// Update applies fn to the current value. When fn reports no change nothing
// is stored and nobody is notified.
func (o *Observable[T]) Update(fn func(current T) (T, bool)) bool {
	o.mu.Lock()
	next, changed := fn(o.value)
	if !changed {
		o.mu.Unlock()
		return false
	}
	o.value = next
	pending := o.listeners
	o.mu.Unlock()

	for _, l := range pending {
		l.fn()
	}
	return true
}

// Len returns the number of active subscribers.
func (o *Observable[T]) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}
