package swipe

// Emitter publishes values to zero or more subscribers. Publishing without
// subscribers does nothing.
type Emitter[T any] struct {
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it again.
func (e *Emitter[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Observed reports whether at least one subscriber is registered.
func (e *Emitter[T]) Observed() bool {
	return len(e.subs) > 0
}

// Emit calls every subscriber in registration order.
func (e *Emitter[T]) Emit(v T) {
	if len(e.subs) == 0 {
		return
	}
	// Subscribers may unsubscribe while being called.
	subs := append([]subscription[T](nil), e.subs...)
	for _, s := range subs {
		s.fn(v)
	}
}
