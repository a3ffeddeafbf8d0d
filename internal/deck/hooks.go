package deck

// hookSet holds subscribers for one notification. Hooks run synchronously,
// in registration order, on the goroutine that caused the notification.
type hookSet[T any] struct {
	nextID int
	hooks  []hookEntry[T]
}

type hookEntry[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns its unsubscribe func.
func (h *hookSet[T]) add(fn func(T)) func() {
	h.nextID++
	id := h.nextID
	h.hooks = append(h.hooks, hookEntry[T]{id: id, fn: fn})
	return func() {
		for i, e := range h.hooks {
			if e.id == id {
				h.hooks = append(h.hooks[:i:i], h.hooks[i+1:]...)
				return
			}
		}
	}
}

func (h *hookSet[T]) emit(v T) {
	for _, e := range h.hooks {
		e.fn(v)
	}
}
