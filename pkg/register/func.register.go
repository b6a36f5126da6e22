package register

import "sync"

type funcRegister struct {
	handlers map[any][]any
	locker   sync.Mutex
}

var fr *funcRegister

func init() {
	fr = &funcRegister{
		handlers: make(map[any][]any),
	}
}

type Handler[T any] func(T)

// RegisterFunc queues handler under key, typically from a package init.
func RegisterFunc[T any](key any, handler Handler[T]) {
	fr.locker.Lock()
	fr.handlers[key] = append(fr.handlers[key], handler)
	fr.locker.Unlock()
}

// ResolveFuncHandlers returns the handlers registered under key for type T, in registration order.
func ResolveFuncHandlers[T any](key any) []Handler[T] {
	fr.locker.Lock()
	defer fr.locker.Unlock()
	var res []Handler[T]
	for _, h := range fr.handlers[key] {
		if f, ok := h.(Handler[T]); ok {
			res = append(res, f)
		}
	}
	return res
}
