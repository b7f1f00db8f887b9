package view

import "sync"

// Handle represents one mounted view: the tree currently occupying the
// container plus the component's teardown, if it has one.
type Handle struct {
	comp    Component
	once    sync.Once
	cleanup func()
}

func newHandle(comp Component) *Handle {
	h := &Handle{comp: comp}
	if u, ok := comp.(Unmounter); ok {
		h.cleanup = u.Unmount
	}
	return h
}

// Component returns the mounted component.
func (h *Handle) Component() Component {
	return h.comp
}

// Release runs the component's teardown. It is safe to call more than once;
// the teardown runs at most once.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.cleanup != nil {
			h.cleanup()
		}
	})
}
