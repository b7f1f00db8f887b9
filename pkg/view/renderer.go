package view

import (
	"fmt"
	"sync"

	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/vdom"
)

// PatchSink receives container mutations produced by the renderer. The live
// session implements it by encoding patches onto the wire; tests use a
// recording fake.
type PatchSink interface {
	ApplyPatches(patches []vdom.Patch) error
}

// Renderer is the sole writer to one mount container. It renders components
// to virtual trees, diffs them against the previously mounted tree, and
// forwards the resulting patches to its sink.
type Renderer struct {
	mu          sync.Mutex
	sink        PatchSink
	ids         *vdom.IDAllocator
	containerID string
	tree        *vdom.VNode // synthetic container root, children = mounted content
	handle      *Handle
}

// NewRenderer creates a renderer bound to the container with the given node
// ID. The container element itself is never created or removed by the
// renderer, only its contents.
func NewRenderer(sink PatchSink, containerID string) *Renderer {
	return &Renderer{
		sink:        sink,
		ids:         vdom.NewIDAllocator(containerID + "."),
		containerID: containerID,
		tree:        containerRoot(containerID, nil),
	}
}

func containerRoot(id string, children []*vdom.VNode) *vdom.VNode {
	return &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      "div",
		ID:       id,
		Children: children,
	}
}

// Mount renders the component and replaces the container's current content
// with the result. The previously mounted view's teardown runs before the
// new content is sent. The returned handle owns the new view's teardown.
func (r *Renderer) Mount(comp Component) (*Handle, error) {
	node, err := render(comp)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var children []*vdom.VNode
	if node != nil {
		if node.Kind == vdom.KindFragment {
			children = node.Children
		} else {
			children = []*vdom.VNode{node}
		}
	}
	next := containerRoot(r.containerID, children)

	patches := vdom.Diff(r.tree, next)
	// Inserted subtrees are new nodes with no IDs yet; the patch slice shares
	// pointers with the next tree, so assigning here covers both.
	r.ids.Assign(next)

	if r.handle != nil {
		r.handle.Release()
	}

	if len(patches) > 0 {
		if err := r.sink.ApplyPatches(patches); err != nil {
			// The old view is already torn down; keep the new tree as current
			// so a reconnect resync starts from it.
			r.tree = next
			r.handle = newHandle(comp)
			return r.handle, errors.Wrap(errors.CodeApplyPatches, errors.CategoryRender, "view: apply patches", err)
		}
	}

	r.tree = next
	r.handle = newHandle(comp)
	return r.handle, nil
}

// Unmount tears down the current view and empties the container.
func (r *Renderer) Unmount() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.handle != nil {
		r.handle.Release()
		r.handle = nil
	}

	next := containerRoot(r.containerID, nil)
	patches := vdom.Diff(r.tree, next)
	r.tree = next
	if len(patches) == 0 {
		return nil
	}
	if err := r.sink.ApplyPatches(patches); err != nil {
		return errors.Wrap(errors.CodeApplyPatches, errors.CategoryRender, "view: apply patches", err)
	}
	return nil
}

// Tree returns the currently mounted container tree. Exposed for resync after
// reconnect and for tests.
func (r *Renderer) Tree() *vdom.VNode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tree
}

// render calls comp.Render with panic recovery so a misbehaving component
// surfaces as a handler failure instead of tearing down the session loop.
func render(comp Component) (node *vdom.VNode, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Wrap(errors.CodeRenderPanic, errors.CategoryRender,
				"view: render panic", fmt.Errorf("%v", rec))
		}
	}()
	if comp == nil {
		return nil, nil
	}
	return comp.Render().Clone(), nil
}
