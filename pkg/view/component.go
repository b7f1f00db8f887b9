package view

import "github.com/wayfind-dev/wayfind/pkg/vdom"

// Component is anything that can render to a virtual node tree.
type Component interface {
	Render() *vdom.VNode
}

// Unmounter is implemented by components that hold resources (tickers,
// subscriptions, watches) established while the view was mounted. Unmount is
// called exactly once when the view is replaced or the router shuts down.
type Unmounter interface {
	Unmount()
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *vdom.VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *vdom.VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *vdom.VNode) Component {
	return &FuncComponent{render: render}
}

// Static creates a component that always renders the given tree.
func Static(node *vdom.VNode) Component {
	return Func(func() *vdom.VNode { return node })
}
