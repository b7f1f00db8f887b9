package vdom

import "strconv"

// IDAllocator hands out node IDs for mounted trees. Each renderer owns one
// allocator so IDs stay unique across successive mounts into the same
// container.
type IDAllocator struct {
	prefix string
	next   int
}

// NewIDAllocator creates an allocator whose IDs start with the given prefix.
func NewIDAllocator(prefix string) *IDAllocator {
	return &IDAllocator{prefix: prefix}
}

// Assign walks the tree and gives every element node an ID. Text and raw
// nodes are addressed through their parent element and get no ID of their
// own. Nodes that already carry an ID keep it.
func (a *IDAllocator) Assign(root *VNode) {
	if root == nil {
		return
	}
	if root.Kind == KindElement && root.ID == "" {
		root.ID = a.prefix + strconv.Itoa(a.next)
		a.next++
	}
	for _, child := range root.Children {
		a.Assign(child)
	}
}
