package vdom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <a>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without a wrapper element
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a virtual node describing one piece of the mounted tree.
// Nodes are plain data: nothing in this package touches the real container.
type VNode struct {
	Kind     Kind              // Node type
	Tag      string            // Element tag name (e.g., "div")
	Attrs    map[string]string // Attributes
	Children []*VNode          // Child nodes
	Key      string            // Reconciliation key for keyed lists
	Text     string            // For KindText and KindRaw
	ID       string            // Node ID assigned during mount (patch target)
}

// Attr is a single attribute passed to element constructors.
type Attr struct {
	Key   string
	Value string
}

// IsZero reports whether this is an empty attribute.
func (a Attr) IsZero() bool {
	return a.Key == ""
}

// Clone returns a deep copy of the node. The renderer clones handler output
// before mounting so later mutations by the handler cannot leak into the
// mounted tree.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	clone := *v
	if v.Attrs != nil {
		clone.Attrs = make(map[string]string, len(v.Attrs))
		for k, val := range v.Attrs {
			clone.Attrs[k] = val
		}
	}
	if v.Children != nil {
		clone.Children = make([]*VNode, len(v.Children))
		for i, c := range v.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return &clone
}
