package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element. Passed to another
// constructor, its children are spliced into the parent's child list, so only
// the root of a rendered tree is ever a fragment.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}
	appendChildren(node, children)
	return node
}

// appendChildren normalizes constructor arguments into child nodes.
func appendChildren(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case *VNode:
			appendChild(node, v)
		case []*VNode:
			for _, c := range v {
				appendChild(node, c)
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case fmt.Stringer:
			node.Children = append(node.Children, Text(v.String()))
		}
	}
}

// appendChild splices fragments into the parent so patches can always address
// their content through a real enclosing element.
func appendChild(node *VNode, c *VNode) {
	if c == nil {
		return
	}
	if c.Kind == KindFragment {
		node.Children = append(node.Children, c.Children...)
		return
	}
	node.Children = append(node.Children, c)
}
