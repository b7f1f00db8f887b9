package vdom

// Diff compares two node trees and returns the patches needed to transform
// prev into next. Both trees must already carry node IDs (see AssignIDs);
// IDs are copied from prev onto matching next nodes so a later Diff against
// next targets the live tree.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	parentID := ""
	if prev != nil {
		parentID = prev.ID
	}
	diff(prev, next, parentID, 0, 1, &patches)
	return patches
}

// diff walks matching positions. index and siblings describe prev's slot in
// its parent so ID-less nodes can be addressed positionally.
func diff(prev, next *VNode, parentID string, index, siblings int, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Insertion is handled by the parent via InsertNode.
	if prev == nil {
		return
	}

	if next == nil {
		*patches = append(*patches, Patch{Op: PatchRemoveNode, ID: prev.ID})
		return
	}

	if prev.Kind != next.Kind {
		replaceNode(prev, next, parentID, index, patches)
		return
	}

	switch prev.Kind {
	case KindText, KindRaw:
		diffText(prev, next, parentID, index, siblings, patches)
	case KindElement:
		diffElement(prev, next, patches)
	case KindFragment:
		next.ID = prev.ID
		diffChildren(prev, next, parentID, patches)
	}
}

// replaceNode targets the old node by ID when it has one. Text and raw nodes
// carry no ID, so their replacement goes through the parent by position.
func replaceNode(prev, next *VNode, parentID string, index int, patches *[]Patch) {
	if prev.ID != "" {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, ID: prev.ID, Node: next})
		return
	}
	if parentID == "" {
		return
	}
	*patches = append(*patches, Patch{Op: PatchReplaceNode, ParentID: parentID, Index: index, Node: next})
}

// diffText handles both plain text and raw nodes, neither of which carries an
// ID. A sole text child rewrites the parent's content; a text child with
// siblings is addressed by position so the sibling elements survive.
func diffText(prev, next *VNode, parentID string, index, siblings int, patches *[]Patch) {
	next.ID = prev.ID
	if prev.Text == next.Text {
		return
	}
	if parentID == "" {
		return
	}
	if prev.Kind == KindRaw {
		replaceNode(prev, next, parentID, index, patches)
		return
	}
	if siblings == 1 {
		*patches = append(*patches, Patch{Op: PatchSetText, ID: parentID, Value: next.Text})
		return
	}
	*patches = append(*patches, Patch{Op: PatchSetTextAt, ParentID: parentID, Index: index, Value: next.Text})
}

func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Tag != next.Tag {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, ID: prev.ID, Node: next})
		return
	}

	next.ID = prev.ID
	diffAttrs(prev, next, patches)
	diffChildren(prev, next, prev.ID, patches)
}

func diffAttrs(prev, next *VNode, patches *[]Patch) {
	for key, prevVal := range prev.Attrs {
		nextVal, ok := next.Attrs[key]
		if !ok {
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, ID: prev.ID, Key: key})
		} else if prevVal != nextVal {
			*patches = append(*patches, Patch{Op: PatchSetAttr, ID: prev.ID, Key: key, Value: nextVal})
		}
	}
	for key, nextVal := range next.Attrs {
		if _, ok := prev.Attrs[key]; !ok {
			*patches = append(*patches, Patch{Op: PatchSetAttr, ID: prev.ID, Key: key, Value: nextVal})
		}
	}
}

func diffChildren(prev, next *VNode, parentID string, patches *[]Patch) {
	if hasKeys(prev.Children) || hasKeys(next.Children) {
		diffKeyedChildren(prev, prev.Children, next.Children, parentID, patches)
		return
	}

	maxLen := len(prev.Children)
	if len(next.Children) > maxLen {
		maxLen = len(next.Children)
	}
	for i := 0; i < maxLen; i++ {
		var prevChild, nextChild *VNode
		if i < len(prev.Children) {
			prevChild = prev.Children[i]
		}
		if i < len(next.Children) {
			nextChild = next.Children[i]
		}

		switch {
		case prevChild == nil && nextChild != nil:
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: prev.ID,
				Index:    i,
				Node:     nextChild,
			})
		case prevChild != nil && nextChild == nil:
			*patches = append(*patches, Patch{Op: PatchRemoveNode, ID: prevChild.ID})
		default:
			diff(prevChild, nextChild, parentID, i, maxLen, patches)
		}
	}
}

// diffKeyedChildren matches children by key so reordering produces moves
// instead of rewrites.
func diffKeyedChildren(parent *VNode, prev, next []*VNode, parentID string, patches *[]Patch) {
	prevByKey := make(map[string]int, len(prev))
	for i, child := range prev {
		if key := childKey(child); key != "" {
			prevByKey[key] = i
		}
	}

	matched := make(map[int]bool, len(prev))
	for nextIdx, nextChild := range next {
		key := childKey(nextChild)
		prevIdx, ok := prevByKey[key]
		if key == "" || !ok {
			*patches = append(*patches, Patch{
				Op:       PatchInsertNode,
				ParentID: parent.ID,
				Index:    nextIdx,
				Node:     nextChild,
			})
			continue
		}

		matched[prevIdx] = true
		prevChild := prev[prevIdx]
		if prevIdx != nextIdx {
			*patches = append(*patches, Patch{
				Op:       PatchMoveNode,
				ID:       prevChild.ID,
				ParentID: parent.ID,
				Index:    nextIdx,
			})
		}
		diff(prevChild, nextChild, parentID, nextIdx, len(next), patches)
	}

	for i, prevChild := range prev {
		if !matched[i] {
			*patches = append(*patches, Patch{Op: PatchRemoveNode, ID: prevChild.ID})
		}
	}
}

func childKey(node *VNode) string {
	if node == nil {
		return ""
	}
	return node.Key
}

func hasKeys(children []*VNode) bool {
	for _, child := range children {
		if childKey(child) != "" {
			return true
		}
	}
	return false
}
