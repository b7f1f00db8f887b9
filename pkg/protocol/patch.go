package protocol

import "github.com/wayfind-dev/wayfind/pkg/vdom"

// WirePatch is the JSON form of one container mutation.
type WirePatch struct {
	Op       string    `json:"op"`
	ID       string    `json:"id,omitempty"`
	Key      string    `json:"key,omitempty"`
	Value    string    `json:"value,omitempty"`
	Node     *WireNode `json:"node,omitempty"`
	Index    int       `json:"index,omitempty"`
	ParentID string    `json:"parent,omitempty"`
}

// WireNode is the JSON form of a virtual subtree, sent with insert and
// replace patches.
type WireNode struct {
	Kind     string            `json:"kind"`
	Tag      string            `json:"tag,omitempty"`
	ID       string            `json:"id,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*WireNode       `json:"children,omitempty"`
}

var opNames = map[vdom.PatchOp]string{
	vdom.PatchSetText:     "setText",
	vdom.PatchSetAttr:     "setAttr",
	vdom.PatchRemoveAttr:  "removeAttr",
	vdom.PatchInsertNode:  "insert",
	vdom.PatchRemoveNode:  "remove",
	vdom.PatchMoveNode:    "move",
	vdom.PatchReplaceNode: "replace",
	vdom.PatchSetTextAt:   "setTextAt",
}

var kindNames = map[vdom.Kind]string{
	vdom.KindElement:  "element",
	vdom.KindText:     "text",
	vdom.KindFragment: "fragment",
	vdom.KindRaw:      "raw",
}

// EncodePatches converts renderer patches to their wire form.
func EncodePatches(patches []vdom.Patch) PatchBatch {
	wire := make([]WirePatch, len(patches))
	for i, p := range patches {
		wire[i] = WirePatch{
			Op:       opNames[p.Op],
			ID:       p.ID,
			Key:      p.Key,
			Value:    p.Value,
			Node:     EncodeNode(p.Node),
			Index:    p.Index,
			ParentID: p.ParentID,
		}
	}
	return PatchBatch{Patches: wire}
}

// EncodeNode converts a virtual subtree to its wire form.
func EncodeNode(n *vdom.VNode) *WireNode {
	if n == nil {
		return nil
	}
	wn := &WireNode{
		Kind: kindNames[n.Kind],
		Tag:  n.Tag,
		ID:   n.ID,
		Text: n.Text,
	}
	if len(n.Attrs) > 0 {
		wn.Attrs = n.Attrs
	}
	for _, c := range n.Children {
		wn.Children = append(wn.Children, EncodeNode(c))
	}
	return wn
}
