package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node to new position
	PatchReplaceNode PatchOp = 0x07 // Replace node entirely
	PatchSetTextAt   PatchOp = 0x08 // Update one text child by position
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	case PatchSetTextAt:
		return "SetTextAt"
	default:
		return "Unknown"
	}
}

// Patch is a single container mutation. Patches are produced by Diff and by
// the renderer's mount path; the session encodes them onto the wire.
type Patch struct {
	Op       PatchOp // Operation type
	ID       string  // Target node ID
	Key      string  // Attribute key (SetAttr/RemoveAttr)
	Value    string  // New value (SetText/SetAttr)
	Node     *VNode  // Subtree for InsertNode/ReplaceNode
	Index    int     // Position within the parent's child list
	ParentID string  // Parent node ID for positionally addressed ops
}
