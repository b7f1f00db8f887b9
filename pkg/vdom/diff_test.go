package vdom

import "testing"

func mounted(node *VNode) *VNode {
	NewIDAllocator("n").Assign(node)
	return node
}

func opsOf(patches []Patch) []PatchOp {
	ops := make([]PatchOp, len(patches))
	for i, p := range patches {
		ops[i] = p.Op
	}
	return ops
}

func TestDiffIdenticalTreesNoPatches(t *testing.T) {
	prev := mounted(Div(Class("box"), H1("hello"), P("world")))
	next := Div(Class("box"), H1("hello"), P("world"))

	patches := Diff(prev, next)
	if len(patches) != 0 {
		t.Fatalf("Diff produced %d patches for identical trees: %v", len(patches), opsOf(patches))
	}
}

func TestDiffTextChangeTargetsParent(t *testing.T) {
	prev := mounted(P("old"))
	next := P("new")

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetText {
		t.Errorf("op = %v, want SetText", p.Op)
	}
	if p.ID != prev.ID {
		t.Errorf("patch targets %q, want parent element %q", p.ID, prev.ID)
	}
	if p.Value != "new" {
		t.Errorf("value = %q, want %q", p.Value, "new")
	}
}

func TestDiffTextChangeAmongSiblingsTargetsPosition(t *testing.T) {
	prev := mounted(P("count: ", Strong("42")))
	next := P("total: ", Strong("42"))

	patches := Diff(prev, next)
	if len(patches) != 1 {
		t.Fatalf("got %d patches, want 1: %v", len(patches), opsOf(patches))
	}
	p := patches[0]
	if p.Op != PatchSetTextAt {
		t.Errorf("op = %v, want SetTextAt - rewriting the parent would drop the sibling element", p.Op)
	}
	if p.ParentID != prev.ID || p.Index != 0 {
		t.Errorf("patch addresses %q index %d, want %q index 0", p.ParentID, p.Index, prev.ID)
	}
	if p.Value != "total: " {
		t.Errorf("value = %q, want %q", p.Value, "total: ")
	}
}

func TestDiffTrailingTextChangeKeepsLeadingSibling(t *testing.T) {
	prev := mounted(P(Strong("3"), " items"))
	next := P(Strong("3"), " items left")

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchSetTextAt {
		t.Fatalf("got %v, want single SetTextAt", opsOf(patches))
	}
	if patches[0].Index != 1 {
		t.Errorf("index = %d, want 1", patches[0].Index)
	}
}

func TestDiffTextKindChangeAddressesPosition(t *testing.T) {
	prev := mounted(P("plain", Strong("x")))
	next := P(Raw("<b>rich</b>"), Strong("x"))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("got %v, want single ReplaceNode", opsOf(patches))
	}
	p := patches[0]
	if p.ID != "" || p.ParentID != prev.ID || p.Index != 0 {
		t.Errorf("replace targets id=%q parent=%q index=%d, want positional via %q at 0",
			p.ID, p.ParentID, p.Index, prev.ID)
	}
}

func TestDiffAttrChanges(t *testing.T) {
	prev := mounted(Div(Class("a"), Title("keep")))
	next := Div(Class("b"), ID("added"))

	patches := Diff(prev, next)

	var sets, removes int
	for _, p := range patches {
		switch p.Op {
		case PatchSetAttr:
			sets++
		case PatchRemoveAttr:
			if p.Key != "title" {
				t.Errorf("removed %q, want title", p.Key)
			}
			removes++
		default:
			t.Errorf("unexpected op %v", p.Op)
		}
	}
	if sets != 2 || removes != 1 {
		t.Errorf("sets = %d removes = %d, want 2 and 1", sets, removes)
	}
}

func TestDiffTagChangeReplaces(t *testing.T) {
	prev := mounted(Div("x"))
	next := Span("x")

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("got %v, want single ReplaceNode", opsOf(patches))
	}
	if patches[0].Node != next {
		t.Error("replacement should carry the next subtree")
	}
}

func TestDiffChildInsertAndRemove(t *testing.T) {
	prev := mounted(Ul(Li("a"), Li("b")))

	grown := Ul(Li("a"), Li("b"), Li("c"))
	patches := Diff(prev, grown)
	if len(patches) != 1 || patches[0].Op != PatchInsertNode {
		t.Fatalf("grow: got %v, want single InsertNode", opsOf(patches))
	}
	if patches[0].ParentID != prev.ID || patches[0].Index != 2 {
		t.Errorf("insert into %q at %d, want %q at 2", patches[0].ParentID, patches[0].Index, prev.ID)
	}

	prev = mounted(Ul(Li("a"), Li("b")))
	shrunk := Ul(Li("a"))
	patches = Diff(prev, shrunk)
	if len(patches) != 1 || patches[0].Op != PatchRemoveNode {
		t.Fatalf("shrink: got %v, want single RemoveNode", opsOf(patches))
	}
}

func TestDiffFragmentContentInsertsIntoEnclosingElement(t *testing.T) {
	prev := mounted(Div(Fragment(P("a"))))
	next := Div(Fragment(P("a"), P("b")))

	patches := Diff(prev, next)
	if len(patches) != 1 || patches[0].Op != PatchInsertNode {
		t.Fatalf("got %v, want single InsertNode", opsOf(patches))
	}
	if patches[0].ParentID != prev.ID {
		t.Errorf("insert parent = %q, want the enclosing div %q", patches[0].ParentID, prev.ID)
	}
	if patches[0].Index != 1 {
		t.Errorf("index = %d, want 1", patches[0].Index)
	}
}

func TestDiffKeyedReorderMoves(t *testing.T) {
	prev := mounted(Ul(
		Li(Key("a"), "a"),
		Li(Key("b"), "b"),
		Li(Key("c"), "c"),
	))
	next := Ul(
		Li(Key("c"), "c"),
		Li(Key("a"), "a"),
		Li(Key("b"), "b"),
	)

	patches := Diff(prev, next)
	for _, p := range patches {
		if p.Op != PatchMoveNode {
			t.Errorf("unexpected op %v, keyed reorder should only move", p.Op)
		}
	}
	if len(patches) == 0 {
		t.Fatal("expected move patches for reordered keyed children")
	}
}

func TestDiffKeyedRemoval(t *testing.T) {
	prev := mounted(Ul(
		Li(Key("a"), "a"),
		Li(Key("b"), "b"),
	))
	next := Ul(Li(Key("b"), "b"))

	patches := Diff(prev, next)

	var removed, moved bool
	for _, p := range patches {
		switch p.Op {
		case PatchRemoveNode:
			removed = true
		case PatchMoveNode:
			moved = true
		}
	}
	if !removed {
		t.Error("expected RemoveNode for dropped keyed child")
	}
	if !moved {
		t.Error("expected MoveNode for surviving keyed child shifting position")
	}
}

func TestDiffCopiesIDsForward(t *testing.T) {
	prev := mounted(Div(P("one")))
	next := Div(P("two"))

	Diff(prev, next)
	if next.ID != prev.ID {
		t.Errorf("root ID not carried forward: %q vs %q", next.ID, prev.ID)
	}
	if next.Children[0].ID != prev.Children[0].ID {
		t.Error("child ID not carried forward")
	}
}

func TestDiffDeterministic(t *testing.T) {
	build := func() *VNode {
		return Div(Class("wrap"), Ul(Li(Key("x"), "x"), Li(Key("y"), "y")))
	}
	prev := mounted(build())

	first := Diff(prev, build())
	second := Diff(prev, build())
	if len(first) != len(second) {
		t.Fatalf("diff not deterministic: %d vs %d patches", len(first), len(second))
	}
	for i := range first {
		if first[i].Op != second[i].Op || first[i].ID != second[i].ID {
			t.Errorf("patch %d differs between runs", i)
		}
	}
}
