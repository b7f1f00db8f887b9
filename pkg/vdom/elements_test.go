package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElNormalizesArguments(t *testing.T) {
	node := Div(
		Class("card"),
		[]Attr{{Key: "id", Value: "main"}, {}},
		"hello",
		nil,
		Span("inner"),
		[]*VNode{P("a"), nil, P("b")},
	)

	wantAttrs := map[string]string{"class": "card", "id": "main"}
	if diff := cmp.Diff(wantAttrs, node.Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}

	if len(node.Children) != 4 {
		t.Fatalf("got %d children, want 4", len(node.Children))
	}
	if node.Children[0].Kind != KindText || node.Children[0].Text != "hello" {
		t.Error("first child should be the text node")
	}
}

func TestKeyAttrIsMetadata(t *testing.T) {
	node := Li(Key("k1"), "item")
	if node.Key != "k1" {
		t.Errorf("node.Key = %q, want %q", node.Key, "k1")
	}
	if _, ok := node.Attrs["key"]; ok {
		t.Error("key must not appear as a real attribute")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("br is void")
	}
	if IsVoidElement("div") {
		t.Error("div is not void")
	}
}

func TestIDAllocatorAssignsElementsOnly(t *testing.T) {
	tree := Div(H1("title"), "loose text", Fragment(P("x")))
	NewIDAllocator("m").Assign(tree)

	if tree.ID != "m0" {
		t.Errorf("root ID = %q, want m0", tree.ID)
	}
	if tree.Children[1].ID != "" {
		t.Error("text nodes must not receive IDs")
	}
	if tree.Children[2].ID == "" {
		t.Error("elements from spliced fragments must receive IDs")
	}
}

func TestFragmentSplicesIntoParent(t *testing.T) {
	node := Div(Fragment(P("a"), P("b")), Span("c"))

	if len(node.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(node.Children))
	}
	for i, want := range []string{"p", "p", "span"} {
		if got := node.Children[i].Tag; got != want {
			t.Errorf("child %d tag = %q, want %q", i, got, want)
		}
	}
}

func TestNestedFragmentsFlattenCompletely(t *testing.T) {
	node := Ul(Fragment(Li("a"), Fragment(Li("b"), Li("c"))))

	if len(node.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(node.Children))
	}
	for _, c := range node.Children {
		if c.Kind != KindElement || c.Tag != "li" {
			t.Errorf("child %v %q, want li element", c.Kind, c.Tag)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Div(Class("a"), P("text"))
	clone := orig.Clone()

	clone.Attrs["class"] = "b"
	clone.Children[0].Children[0].Text = "changed"

	if orig.Attrs["class"] != "a" {
		t.Error("clone shares attrs with original")
	}
	if orig.Children[0].Children[0].Text != "text" {
		t.Error("clone shares children with original")
	}
}
